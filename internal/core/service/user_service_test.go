package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edukita/learning-api/internal/core/domain"
)

func strptr(s string) *string { return &s }

func seedUsers(t *testing.T, repo *stubUserRepo) (teacher, student *domain.User) {
	t.Helper()
	auth := newTestAuthService(repo, newStubLedger())
	teacher = register(t, auth, "t1", "t1@x.com", domain.RoleTeacher)
	student = register(t, auth, "s1", "s1@x.com", domain.RoleStudent)
	return teacher, student
}

func TestUserService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	teacher, _ := seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.Profile(context.Background(), teacher.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Username != "t1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	_, student := seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	updated, err := svc.UpdateProfile(context.Background(), student.ID, domain.UserPatch{Name: strptr("X")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "X" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Username != "s1" || updated.Email != "s1@x.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUserService_UpdateProfile_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	_, student := seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	patch := domain.UserPatch{Name: strptr("X"), Phone: strptr("0801")}
	first, err := svc.UpdateProfile(context.Background(), student.ID, patch)
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := svc.UpdateProfile(context.Background(), student.ID, patch)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if first.Name != second.Name || first.Phone != second.Phone ||
		first.Username != second.Username || first.Email != second.Email {
		t.Fatalf("repeated patch changed state: %+v vs %+v", first, second)
	}
}

func TestUserService_UpdateProfile_EmptyPatch(t *testing.T) {
	repo := newStubUserRepo()
	_, student := seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdateProfile(context.Background(), student.ID, domain.UserPatch{}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty patch, got %v", err)
	}
}

func TestUserService_UpdateProfile_LowercasesEmail(t *testing.T) {
	repo := newStubUserRepo()
	_, student := seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	updated, err := svc.UpdateProfile(context.Background(), student.ID, domain.UserPatch{Email: strptr("New@X.Com")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "new@x.com" {
		t.Fatalf("email not normalised: %q", updated.Email)
	}
}

func TestUserService_ListStudents(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	students, err := svc.ListStudents(context.Background())
	if err != nil {
		t.Fatalf("list students failed: %v", err)
	}
	if len(students) != 1 || students[0].Role != domain.RoleStudent {
		t.Fatalf("unexpected students: %+v", students)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	repo := newStubUserRepo()
	seedUsers(t, repo)
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}
