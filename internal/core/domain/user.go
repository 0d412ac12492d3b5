package domain

import "time"

const (
	RoleTeacher = "Guru"
	RoleStudent = "Siswa"
)

// ValidRole reports whether role is one of the two supported account roles.
func ValidRole(role string) bool {
	return role == RoleTeacher || role == RoleStudent
}

// User models one account on the platform.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserPatch carries a partial profile update. Nil fields are left untouched.
type UserPatch struct {
	Username     *string
	Email        *string
	Name         *string
	Phone        *string
	ProfileImage *string
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil &&
		p.Phone == nil && p.ProfileImage == nil
}

// Apply merges the set fields into u and refreshes UpdatedAt.
func (p UserPatch) Apply(u *User, now time.Time) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	u.UpdatedAt = now
}
