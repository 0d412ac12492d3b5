package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukita/learning-api/internal/core/domain"
)

// fakeAPI is a minimal in-process stand-in for the server, just enough to
// drive the session manager through its states.
type fakeAPI struct {
	mux         *http.ServeMux
	validToken  string
	user        domain.User
	logoutCalls int
	logoutFails bool
}

func newFakeAPI(role string) *fakeAPI {
	f := &fakeAPI{
		validToken: "tok-valid",
		user: domain.User{
			ID:       "u1",
			Username: "t1",
			Email:    "t1@x.com",
			Name:     "Teacher One",
			Role:     role,
		},
	}
	f.mux = http.NewServeMux()

	f.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			EmailOrUsername string `json:"emailOrUsername"`
			Password        string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "Passw0rd!" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "login successful",
			"token":   f.validToken,
			"user":    f.user,
		})
	})

	f.mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "registration successful", "user": f.user})
	})

	f.mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.logoutCalls++
		if f.logoutFails {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "logout successful"})
	})

	f.mux.HandleFunc("GET /users/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.validToken {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"user": f.user})
	})

	f.mux.HandleFunc("PUT /users/profile", func(w http.ResponseWriter, r *http.Request) {
		var patch UserPatch
		_ = json.NewDecoder(r.Body).Decode(&patch)
		if patch.Name != nil {
			f.user.Name = *patch.Name
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "profile updated", "user": f.user})
	})

	return f
}

func newTestManager(t *testing.T, f *fakeAPI) (*Manager, TokenStore) {
	t.Helper()
	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)
	store := NewMemoryTokenStore()
	return NewManager(NewClient(srv.URL), store, zerolog.Nop()), store
}

func TestManager_Restore_NoToken(t *testing.T) {
	m, _ := newTestManager(t, newFakeAPI(domain.RoleTeacher))
	assert.Equal(t, StateUninitialized, m.State())

	state := m.Restore(context.Background())
	assert.Equal(t, StateUnauthenticated, state)
	assert.Nil(t, m.User())
}

func TestManager_Restore_ValidToken(t *testing.T) {
	f := newFakeAPI(domain.RoleTeacher)
	m, store := newTestManager(t, f)
	require.NoError(t, store.Save(f.validToken))

	state := m.Restore(context.Background())
	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, m.User())
	assert.Equal(t, "t1", m.User().Username)
}

func TestManager_Restore_RejectedTokenClearsStore(t *testing.T) {
	f := newFakeAPI(domain.RoleTeacher)
	m, store := newTestManager(t, f)
	require.NoError(t, store.Save("tok-expired"))

	state := m.Restore(context.Background())
	assert.Equal(t, StateUnauthenticated, state)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestManager_Login_TeacherRedirect(t *testing.T) {
	f := newFakeAPI(domain.RoleTeacher)
	m, store := newTestManager(t, f)

	user, route, err := m.Login(context.Background(), "t1@x.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, RouteTeacherHome, route)
	assert.Equal(t, domain.RoleTeacher, user.Role)
	assert.Equal(t, StateAuthenticated, m.State())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, f.validToken, persisted)
}

func TestManager_Login_StudentRedirect(t *testing.T) {
	m, _ := newTestManager(t, newFakeAPI(domain.RoleStudent))

	_, route, err := m.Login(context.Background(), "s1@x.com", "Passw0rd!")
	require.NoError(t, err)
	assert.Equal(t, RouteStudentHome, route)
}

func TestManager_Login_Failure(t *testing.T) {
	m, store := newTestManager(t, newFakeAPI(domain.RoleTeacher))

	_, _, err := m.Login(context.Background(), "t1@x.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Equal(t, StateUnauthenticated, m.State())

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestManager_Register_DoesNotAuthenticate(t *testing.T) {
	m, _ := newTestManager(t, newFakeAPI(domain.RoleStudent))

	user, err := m.Register(context.Background(), RegisterInput{
		Username: "s1", Email: "s1@x.com", Name: "S", Password: "Passw0rd!",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, StateAuthenticated, m.State())
	assert.Empty(t, m.Token())
}

func TestManager_Logout_ClearsStateEvenIfServerFails(t *testing.T) {
	f := newFakeAPI(domain.RoleTeacher)
	f.logoutFails = true
	m, store := newTestManager(t, f)

	_, _, err := m.Login(context.Background(), "t1@x.com", "Passw0rd!")
	require.NoError(t, err)

	route := m.Logout(context.Background())
	assert.Equal(t, RouteLogin, route)
	assert.Equal(t, 1, f.logoutCalls)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.User())

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestManager_UpdateUser_OptimisticMerge(t *testing.T) {
	m, _ := newTestManager(t, newFakeAPI(domain.RoleTeacher))
	_, _, err := m.Login(context.Background(), "t1@x.com", "Passw0rd!")
	require.NoError(t, err)

	patch := UserPatch{Name: strptr("Renamed")}
	first := m.UpdateUser(patch)
	second := m.UpdateUser(patch)

	assert.Equal(t, "Renamed", first.Name)
	// Applying the same patch twice yields the same cached state.
	assert.Equal(t, first, second)
	// Untouched fields survive the merge.
	assert.Equal(t, "t1@x.com", first.Email)
}

func TestManager_UpdateProfile_RoundTrip(t *testing.T) {
	m, _ := newTestManager(t, newFakeAPI(domain.RoleTeacher))
	_, _, err := m.Login(context.Background(), "t1@x.com", "Passw0rd!")
	require.NoError(t, err)

	updated, err := m.UpdateProfile(context.Background(), UserPatch{Name: strptr("X")})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, "X", m.User().Name)
}

func TestManager_GuardRoute(t *testing.T) {
	f := newFakeAPI(domain.RoleTeacher)
	m, _ := newTestManager(t, f)
	m.Restore(context.Background()) // no token → unauthenticated

	// Unauthenticated: any app route redirects to login.
	redirect, ok := m.GuardRoute(RouteTeacherHome)
	assert.True(t, ok)
	assert.Equal(t, RouteLogin, redirect)

	// Unauthenticated: auth screens stay put.
	_, ok = m.GuardRoute(RouteLogin)
	assert.False(t, ok)
	_, ok = m.GuardRoute(RouteRegister)
	assert.False(t, ok)

	_, _, err := m.Login(context.Background(), "t1@x.com", "Passw0rd!")
	require.NoError(t, err)

	// Authenticated: auth screens redirect to role home.
	redirect, ok = m.GuardRoute(RouteLogin)
	assert.True(t, ok)
	assert.Equal(t, RouteTeacherHome, redirect)

	// Authenticated: app routes stay put.
	_, ok = m.GuardRoute(RouteTeacherHome)
	assert.False(t, ok)
}

func strptr(s string) *string { return &s }
