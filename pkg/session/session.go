// Package session owns the client side of authentication: token persistence,
// session restore on cold start, login/register/logout/profile operations, and
// route-guard decisions based on authentication state and role.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/edukita/learning-api/internal/core/domain"
)

// State is the session lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Route identifies a navigation target in the client UI.
type Route string

const (
	RouteLogin       Route = "/login"
	RouteRegister    Route = "/register"
	RouteTeacherHome Route = "/teacher/home"
	RouteStudentHome Route = "/learn/home"
)

// authRoutes are the screens reachable without a session.
var authRoutes = map[Route]struct{}{
	RouteLogin:    {},
	RouteRegister: {},
}

// Manager owns authentication state for a client process.
//
// The states move Uninitialized → Restoring → {Authenticated, Unauthenticated};
// login and logout then toggle between the last two. All mutation goes through
// the internal mutex so the manager is safe to share.
type Manager struct {
	api   *Client
	store TokenStore
	log   zerolog.Logger

	mu    sync.Mutex
	state State
	token string
	user  *domain.User
}

func NewManager(api *Client, store TokenStore, log zerolog.Logger) *Manager {
	return &Manager{
		api:   api,
		store: store,
		log:   log,
		state: StateUninitialized,
	}
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns a copy of the cached identity, or nil when unauthenticated.
func (m *Manager) User() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Token returns the current bearer token, empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Restore attempts to resume a persisted session on cold start. A persisted
// token is validated by fetching the profile; an expired or revoked token is
// cleared and the session ends Unauthenticated.
func (m *Manager) Restore(ctx context.Context) State {
	m.mu.Lock()
	m.state = StateRestoring
	m.mu.Unlock()

	token, err := m.store.Load()
	if err != nil {
		return m.setUnauthenticated()
	}

	user, err := m.api.Profile(ctx, token)
	if err != nil {
		m.log.Debug().Err(err).Msg("persisted token rejected, clearing")
		_ = m.store.Clear()
		return m.setUnauthenticated()
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = token
	m.user = user
	m.mu.Unlock()
	return StateAuthenticated
}

// Login authenticates, persists the token and returns the role-appropriate
// home route. On failure the session remains Unauthenticated and the typed
// error carries the server message.
func (m *Manager) Login(ctx context.Context, identifier, password string) (*domain.User, Route, error) {
	token, user, err := m.api.Login(ctx, identifier, password)
	if err != nil {
		m.setUnauthenticated()
		return nil, RouteLogin, err
	}

	if err := m.store.Save(token); err != nil {
		// A session that cannot be persisted still works for this run.
		m.log.Warn().Err(err).Msg("failed to persist token")
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.token = token
	m.user = user
	m.mu.Unlock()

	return user, HomeRoute(user.Role), nil
}

// Register creates an account. It does not authenticate; the caller must log
// in separately.
func (m *Manager) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	return m.api.Register(ctx, input)
}

// Logout revokes the token server-side on a best-effort basis, then always
// clears local state. A failed revoke call never blocks the sign-out.
func (m *Manager) Logout(ctx context.Context) Route {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()

	if token != "" {
		if err := m.api.Logout(ctx, token); err != nil {
			m.log.Warn().Err(err).Msg("server-side revoke failed")
		}
	}

	_ = m.store.Clear()
	m.setUnauthenticated()
	return RouteLogin
}

// UpdateUser optimistically merges the patch into the cached identity without
// a server round-trip. Use UpdateProfile for the persisted update.
func (m *Manager) UpdateUser(patch UserPatch) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	if patch.Username != nil {
		m.user.Username = *patch.Username
	}
	if patch.Email != nil {
		m.user.Email = *patch.Email
	}
	if patch.Name != nil {
		m.user.Name = *patch.Name
	}
	if patch.Phone != nil {
		m.user.Phone = *patch.Phone
	}
	if patch.ProfileImage != nil {
		m.user.ProfileImage = *patch.ProfileImage
	}
	u := *m.user
	return &u
}

// UpdateProfile persists the patch server-side and refreshes the cached identity.
func (m *Manager) UpdateProfile(ctx context.Context, patch UserPatch) (*domain.User, error) {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()

	user, err := m.api.UpdateProfile(ctx, token, patch)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return user, nil
}

// ChangePassword replaces the account password for the active session.
func (m *Manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	m.mu.Lock()
	token := m.token
	m.mu.Unlock()
	return m.api.ChangePassword(ctx, token, currentPassword, newPassword)
}

// GuardRoute decides whether navigation to current must redirect. It returns
// the redirect target and true when a redirect is required:
//   - unauthenticated sessions are sent to the login screen from any
//     non-auth route;
//   - authenticated sessions are sent to their role home from auth screens.
func (m *Manager) GuardRoute(current Route) (Route, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, onAuthScreen := authRoutes[current]
	switch m.state {
	case StateAuthenticated:
		if onAuthScreen {
			return HomeRoute(m.user.Role), true
		}
	case StateUnauthenticated:
		if !onAuthScreen {
			return RouteLogin, true
		}
	}
	return current, false
}

// HomeRoute maps a role to its home screen.
func HomeRoute(role string) Route {
	if role == domain.RoleTeacher {
		return RouteTeacherHome
	}
	return RouteStudentHome
}

func (m *Manager) setUnauthenticated() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateUnauthenticated
	m.token = ""
	m.user = nil
	return StateUnauthenticated
}
