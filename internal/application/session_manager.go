package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/observability"
	"github.com/bnema/agent-dash-cli/internal/ports"
	"github.com/bnema/agent-dash-cli/internal/state"
)

// SessionManager owns the process-wide Session: exactly one is live at a
// time, and every mutation of it (login, logout, invalidation) goes through
// here. The gateway reads the token via Token and reports unauthorized
// responses via Invalidate.
type SessionManager struct {
	store    *state.Store
	tokens   ports.TokenStore
	nav      ports.Navigator
	notifier ports.Notifier
	log      *slog.Logger

	mu      sync.Mutex
	auth    ports.Authenticator
	current *domain.Session
}

func NewSessionManager(store *state.Store, tokens ports.TokenStore, nav ports.Navigator, notifier ports.Notifier, log *slog.Logger) *SessionManager {
	if log == nil {
		log = observability.Discard()
	}
	return &SessionManager{store: store, tokens: tokens, nav: nav, notifier: notifier, log: log}
}

// Bind attaches the gateway after construction; the gateway itself needs the
// manager's Token and Invalidate hooks, so the two are wired in two steps.
func (m *SessionManager) Bind(auth ports.Authenticator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Token returns the live bearer credential, or "" when logged out.
func (m *SessionManager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// Current returns the live session, or nil.
func (m *SessionManager) Current() *domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	s := *m.current
	return &s
}

// Login exchanges credentials for a session, persists the token slot and
// publishes the session to the store. A failed login leaves the current
// session untouched.
func (m *SessionManager) Login(ctx context.Context, email, password string) *domain.ErrorDescriptor {
	m.mu.Lock()
	auth := m.auth
	m.mu.Unlock()
	if auth == nil {
		return domain.ValidationError("session manager is not bound to a gateway")
	}

	session, derr := auth.Login(ctx, email, password)
	if derr != nil {
		m.notifier.Error(derr.Message)
		return derr
	}

	if err := m.tokens.Save(ctx, session.Token); err != nil {
		m.log.Warn("persist token slot", "err", err)
	}

	m.mu.Lock()
	m.current = &session
	m.mu.Unlock()
	m.store.Dispatch(state.SetSession{Session: &session})
	m.notifier.Success("welcome back, " + session.User.Name)
	return nil
}

// Restore rebuilds the session from the persisted token slot by fetching the
// profile. Absent slot is not an error; an unauthorized token tears the slot
// down through the gateway's Invalidate hook.
func (m *SessionManager) Restore(ctx context.Context) *domain.ErrorDescriptor {
	token, err := m.tokens.Load(ctx)
	if err != nil {
		return nil
	}

	m.mu.Lock()
	auth := m.auth
	m.current = &domain.Session{Token: token}
	m.mu.Unlock()
	if auth == nil {
		return domain.ValidationError("session manager is not bound to a gateway")
	}

	user, derr := auth.Profile(ctx)
	if derr != nil {
		if derr.Kind != domain.ErrorAuth {
			// Keep the token; the backend may just be unreachable.
			m.mu.Lock()
			m.current = nil
			m.mu.Unlock()
		}
		return derr
	}

	session := domain.Session{Token: token, User: user}
	m.mu.Lock()
	m.current = &session
	m.mu.Unlock()
	m.store.Dispatch(state.SetSession{Session: &session})
	return nil
}

// Logout is the user-initiated teardown.
func (m *SessionManager) Logout(ctx context.Context) {
	m.teardown(ctx)
}

// Invalidate is the gateway's unauthorized hook: same teardown, triggered by
// the server rather than the user.
func (m *SessionManager) Invalidate() {
	m.log.Warn("session invalidated by unauthorized response")
	m.teardown(context.Background())
}

func (m *SessionManager) teardown(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.tokens.Clear(ctx); err != nil {
		m.log.Warn("clear token slot", "err", err)
	}
	m.store.Dispatch(state.ResetAll{})
	m.nav.ShowLogin()
}
