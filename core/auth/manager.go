// Package auth implements the login/session state machine: anonymous →
// authenticating → authenticated, cycling back to anonymous on failure or
// logout.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
	"github.com/frontdash/partner-desktop/core/frontdash"
	"github.com/frontdash/partner-desktop/core/httpclient"
	"github.com/frontdash/partner-desktop/core/model"
	"github.com/frontdash/partner-desktop/core/store"
	"github.com/frontdash/partner-desktop/core/validate"
)

var (
	// ErrNotAuthenticated is returned when an action needs a session.
	ErrNotAuthenticated = coreerrors.New(coreerrors.ErrCodeUnauthenticated, "auth: not authenticated")
	// ErrAlreadyAuthenticating rejects a login while one is in flight.
	ErrAlreadyAuthenticating = coreerrors.New(coreerrors.ErrCodeInvalidState, "auth: login already in progress")
)

// State is the session machine's position.
type State int

const (
	// StateAnonymous — no session.
	StateAnonymous State = iota
	// StateAuthenticating — login request in flight.
	StateAuthenticating
	// StateAuthenticated — token and restaurant present.
	StateAuthenticated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Transport is the network seam the manager needs; *frontdash.Client
// satisfies it.
type Transport interface {
	Login(ctx context.Context, username, password string) (*frontdash.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

var _ Transport = (*frontdash.Client)(nil)

// Manager owns the session. All access goes through it so the token ⇔
// restaurant invariant holds at every observable point.
type Manager struct {
	mu        sync.RWMutex
	state     State
	session   *Session
	lastError string

	transport  Transport
	store      store.SessionStore[*Session]
	logger     httpclient.Logger
	allowAdmin bool
	now        func() time.Time
}

// ManagerOption configures the manager.
type ManagerOption func(*Manager)

// WithSessionStore sets the persistence backend. Defaults to in-memory.
func WithSessionStore(s store.SessionStore[*Session]) ManagerOption {
	return func(m *Manager) {
		if s != nil {
			m.store = s
		}
	}
}

// WithLogger injects the logger.
func WithLogger(logger httpclient.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithAdminLogin enables the employee-portal "administrator" username
// allowance.
func WithAdminLogin(allowed bool) ManagerOption {
	return func(m *Manager) {
		m.allowAdmin = allowed
	}
}

// NewManager creates a Manager, restoring any persisted, unexpired session.
func NewManager(transport Transport, opts ...ManagerOption) *Manager {
	m := &Manager{
		state:     StateAnonymous,
		transport: transport,
		store:     store.NewMemory[*Session](),
		logger:    httpclient.NopLogger{},
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.restore()
	return m
}

func (m *Manager) restore() {
	session, err := m.store.LoadSession()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.logger.Errorf("auth: restore session: %v", err)
		}
		return
	}
	if session == nil || session.Token == "" || session.Expired(m.now()) {
		_ = m.store.ClearSession()
		return
	}
	m.session = session
	m.state = StateAuthenticated
}

// Login runs the full attempt: client-side validation, then one network
// call. On failure the machine returns to anonymous with the error recorded.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validate.Username(username, m.allowAdmin); err != nil {
		return nil, err
	}
	if err := validate.Required("password", password); err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.state == StateAuthenticating {
		m.mu.Unlock()
		return nil, ErrAlreadyAuthenticating
	}
	m.state = StateAuthenticating
	m.lastError = ""
	m.mu.Unlock()

	result, err := m.transport.Login(ctx, username, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateAnonymous
		m.session = nil
		m.lastError = err.Error()
		return nil, err
	}
	session := NewSession(result.Token, result.Restaurant)
	m.session = session
	m.state = StateAuthenticated
	m.lastError = ""
	if saveErr := m.store.SaveSession(session.Clone()); saveErr != nil {
		m.logger.Errorf("auth: persist session: %v", saveErr)
	}
	return session.Clone(), nil
}

// Logout clears the session. The backend notification is best effort: a
// failed call is logged and local clearing proceeds regardless.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	session := m.session
	m.session = nil
	m.state = StateAnonymous
	m.lastError = ""
	m.mu.Unlock()

	if clearErr := m.store.ClearSession(); clearErr != nil {
		m.logger.Errorf("auth: clear persisted session: %v", clearErr)
	}
	if session == nil || session.Token == "" {
		return
	}
	if err := m.transport.Logout(ctx, session.Token); err != nil {
		m.logger.Errorf("auth: backend logout: %v", err)
	}
}

// Invalidate drops the session without a backend call, used when the server
// has already rejected the token.
func (m *Manager) Invalidate(reason string) {
	m.mu.Lock()
	m.session = nil
	m.state = StateAnonymous
	m.lastError = reason
	m.mu.Unlock()
	if err := m.store.ClearSession(); err != nil {
		m.logger.Errorf("auth: clear persisted session: %v", err)
	}
}

// State reports the machine's position.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns a copy of the current session, or nil when anonymous.
func (m *Manager) Session() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Clone()
}

// Token returns the bearer token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.Token
}

// Restaurant returns the logged-in restaurant summary.
func (m *Manager) Restaurant() (model.Restaurant, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return model.Restaurant{}, false
	}
	return m.session.Restaurant, true
}

// LastError returns the most recent login failure message.
func (m *Manager) LastError() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastError
}

// RequireToken returns the token or ErrNotAuthenticated; slice actions call
// this before touching the network.
func (m *Manager) RequireToken() (string, error) {
	token := m.Token()
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}
