package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/frontdash/partner-desktop/core/errors"
	"github.com/frontdash/partner-desktop/core/frontdash"
	"github.com/frontdash/partner-desktop/core/model"
)

type fakeTransport struct {
	loginResult *frontdash.LoginResult
	loginErr    error
	logoutErr   error

	loginCalls  int
	logoutCalls int
	logoutToken string
}

func (f *fakeTransport) Login(_ context.Context, username, password string) (*frontdash.LoginResult, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResult, nil
}

func (f *fakeTransport) Logout(_ context.Context, token string) error {
	f.logoutCalls++
	f.logoutToken = token
	return f.logoutErr
}

func okTransport() *fakeTransport {
	return &fakeTransport{
		loginResult: &frontdash.LoginResult{
			Token:      "t1",
			Restaurant: model.Restaurant{ID: "5", Name: "Smith's", Username: "smith01"},
		},
	}
}

func TestLoginSuccessInvariant(t *testing.T) {
	transport := okTransport()
	m := NewManager(transport)
	require.Equal(t, StateAnonymous, m.State())

	session, err := m.Login(context.Background(), "smith01", "secret123")
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, m.State())

	// token and restaurant are both present, never one without the other
	require.NotEmpty(t, session.Token)
	require.NotEmpty(t, session.Restaurant.ID)
	require.Equal(t, "t1", m.Token())
	restaurant, ok := m.Restaurant()
	require.True(t, ok)
	require.Equal(t, "5", restaurant.ID)
	require.Empty(t, m.LastError())
}

func TestLoginFailureReturnsToAnonymous(t *testing.T) {
	transport := &fakeTransport{loginErr: errors.New("invalid credentials")}
	m := NewManager(transport)

	_, err := m.Login(context.Background(), "smith01", "wrong-pass")
	require.Error(t, err)
	require.Equal(t, StateAnonymous, m.State())
	require.Empty(t, m.Token())
	_, ok := m.Restaurant()
	require.False(t, ok)
	require.Equal(t, "invalid credentials", m.LastError())
}

func TestLoginValidationShortCircuits(t *testing.T) {
	transport := okTransport()
	m := NewManager(transport)

	_, err := m.Login(context.Background(), "sm1", "secret123")
	require.Error(t, err)
	var ce *coreerrors.CoreError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, coreerrors.ErrCodeValidation, ce.Code)
	require.Zero(t, transport.loginCalls, "validation failure must not reach the network")
	require.Equal(t, StateAnonymous, m.State())
}

func TestAdminUsernameAllowance(t *testing.T) {
	transport := okTransport()
	m := NewManager(transport, WithAdminLogin(true))

	_, err := m.Login(context.Background(), "administrator", "secret123")
	require.NoError(t, err)
	require.Equal(t, 1, transport.loginCalls)

	// without the allowance the same username is rejected locally
	strict := NewManager(okTransport())
	_, err = strict.Login(context.Background(), "administrator", "secret123")
	require.Error(t, err)
}

func TestLogoutClearsEvenWhenBackendFails(t *testing.T) {
	transport := okTransport()
	transport.logoutErr = errors.New("backend down")
	m := NewManager(transport)
	_, err := m.Login(context.Background(), "smith01", "secret123")
	require.NoError(t, err)

	m.Logout(context.Background())
	require.Equal(t, StateAnonymous, m.State())
	require.Empty(t, m.Token())
	_, ok := m.Restaurant()
	require.False(t, ok)
	require.Equal(t, 1, transport.logoutCalls)
	require.Equal(t, "t1", transport.logoutToken)
}

func TestLogoutWhileAnonymousSkipsBackend(t *testing.T) {
	transport := okTransport()
	m := NewManager(transport)
	m.Logout(context.Background())
	require.Zero(t, transport.logoutCalls)
	require.Equal(t, StateAnonymous, m.State())
}

func TestRequireToken(t *testing.T) {
	m := NewManager(okTransport())
	_, err := m.RequireToken()
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = m.Login(context.Background(), "smith01", "secret123")
	require.NoError(t, err)
	token, err := m.RequireToken()
	require.NoError(t, err)
	require.Equal(t, "t1", token)
}

func TestSessionCycleRepeats(t *testing.T) {
	transport := okTransport()
	m := NewManager(transport)
	for i := 0; i < 3; i++ {
		_, err := m.Login(context.Background(), "smith01", "secret123")
		require.NoError(t, err)
		require.Equal(t, StateAuthenticated, m.State())
		m.Logout(context.Background())
		require.Equal(t, StateAnonymous, m.State())
	}
}

func TestSessionExpiryFromJWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "smith01",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)

	session := NewSession(signed, model.Restaurant{ID: "5"})
	require.Equal(t, exp.Unix(), session.ExpiresAt.Unix())
	require.False(t, session.Expired(time.Now()))
	require.True(t, session.Expired(exp.Add(time.Second)))

	// opaque tokens never expire locally
	opaque := NewSession("not-a-jwt", model.Restaurant{ID: "5"})
	require.True(t, opaque.ExpiresAt.IsZero())
	require.False(t, opaque.Expired(time.Now().Add(100*time.Hour)))
}

func TestInvalidateDropsSession(t *testing.T) {
	m := NewManager(okTransport())
	_, err := m.Login(context.Background(), "smith01", "secret123")
	require.NoError(t, err)

	m.Invalidate("token rejected")
	require.Equal(t, StateAnonymous, m.State())
	require.Equal(t, "token rejected", m.LastError())
}
