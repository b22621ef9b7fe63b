package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealerdesk/config"
	"dealerdesk/internal/domain/entity"
	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions is a scripted SessionUsecase for guard tests.
type fakeSessions struct {
	session     *entity.Session
	currentErr  error
	verifyUser  json.RawMessage
	verifyErr   error
	verifyCalls int
}

func (f *fakeSessions) SignIn(context.Context, *usecase.SignInInput) (*usecase.SignInOutput, error) {
	panic("not used")
}

func (f *fakeSessions) Initialize(context.Context, json.RawMessage, usecase.TokenPair) error {
	panic("not used")
}

func (f *fakeSessions) Clear(context.Context) error { return nil }

func (f *fakeSessions) Current(context.Context) (*entity.Session, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}

	return f.session, nil
}

func (f *fakeSessions) Refresh(context.Context) (*entity.Session, error) {
	panic("not used")
}

func (f *fakeSessions) VerifyUser(context.Context) (json.RawMessage, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}

	return f.verifyUser, nil
}

func guardConfig(verifyRemote bool) *config.Config {
	return &config.Config{
		Guard: &config.GuardConfig{
			PublicPaths:  []string{"/signin", "/signup", "/forgot-password", "/reset"},
			VerifyRemote: verifyRemote,
		},
	}
}

func runGuard(t *testing.T, guard *GuardMiddleware, path string, accept string) (*httptest.ResponseRecorder, echo.Context, error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached bool
	handler := guard.Guard(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	return rec, c, err, reached
}

func newTestGuard(sessions usecase.SessionUsecase, verifyRemote bool) *GuardMiddleware {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewGuardMiddleware(sessions, guardConfig(verifyRemote), logger)
}

func TestGuard_PublicPathSkipsSessionCheck(t *testing.T) {
	sessions := &fakeSessions{currentErr: domainerrors.ErrNoSession}
	guard := newTestGuard(sessions, false)

	_, _, err, reached := runGuard(t, guard, "/signin", "text/html")
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestGuard_PublicPathMatchesByPrefix(t *testing.T) {
	sessions := &fakeSessions{currentErr: domainerrors.ErrNoSession}
	guard := newTestGuard(sessions, false)

	_, _, err, reached := runGuard(t, guard, "/reset/abc123", "text/html")
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestGuard_NoSessionRedirectsBrowserNavigation(t *testing.T) {
	sessions := &fakeSessions{currentErr: domainerrors.ErrNoSession}
	guard := newTestGuard(sessions, false)

	rec, _, err, reached := runGuard(t, guard, "/sales", "text/html,application/xhtml+xml")
	require.NoError(t, err)
	assert.False(t, reached)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, SignInPath, rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_NoSessionFailsAPIRequest(t *testing.T) {
	sessions := &fakeSessions{currentErr: domainerrors.ErrNoSession}
	guard := newTestGuard(sessions, false)

	_, _, err, reached := runGuard(t, guard, "/sales", "application/json")
	require.ErrorIs(t, err, domainerrors.ErrNoSession)
	assert.False(t, reached)
}

func TestGuard_ValidSessionPrimesContext(t *testing.T) {
	user := json.RawMessage(`{"id":7}`)
	sessions := &fakeSessions{session: &entity.Session{Access: "acc", User: user}}
	guard := newTestGuard(sessions, false)

	_, c, err, reached := runGuard(t, guard, "/sales", "application/json")
	require.NoError(t, err)
	assert.True(t, reached)

	require.NotNil(t, SessionFromContext(c))
	assert.JSONEq(t, string(user), string(UserFromContext(c)))
	assert.Zero(t, sessions.verifyCalls, "local trust by default")
}

func TestGuard_VerifyRemoteReplacesUser(t *testing.T) {
	sessions := &fakeSessions{
		session:    &entity.Session{Access: "acc", User: json.RawMessage(`{"id":7,"stale":true}`)},
		verifyUser: json.RawMessage(`{"id":7,"stale":false}`),
	}
	guard := newTestGuard(sessions, true)

	_, c, err, reached := runGuard(t, guard, "/sales", "application/json")
	require.NoError(t, err)
	assert.True(t, reached)
	assert.Equal(t, 1, sessions.verifyCalls)
	assert.JSONEq(t, `{"id":7,"stale":false}`, string(UserFromContext(c)))
}

func TestGuard_VerifyRemoteRejectionTurnsAway(t *testing.T) {
	sessions := &fakeSessions{
		session:   &entity.Session{Access: "acc", User: json.RawMessage(`{"id":7}`)},
		verifyErr: domainerrors.ErrUnauthorized,
	}
	guard := newTestGuard(sessions, true)

	_, _, err, reached := runGuard(t, guard, "/sales", "application/json")
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, reached)
}
