package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealerdesk/config"
	"dealerdesk/internal/delivery/http/validator"
	"dealerdesk/internal/domain/entity"
	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/errors"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions scripts the session store for handler tests.
type fakeSessions struct {
	signInOut    *usecase.SignInOutput
	signInErr    error
	current      *entity.Session
	currentErr   error
	refreshOut   *entity.Session
	refreshErr   error
	refreshCalls int
	clearCalls   int
	clearErr     error
	verifyUser   json.RawMessage
	verifyErr    error
}

func (f *fakeSessions) SignIn(context.Context, *usecase.SignInInput) (*usecase.SignInOutput, error) {
	return f.signInOut, f.signInErr
}

func (f *fakeSessions) Initialize(context.Context, json.RawMessage, usecase.TokenPair) error {
	return nil
}

func (f *fakeSessions) Clear(context.Context) error {
	f.clearCalls++

	return f.clearErr
}

func (f *fakeSessions) Current(context.Context) (*entity.Session, error) {
	return f.current, f.currentErr
}

func (f *fakeSessions) Refresh(context.Context) (*entity.Session, error) {
	f.refreshCalls++

	return f.refreshOut, f.refreshErr
}

func (f *fakeSessions) VerifyUser(context.Context) (json.RawMessage, error) {
	return f.verifyUser, f.verifyErr
}

func sessionTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{
		SecureCookies: true,
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    30 * 24 * time.Hour,
	}

	return cfg
}

func newSessionTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)

	return nil
}

func TestSessionHandler_SignInSetsAuthCookies(t *testing.T) {
	sessions := &fakeSessions{
		signInOut: &usecase.SignInOutput{Session: &entity.Session{
			Access:  "acc-1",
			Refresh: "ref-1",
			User:    json.RawMessage(`{"id":7}`),
		}},
	}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodPost, "/auth/signin", `{"email":"dealer@example.com","password":"hunter2"}`)
	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	access := cookieByName(t, rec, AccessCookieName)
	assert.Equal(t, "acc-1", access.Value)
	assert.Equal(t, int(15*time.Minute/time.Second), access.MaxAge)
	assert.True(t, access.Secure)
	assert.True(t, access.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)

	refresh := cookieByName(t, rec, RefreshCookieName)
	assert.Equal(t, "ref-1", refresh.Value)
	assert.Equal(t, int(30*24*time.Hour/time.Second), refresh.MaxAge)
}

func TestSessionHandler_SignInValidatesInput(t *testing.T) {
	h := NewSessionHandler(&fakeSessions{}, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newSessionTestContext(t, http.MethodPost, "/auth/signin", `{"email":"not-an-email","password":""}`)
	err := h.SignIn(c)
	require.Error(t, err)
}

func TestSessionHandler_RefreshWithoutCookieSkipsUpstream(t *testing.T) {
	sessions := &fakeSessions{}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodPost, "/api/token", "")
	err := h.RefreshToken(c)
	require.ErrorIs(t, err, domainerrors.ErrMissingRefreshToken)
	assert.Zero(t, sessions.refreshCalls, "no upstream call without the cookie")

	access := cookieByName(t, rec, AccessCookieName)
	assert.Empty(t, access.Value)
	assert.Negative(t, access.MaxAge)
}

func TestSessionHandler_RefreshSuccessRotatesCookies(t *testing.T) {
	sessions := &fakeSessions{
		refreshOut: &entity.Session{
			Access:        "acc-new",
			Refresh:       "ref-new",
			User:          json.RawMessage(`{"id":7}`),
			LastRefreshed: time.Now().UTC(),
		},
	}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodPost, "/api/token", "")
	c.Request().AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "ref-old"})

	require.NoError(t, h.RefreshToken(c))
	assert.Equal(t, 1, sessions.refreshCalls)

	access := cookieByName(t, rec, AccessCookieName)
	assert.Equal(t, "acc-new", access.Value)

	refresh := cookieByName(t, rec, RefreshCookieName)
	assert.Equal(t, "ref-new", refresh.Value)
}

func TestSessionHandler_RefreshFailureClearsCookies(t *testing.T) {
	sessions := &fakeSessions{refreshErr: domainerrors.ErrRefreshFailed}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodPost, "/api/token", "")
	c.Request().AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "ref-old"})

	err := h.RefreshToken(c)
	require.ErrorIs(t, err, domainerrors.ErrRefreshFailed)

	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		cookie := cookieByName(t, rec, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestSessionHandler_LogoutClearFailureSurfaces(t *testing.T) {
	sessions := &fakeSessions{clearErr: errors.New("disk full")}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodPost, "/api/logout", "")
	err := h.Logout(c)
	require.Error(t, err)

	// The cookies are dropped even when the stored record survives.
	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		cookie := cookieByName(t, rec, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestSessionHandler_MeReturnsVerifiedUser(t *testing.T) {
	sessions := &fakeSessions{verifyUser: json.RawMessage(`{"id":7}`)}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodGet, "/api/me", "")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestSessionHandler_MeReportsAbsence(t *testing.T) {
	sessions := &fakeSessions{verifyErr: domainerrors.ErrNoSession}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newSessionTestContext(t, http.MethodGet, "/api/me", "")
	err := h.Me(c)
	require.ErrorIs(t, err, domainerrors.ErrNoSession)
}

func TestSessionHandler_LogoutClearsEverything(t *testing.T) {
	sessions := &fakeSessions{}
	h := NewSessionHandler(sessions, sessionTestConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newSessionTestContext(t, http.MethodPost, "/api/logout", "")
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sessions.clearCalls)

	for _, name := range []string{AccessCookieName, RefreshCookieName} {
		cookie := cookieByName(t, rec, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}
