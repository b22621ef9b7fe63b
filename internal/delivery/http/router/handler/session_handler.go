// Package handler contains the HTTP handlers for the console.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealerdesk/config"
	"dealerdesk/internal/delivery/http/response"
	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Cookie names the identity backend and the console agreed on.
const (
	AccessCookieName  = "access"
	RefreshCookieName = "refresh"
)

// SessionHandler holds dependencies for the auth endpoints.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// SignIn handles the credential sign-in request and primes the auth cookies.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAuthCookies(c, output.Session.Access, output.Session.Refresh)

	return response.Success(c, http.StatusOK, echo.Map{
		"user":          output.Session.User,
		"lastRefreshed": output.Session.LastRefreshed,
	}, "Signed in successfully")
}

// Me is the session check: the current access token is verified against the
// identity backend and the authoritative user record is returned. Any failure,
// local or remote, is a 401.
func (h *SessionHandler) Me(c echo.Context) error {
	user, err := h.uc.VerifyUser(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"user": user}, "")
}

// RefreshToken runs the single-attempt refresh. A request without the refresh
// cookie is turned away before any upstream call, and any failure clears the
// auth cookies along with the stored session.
func (h *SessionHandler) RefreshToken(c echo.Context) error {
	if _, err := c.Cookie(RefreshCookieName); err != nil {
		h.clearAuthCookies(c)

		return domainerrors.ErrMissingRefreshToken
	}

	session, err := h.uc.Refresh(c.Request().Context())
	if err != nil {
		h.clearAuthCookies(c)

		return errors.WithStack(err)
	}

	h.setAuthCookies(c, session.Access, session.Refresh)

	return response.Success(c, http.StatusOK, echo.Map{
		"user":          session.User,
		"lastRefreshed": session.LastRefreshed,
	}, "Token refreshed successfully")
}

// Logout clears the stored session and the auth cookies. The cookies are
// dropped either way; a failure to delete the stored record is a 500.
func (h *SessionHandler) Logout(c echo.Context) error {
	err := h.uc.Clear(c.Request().Context())
	h.clearAuthCookies(c)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "failed to clear stored session on logout", slog.Any("error", err))

		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, echo.Map{"message": "Successfully logged out"}, "Logout successful")
}

func (h *SessionHandler) setAuthCookies(c echo.Context, access, refresh string) {
	c.SetCookie(h.authCookie(AccessCookieName, access, h.cfg.Session.AccessTTL))
	c.SetCookie(h.authCookie(RefreshCookieName, refresh, h.cfg.Session.RefreshTTL))
}

func (h *SessionHandler) clearAuthCookies(c echo.Context) {
	c.SetCookie(h.authCookie(AccessCookieName, "", -time.Second))
	c.SetCookie(h.authCookie(RefreshCookieName, "", -time.Second))
}

func (h *SessionHandler) authCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.cfg.Session.CookieDomain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	}
}
