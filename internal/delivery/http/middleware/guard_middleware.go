package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"dealerdesk/config"
	"dealerdesk/internal/domain/entity"
	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys the guard primes for downstream handlers.
const (
	// KeySession holds the *entity.Session of the authenticated request.
	KeySession = "session"

	// KeySessionUser holds the raw user record of the authenticated request.
	KeySessionUser = "session_user"
)

// SignInPath is where browser navigations land when unauthenticated.
const SignInPath = "/signin"

// GuardMiddleware decides per request between three outcomes: pass through on
// a public path, admit with the session primed into the context, or turn the
// request away. Any failure to read the session counts as unauthenticated;
// the guard never admits on a doubt.
type GuardMiddleware struct {
	sessions usecase.SessionUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{sessions: sessions, cfg: cfg, logger: logger}
}

// Guard is the route guard applied to every protected route.
func (m *GuardMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.isPublic(c.Request().URL.Path) {
			return next(c)
		}

		ctx := c.Request().Context()

		session, err := m.sessions.Current(ctx)
		if err != nil {
			return m.reject(c, err)
		}

		user := session.User
		if m.cfg.Guard.VerifyRemote {
			verified, err := m.sessions.VerifyUser(ctx)
			if err != nil {
				m.logger.WarnContext(ctx, "remote session verification failed", slog.Any("error", err))

				return m.reject(c, domainerrors.ErrUnauthorized)
			}
			user = verified
		}

		c.Set(KeySession, session)
		c.Set(KeySessionUser, user)

		return next(c)
	}
}

// isPublic matches by prefix, so nested routes under a public path stay public.
func (m *GuardMiddleware) isPublic(path string) bool {
	for _, public := range m.cfg.Guard.PublicPaths {
		if strings.HasPrefix(path, public) {
			return true
		}
	}

	return false
}

// reject redirects browser navigations to the sign-in page and hands API
// requests to the error handler.
func (m *GuardMiddleware) reject(c echo.Context, err error) error {
	if wantsHTML(c.Request()) {
		return c.Redirect(http.StatusFound, SignInPath)
	}

	return err
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// SessionFromContext returns the session the guard primed, or nil on a public
// route.
func SessionFromContext(c echo.Context) *entity.Session {
	if session, ok := c.Get(KeySession).(*entity.Session); ok {
		return session
	}

	return nil
}

// UserFromContext returns the raw user record the guard primed.
func UserFromContext(c echo.Context) json.RawMessage {
	if user, ok := c.Get(KeySessionUser).(json.RawMessage); ok {
		return user
	}

	return nil
}
