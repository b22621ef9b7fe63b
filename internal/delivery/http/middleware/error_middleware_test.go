package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_UpstreamSentinelsMapToStatuses(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "unauthorized after refresh",
			err:      errors.Wrap(service.ErrMarketplaceUnauthorized, "still unauthorized after refresh"),
			wantCode: http.StatusUnauthorized,
			wantBody: "UNAUTHORIZED",
		},
		{
			name:     "unreachable",
			err:      errors.Wrap(service.ErrMarketplaceUnavailable, "connection refused"),
			wantCode: http.StatusBadGateway,
			wantBody: "UPSTREAM_UNAVAILABLE",
		},
		{
			name:     "rejected",
			err:      errors.Wrap(service.ErrMarketplaceRejected, "status 400"),
			wantCode: http.StatusBadGateway,
			wantBody: "UPSTREAM_REJECTED",
		},
		{
			name:     "malformed body",
			err:      errors.Wrap(service.ErrMarketplaceMalformed, "invalid character"),
			wantCode: http.StatusBadGateway,
			wantBody: "MALFORMED_RESPONSE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runErrorHandler(t, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorMiddleware_AppErrorPassesThrough(t *testing.T) {
	rec := runErrorHandler(t, domainerrors.ErrNoSession)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_SESSION")
}

func TestErrorMiddleware_WrappedAppErrorPassesThrough(t *testing.T) {
	rec := runErrorHandler(t, errors.Wrap(domainerrors.ErrMissingRefreshToken, "refresh"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_REFRESH_TOKEN")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_UnknownErrorIsInternal(t *testing.T) {
	rec := runErrorHandler(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
