// Package middleware holds the HTTP middleware of the console.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"dealerdesk/internal/delivery/http/response"
	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if mapped := upstreamAppError(err); mapped != nil {
		err = mapped
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}

// upstreamAppError converts the marketplace client's sentinel errors into the
// business error taxonomy: a 401 that survived the refresh is an auth failure,
// every other upstream category is a 502.
func upstreamAppError(err error) domainerrors.AppError {
	switch {
	case errors.Is(err, service.ErrMarketplaceUnauthorized):
		return domainerrors.ErrUnauthorized.WithDetails(err.Error())
	case errors.Is(err, service.ErrMarketplaceUnavailable):
		return domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	case errors.Is(err, service.ErrMarketplaceRejected):
		return domainerrors.ErrUpstreamRejected.WithDetails(err.Error())
	case errors.Is(err, service.ErrMarketplaceMalformed):
		return domainerrors.ErrMalformedResponse.WithDetails(err.Error())
	default:
		return nil
	}
}
