package handler

import (
	"net/http"

	"dealerdesk/internal/delivery/http/response"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler exposes the read-only analytics rollups.
type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) CarViews(c echo.Context) error {
	views, err := h.uc.FetchCarViews(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

func (h *AnalyticsHandler) DealerAnalytics(c echo.Context) error {
	rollup, err := h.uc.FetchDealerAnalytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rollup, "")
}

func (h *AnalyticsHandler) TopSellers(c echo.Context) error {
	sellers, err := h.uc.FetchTopSellers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sellers, "")
}

func (h *AnalyticsHandler) HighSaleCars(c echo.Context) error {
	cars, err := h.uc.FetchHighSaleCars(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cars, "")
}
