package handler

import (
	"net/http"

	"dealerdesk/internal/delivery/http/response"
	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler exposes the dealer's own record.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) GetDealer(c echo.Context) error {
	dealer, err := h.uc.FetchDealer(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dealer, "")
}

func (h *ProfileHandler) UpdateDealer(c echo.Context) error {
	var update *entity.DealerUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid dealer input")
	}

	dealer, err := h.uc.UpdateDealer(c.Request().Context(), update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dealer, "Dealer profile updated")
}
