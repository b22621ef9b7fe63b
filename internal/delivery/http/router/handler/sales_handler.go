package handler

import (
	"net/http"

	"dealerdesk/internal/delivery/http/response"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SalesHandler exposes sales and leads.
type SalesHandler struct {
	uc usecase.SalesUsecase
}

// NewSalesHandler is the constructor for SalesHandler, injected by Fx.
func NewSalesHandler(uc usecase.SalesUsecase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

func (h *SalesHandler) ListSales(c echo.Context) error {
	sales, err := h.uc.FetchSales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "")
}

func (h *SalesHandler) CreateSale(c echo.Context) error {
	var input *usecase.CreateSaleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	sale, err := h.uc.CreateSale(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale recorded")
}

func (h *SalesHandler) UpdateSale(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateSaleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	sale, err := h.uc.UpdateSale(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale updated")
}

func (h *SalesHandler) DeleteSale(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSale(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale deleted")
}

func (h *SalesHandler) ListLeads(c echo.Context) error {
	leads, err := h.uc.FetchLeads(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, leads, "")
}

func (h *SalesHandler) CreateLead(c echo.Context) error {
	var input *usecase.CreateLeadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	lead, err := h.uc.CreateLead(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, lead, "Lead recorded")
}

func (h *SalesHandler) UpdateLead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateLeadInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}

	lead, err := h.uc.UpdateLead(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead updated")
}

func (h *SalesHandler) DeleteLead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteLead(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Lead deleted")
}
