package handler

import (
	"net/http"
	"strconv"

	"dealerdesk/internal/delivery/http/response"
	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler exposes the dealer's listings and the make/model reference data.
type InventoryHandler struct {
	uc usecase.InventoryUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListCars fetches listings, filtered when any filter query parameter is set.
func (h *InventoryHandler) ListCars(c echo.Context) error {
	filter := carFilterFromQuery(c)

	var (
		cars []entity.Car
		err  error
	)
	if filter == (entity.CarFilter{}) {
		cars, err = h.uc.FetchCars(c.Request().Context())
	} else {
		cars, err = h.uc.FetchFilteredCars(c.Request().Context(), filter)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cars, "")
}

func (h *InventoryHandler) GetCar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	car, err := h.uc.FetchCarByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, car, "")
}

func (h *InventoryHandler) PostCar(c echo.Context) error {
	var input *usecase.PostCarInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	car, err := h.uc.PostCar(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, car, "Listing posted")
}

func (h *InventoryHandler) ListMakes(c echo.Context) error {
	makes, err := h.uc.FetchMakes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, makes, "")
}

// ListModels fetches models, scoped to a make when ?make= is given.
func (h *InventoryHandler) ListModels(c echo.Context) error {
	var makeID int64
	if raw := c.QueryParam("make"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "make must be an integer")
		}
		makeID = parsed
	}

	models, err := h.uc.FetchModels(c.Request().Context(), makeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, models, "")
}

func carFilterFromQuery(c echo.Context) entity.CarFilter {
	filter := entity.CarFilter{
		Make:     c.QueryParam("make"),
		Model:    c.QueryParam("model"),
		Status:   c.QueryParam("status"),
		MinPrice: c.QueryParam("min_price"),
		MaxPrice: c.QueryParam("max_price"),
	}
	if year, err := strconv.Atoi(c.QueryParam("year_from")); err == nil {
		filter.YearFrom = year
	}
	if year, err := strconv.Atoi(c.QueryParam("year_to")); err == nil {
		filter.YearTo = year
	}

	return filter
}
