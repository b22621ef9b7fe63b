package handler

import (
	"net/http"

	"dealerdesk/internal/delivery/http/response"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HRHandler exposes staff, attendances and contracts.
type HRHandler struct {
	uc usecase.HRUsecase
}

// NewHRHandler is the constructor for HRHandler, injected by Fx.
func NewHRHandler(uc usecase.HRUsecase) *HRHandler {
	return &HRHandler{uc: uc}
}

// --- Staff ---

func (h *HRHandler) ListStaff(c echo.Context) error {
	staff, err := h.uc.FetchStaff(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, staff, "")
}

func (h *HRHandler) CreateStaff(c echo.Context) error {
	var input *usecase.CreateStaffInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	employee, err := h.uc.CreateStaff(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, employee, "Staff member added")
}

func (h *HRHandler) UpdateStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateStaffInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	employee, err := h.uc.UpdateStaff(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "Staff member updated")
}

func (h *HRHandler) DeleteStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStaff(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Staff member removed")
}

// --- Attendances ---

func (h *HRHandler) ListAttendances(c echo.Context) error {
	attendances, err := h.uc.FetchAttendances(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attendances, "")
}

func (h *HRHandler) CreateAttendance(c echo.Context) error {
	var input *usecase.CreateAttendanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attendance input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	attendance, err := h.uc.CreateAttendance(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attendance, "Attendance recorded")
}

func (h *HRHandler) UpdateAttendance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateAttendanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attendance input")
	}

	attendance, err := h.uc.UpdateAttendance(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attendance, "Attendance updated")
}

func (h *HRHandler) DeleteAttendance(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAttendance(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Attendance deleted")
}

// --- Contracts ---

func (h *HRHandler) ListContracts(c echo.Context) error {
	contracts, err := h.uc.FetchContracts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contracts, "")
}

func (h *HRHandler) CreateContract(c echo.Context) error {
	var input *usecase.CreateContractInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	contract, err := h.uc.CreateContract(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contract, "Contract recorded")
}

func (h *HRHandler) UpdateContract(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateContractInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}

	contract, err := h.uc.UpdateContract(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contract, "Contract updated")
}

func (h *HRHandler) DeleteContract(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteContract(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contract deleted")
}
