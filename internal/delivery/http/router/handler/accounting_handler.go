package handler

import (
	"net/http"

	"dealerdesk/internal/delivery/http/response"
	"dealerdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountingHandler exposes the accounting collections.
type AccountingHandler struct {
	uc usecase.AccountingUsecase
}

// NewAccountingHandler is the constructor for AccountingHandler, injected by Fx.
func NewAccountingHandler(uc usecase.AccountingUsecase) *AccountingHandler {
	return &AccountingHandler{uc: uc}
}

// --- Expenses ---

func (h *AccountingHandler) ListExpenses(c echo.Context) error {
	expenses, err := h.uc.FetchExpenses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, expenses, "")
}

func (h *AccountingHandler) CreateExpense(c echo.Context) error {
	var input *usecase.CreateExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	expense, err := h.uc.CreateExpense(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, expense, "Expense recorded")
}

func (h *AccountingHandler) UpdateExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}

	expense, err := h.uc.UpdateExpense(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, expense, "Expense updated")
}

func (h *AccountingHandler) DeleteExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteExpense(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Expense deleted")
}

// --- Car expenses ---

func (h *AccountingHandler) ListCarExpenses(c echo.Context) error {
	expenses, err := h.uc.FetchCarExpenses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, expenses, "")
}

func (h *AccountingHandler) CreateCarExpense(c echo.Context) error {
	var input *usecase.CreateCarExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car expense input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	expense, err := h.uc.CreateCarExpense(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, expense, "Car expense recorded")
}

func (h *AccountingHandler) UpdateCarExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCarExpenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car expense input")
	}

	expense, err := h.uc.UpdateCarExpense(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, expense, "Car expense updated")
}

func (h *AccountingHandler) DeleteCarExpense(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCarExpense(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Car expense deleted")
}

// --- Revenues ---

func (h *AccountingHandler) ListRevenues(c echo.Context) error {
	revenues, err := h.uc.FetchRevenues(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, revenues, "")
}

func (h *AccountingHandler) CreateRevenue(c echo.Context) error {
	var input *usecase.CreateRevenueInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revenue input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	revenue, err := h.uc.CreateRevenue(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, revenue, "Revenue recorded")
}

func (h *AccountingHandler) UpdateRevenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateRevenueInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid revenue input")
	}

	revenue, err := h.uc.UpdateRevenue(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, revenue, "Revenue updated")
}

func (h *AccountingHandler) DeleteRevenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRevenue(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Revenue deleted")
}

// --- Exchange rates ---

func (h *AccountingHandler) ListExchangeRates(c echo.Context) error {
	rates, err := h.uc.FetchExchangeRates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rates, "")
}

func (h *AccountingHandler) CreateExchangeRate(c echo.Context) error {
	var input *usecase.CreateExchangeRateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exchange rate input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	rate, err := h.uc.CreateExchangeRate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rate, "Exchange rate recorded")
}

func (h *AccountingHandler) UpdateExchangeRate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateExchangeRateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exchange rate input")
	}

	rate, err := h.uc.UpdateExchangeRate(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rate, "Exchange rate updated")
}

func (h *AccountingHandler) DeleteExchangeRate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteExchangeRate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Exchange rate deleted")
}

// --- Financial reports ---

func (h *AccountingHandler) ListFinancialReports(c echo.Context) error {
	reports, err := h.uc.FetchFinancialReports(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

func (h *AccountingHandler) CreateFinancialReport(c echo.Context) error {
	var input *usecase.CreateFinancialReportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	report, err := h.uc.CreateFinancialReport(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, report, "Report recorded")
}

// GenerateFinancialReport asks the marketplace to compute a report for a period.
func (h *AccountingHandler) GenerateFinancialReport(c echo.Context) error {
	var input *usecase.GenerateFinancialReportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report period input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	report, err := h.uc.GenerateFinancialReport(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, report, "Report generated")
}

func (h *AccountingHandler) UpdateFinancialReport(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateFinancialReportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}

	report, err := h.uc.UpdateFinancialReport(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Report updated")
}

func (h *AccountingHandler) DeleteFinancialReport(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteFinancialReport(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Report deleted")
}

// Summary returns the aggregations computed from the cached collections.
func (h *AccountingHandler) Summary(c echo.Context) error {
	summary := echo.Map{
		"total_expenses": h.uc.TotalExpenses(),
		"total_revenue":  h.uc.TotalRevenue(),
	}
	if rate := h.uc.LatestExchangeRate(); rate != nil {
		summary["latest_exchange_rate"] = rate
	}

	return response.Success(c, http.StatusOK, summary, "")
}
