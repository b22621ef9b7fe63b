package usecase

import (
	"context"

	"dealerdesk/internal/domain/entity"
)

// --- Input DTOs ---
// Create inputs carry every field except the server-assigned ones; update
// inputs are partial, with nil meaning "leave untouched".

type CreateExpenseInput struct {
	Type        string `json:"type" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description"`
	Dealer      int64  `json:"dealer"`
}

type UpdateExpenseInput struct {
	Type        *string `json:"type,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateCarExpenseInput struct {
	Car         int64  `json:"car" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description"`
}

type UpdateCarExpenseInput struct {
	Type        *string `json:"type,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateRevenueInput struct {
	Source          string `json:"source" validate:"required,oneof=car_sale broker_payment"`
	Amount          string `json:"amount" validate:"required"`
	Currency        string `json:"currency" validate:"required,oneof=USD ETB"`
	ConvertedAmount string `json:"converted_amount"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
	Dealer          int64  `json:"dealer" validate:"required"`
}

type UpdateRevenueInput struct {
	Source          *string `json:"source,omitempty"`
	Amount          *string `json:"amount,omitempty"`
	Currency        *string `json:"currency,omitempty"`
	ConvertedAmount *string `json:"converted_amount,omitempty"`
	Description     *string `json:"description,omitempty"`
}

type CreateExchangeRateInput struct {
	Rate string `json:"rate" validate:"required"`
	Date string `json:"date" validate:"required"`
}

type UpdateExchangeRateInput struct {
	Rate *string `json:"rate,omitempty"`
	Date *string `json:"date,omitempty"`
}

type CreateFinancialReportInput struct {
	PeriodStart   string `json:"period_start" validate:"required"`
	PeriodEnd     string `json:"period_end" validate:"required"`
	TotalRevenue  string `json:"total_revenue"`
	TotalExpenses string `json:"total_expenses"`
	NetProfit     string `json:"net_profit"`
	Dealer        int64  `json:"dealer"`
}

type UpdateFinancialReportInput struct {
	PeriodStart   *string `json:"period_start,omitempty"`
	PeriodEnd     *string `json:"period_end,omitempty"`
	TotalRevenue  *string `json:"total_revenue,omitempty"`
	TotalExpenses *string `json:"total_expenses,omitempty"`
	NetProfit     *string `json:"net_profit,omitempty"`
}

// GenerateFinancialReportInput asks the marketplace to build a report for a period.
type GenerateFinancialReportInput struct {
	PeriodStart string `json:"period_start" validate:"required"`
	PeriodEnd   string `json:"period_end" validate:"required"`
}

// AccountingUsecase is the resource store for the accounting collections:
// expenses, car expenses, revenues, exchange rates and financial reports.
//
// Fetch replaces the cached sequence wholesale; create prepends the server's
// record; update replaces by id; delete removes only after the server
// confirms. The store keeps one shared loading flag and a single last-error
// message; concurrent calls race last-write-wins.
type AccountingUsecase interface {
	FetchExpenses(ctx context.Context) ([]entity.Expense, error)
	CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error)
	UpdateExpense(ctx context.Context, id int64, input *UpdateExpenseInput) (*entity.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error

	FetchCarExpenses(ctx context.Context) ([]entity.CarExpense, error)
	CreateCarExpense(ctx context.Context, input *CreateCarExpenseInput) (*entity.CarExpense, error)
	UpdateCarExpense(ctx context.Context, id int64, input *UpdateCarExpenseInput) (*entity.CarExpense, error)
	DeleteCarExpense(ctx context.Context, id int64) error

	FetchRevenues(ctx context.Context) ([]entity.Revenue, error)
	CreateRevenue(ctx context.Context, input *CreateRevenueInput) (*entity.Revenue, error)
	UpdateRevenue(ctx context.Context, id int64, input *UpdateRevenueInput) (*entity.Revenue, error)
	DeleteRevenue(ctx context.Context, id int64) error

	FetchExchangeRates(ctx context.Context) ([]entity.ExchangeRate, error)
	CreateExchangeRate(ctx context.Context, input *CreateExchangeRateInput) (*entity.ExchangeRate, error)
	UpdateExchangeRate(ctx context.Context, id int64, input *UpdateExchangeRateInput) (*entity.ExchangeRate, error)
	DeleteExchangeRate(ctx context.Context, id int64) error

	FetchFinancialReports(ctx context.Context) ([]entity.FinancialReport, error)
	CreateFinancialReport(ctx context.Context, input *CreateFinancialReportInput) (*entity.FinancialReport, error)
	GenerateFinancialReport(ctx context.Context, input *GenerateFinancialReportInput) (*entity.FinancialReport, error)
	UpdateFinancialReport(ctx context.Context, id int64, input *UpdateFinancialReportInput) (*entity.FinancialReport, error)
	DeleteFinancialReport(ctx context.Context, id int64) error

	// Cached snapshots and aggregations, computed from the local sequences.
	Expenses() []entity.Expense
	Revenues() []entity.Revenue
	TotalExpenses() float64
	TotalRevenue() float64
	LatestExchangeRate() *entity.ExchangeRate

	Loading() bool
	LastError() string
}
