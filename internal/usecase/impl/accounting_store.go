package impl

import (
	"context"
	"fmt"
	"strconv"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/usecase"
)

const (
	expensesPath         = "/accounting/expenses/"
	carExpensesPath      = "/accounting/car-expenses/"
	revenuesPath         = "/accounting/revenues/"
	exchangeRatesPath    = "/accounting/exchange-rates/"
	financialReportsPath = "/accounting/financial-reports/"
	generateReportPath   = "/accounting/financial-reports/generate/"
)

type accountingStore struct {
	state storeState
	api   service.MarketplaceAPI

	expenses    collection[entity.Expense]
	carExpenses collection[entity.CarExpense]
	revenues    collection[entity.Revenue]
	rates       collection[entity.ExchangeRate]
	reports     collection[entity.FinancialReport]
}

// NewAccountingStore creates the resource store for the accounting collections.
func NewAccountingStore(api service.MarketplaceAPI) usecase.AccountingUsecase {
	return &accountingStore{api: api}
}

func detailPath(base string, id int64) string {
	return fmt.Sprintf("%s%d/", base, id)
}

func expenseID(e *entity.Expense) int64 { return e.ID }

func carExpenseID(e *entity.CarExpense) int64 { return e.ID }

func revenueID(r *entity.Revenue) int64 { return r.ID }

func exchangeRateID(r *entity.ExchangeRate) int64 { return r.ID }

func reportID(r *entity.FinancialReport) int64 { return r.ID }

// --- Expenses ---

func (s *accountingStore) FetchExpenses(ctx context.Context) ([]entity.Expense, error) {
	return fetchAll(ctx, s.api, &s.state, &s.expenses, expensesPath, nil)
}

func (s *accountingStore) CreateExpense(ctx context.Context, input *usecase.CreateExpenseInput) (*entity.Expense, error) {
	return createOne(ctx, s.api, &s.state, &s.expenses, expensesPath, input)
}

func (s *accountingStore) UpdateExpense(ctx context.Context, id int64, input *usecase.UpdateExpenseInput) (*entity.Expense, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.expenses, detailPath(expensesPath, id), id, input, expenseID)
}

func (s *accountingStore) DeleteExpense(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.expenses, detailPath(expensesPath, id), id, expenseID)
}

// --- Car expenses ---

func (s *accountingStore) FetchCarExpenses(ctx context.Context) ([]entity.CarExpense, error) {
	return fetchAll(ctx, s.api, &s.state, &s.carExpenses, carExpensesPath, nil)
}

func (s *accountingStore) CreateCarExpense(ctx context.Context, input *usecase.CreateCarExpenseInput) (*entity.CarExpense, error) {
	return createOne(ctx, s.api, &s.state, &s.carExpenses, carExpensesPath, input)
}

func (s *accountingStore) UpdateCarExpense(ctx context.Context, id int64, input *usecase.UpdateCarExpenseInput) (*entity.CarExpense, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.carExpenses, detailPath(carExpensesPath, id), id, input, carExpenseID)
}

func (s *accountingStore) DeleteCarExpense(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.carExpenses, detailPath(carExpensesPath, id), id, carExpenseID)
}

// --- Revenues ---

func (s *accountingStore) FetchRevenues(ctx context.Context) ([]entity.Revenue, error) {
	return fetchAll(ctx, s.api, &s.state, &s.revenues, revenuesPath, nil)
}

func (s *accountingStore) CreateRevenue(ctx context.Context, input *usecase.CreateRevenueInput) (*entity.Revenue, error) {
	return createOne(ctx, s.api, &s.state, &s.revenues, revenuesPath, input)
}

func (s *accountingStore) UpdateRevenue(ctx context.Context, id int64, input *usecase.UpdateRevenueInput) (*entity.Revenue, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.revenues, detailPath(revenuesPath, id), id, input, revenueID)
}

func (s *accountingStore) DeleteRevenue(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.revenues, detailPath(revenuesPath, id), id, revenueID)
}

// --- Exchange rates ---

func (s *accountingStore) FetchExchangeRates(ctx context.Context) ([]entity.ExchangeRate, error) {
	return fetchAll(ctx, s.api, &s.state, &s.rates, exchangeRatesPath, nil)
}

func (s *accountingStore) CreateExchangeRate(ctx context.Context, input *usecase.CreateExchangeRateInput) (*entity.ExchangeRate, error) {
	return createOne(ctx, s.api, &s.state, &s.rates, exchangeRatesPath, input)
}

func (s *accountingStore) UpdateExchangeRate(ctx context.Context, id int64, input *usecase.UpdateExchangeRateInput) (*entity.ExchangeRate, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.rates, detailPath(exchangeRatesPath, id), id, input, exchangeRateID)
}

func (s *accountingStore) DeleteExchangeRate(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.rates, detailPath(exchangeRatesPath, id), id, exchangeRateID)
}

// --- Financial reports ---

func (s *accountingStore) FetchFinancialReports(ctx context.Context) ([]entity.FinancialReport, error) {
	return fetchAll(ctx, s.api, &s.state, &s.reports, financialReportsPath, nil)
}

func (s *accountingStore) CreateFinancialReport(ctx context.Context, input *usecase.CreateFinancialReportInput) (*entity.FinancialReport, error) {
	return createOne(ctx, s.api, &s.state, &s.reports, financialReportsPath, input)
}

// GenerateFinancialReport asks the marketplace to compute a report for the
// period. The generated report joins the cache like a created one.
func (s *accountingStore) GenerateFinancialReport(ctx context.Context, input *usecase.GenerateFinancialReportInput) (*entity.FinancialReport, error) {
	return createOne(ctx, s.api, &s.state, &s.reports, generateReportPath, input)
}

func (s *accountingStore) UpdateFinancialReport(ctx context.Context, id int64, input *usecase.UpdateFinancialReportInput) (*entity.FinancialReport, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.reports, detailPath(financialReportsPath, id), id, input, reportID)
}

func (s *accountingStore) DeleteFinancialReport(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.reports, detailPath(financialReportsPath, id), id, reportID)
}

// --- Snapshots and aggregations ---

func (s *accountingStore) Expenses() []entity.Expense {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.expenses.items)
}

func (s *accountingStore) Revenues() []entity.Revenue {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.revenues.items)
}

// TotalExpenses sums the cached expense amounts. Unparseable amounts are
// skipped rather than poisoning the total.
func (s *accountingStore) TotalExpenses() float64 {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var total float64
	for i := range s.expenses.items {
		total += parseAmount(s.expenses.items[i].Amount)
	}

	return total
}

// TotalRevenue sums cached revenues in ETB, preferring the converted amount
// when the record carries one.
func (s *accountingStore) TotalRevenue() float64 {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var total float64
	for i := range s.revenues.items {
		rev := &s.revenues.items[i]
		if rev.ConvertedAmount != "" {
			total += parseAmount(rev.ConvertedAmount)

			continue
		}
		total += parseAmount(rev.Amount)
	}

	return total
}

// LatestExchangeRate returns the cached rate with the lexically greatest
// ISO date, or nil when none are cached.
func (s *accountingStore) LatestExchangeRate() *entity.ExchangeRate {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var latest *entity.ExchangeRate
	for i := range s.rates.items {
		rate := &s.rates.items[i]
		if latest == nil || rate.Date > latest.Date {
			latest = rate
		}
	}

	if latest == nil {
		return nil
	}

	out := *latest

	return &out
}

func (s *accountingStore) Loading() bool {
	return s.state.Loading()
}

func (s *accountingStore) LastError() string {
	return s.state.LastError()
}

func parseAmount(amount string) float64 {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0
	}

	return value
}
