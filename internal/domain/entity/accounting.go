package entity

// Amounts across the accounting records are decimal strings, exactly as the
// marketplace API serializes them. The console parses them only when it
// aggregates; it never rewrites them.

// Expense is a general dealer expense.
type Expense struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"` // e.g. "maintenance", "marketing", "salary"
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Dealer      int64  `json:"dealer"`
}

// CarExpense is an expense attributed to a single car on the lot.
type CarExpense struct {
	ID          int64  `json:"id"`
	Car         int64  `json:"car"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Revenue is an income record, optionally converted from USD.
type Revenue struct {
	ID              int64  `json:"id"`
	Source          string `json:"source"` // "car_sale" or "broker_payment"
	Amount          string `json:"amount"`
	Currency        string `json:"currency"` // "USD" or "ETB"
	ConvertedAmount string `json:"converted_amount"`
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
	Dealer          int64  `json:"dealer"`
}

// ExchangeRate is a dated USD/ETB rate used for currency conversion.
type ExchangeRate struct {
	ID   int64  `json:"id"`
	Rate string `json:"rate"`
	Date string `json:"date"`
}

// FinancialReport is a periodic summary generated by the marketplace.
type FinancialReport struct {
	ID            int64  `json:"id"`
	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	TotalRevenue  string `json:"total_revenue"`
	TotalExpenses string `json:"total_expenses"`
	NetProfit     string `json:"net_profit"`
	CreatedAt     string `json:"created_at"`
	Dealer        int64  `json:"dealer"`
}
