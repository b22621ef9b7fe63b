package entity

// Sale records a completed or in-progress car sale.
type Sale struct {
	ID         int64  `json:"id"`
	Car        int64  `json:"car"`
	Buyer      string `json:"buyer"`
	Price      string `json:"price"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	Dealer     int64  `json:"dealer"`
	PaymentRef string `json:"payment_ref"`
}

// Lead is a prospective buyer captured from a listing.
type Lead struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Car       int64  `json:"car"`
	Status    string `json:"status"` // "new", "contacted", "converted", "lost"
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}
