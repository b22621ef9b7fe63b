package entity

// Profile is the person behind a dealer account.
type Profile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Contact   string `json:"contact"`
	Address   string `json:"address"`
	Image     string `json:"image"`
}

// Dealer is the authenticated business entity operating the console.
// The marketplace owns the record; the console only caches it.
type Dealer struct {
	ID              int64   `json:"id"`
	Profile         Profile `json:"profile"`
	Role            string  `json:"role"`
	CompanyName     string  `json:"company_name"`
	LicenseNumber   string  `json:"license_number"`
	TaxID           string  `json:"tax_id"`
	TelebirrAccount string  `json:"telebirr_account"`
	IsVerified      bool    `json:"is_verified"`
}

// DealerUpdate is the PATCH body for /dealers/me/. Nil fields are omitted.
type DealerUpdate struct {
	CompanyName     *string `json:"company_name,omitempty"`
	LicenseNumber   *string `json:"license_number,omitempty"`
	TaxID           *string `json:"tax_id,omitempty"`
	TelebirrAccount *string `json:"telebirr_account,omitempty"`
}

// Employee is a member of the dealer's staff.
type Employee struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Dealer    int64  `json:"dealer"`
}
