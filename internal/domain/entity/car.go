package entity

// Car is a listing as the marketplace serializes it.
type Car struct {
	ID                  int64      `json:"id"`
	Make                string     `json:"make"`
	Model               string     `json:"model"`
	Year                int        `json:"year"`
	Price               string     `json:"price"`
	Mileage             int64      `json:"mileage"`
	FuelType            string     `json:"fuel_type"` // "electric", "hybrid", "petrol", "diesel"
	Condition           string     `json:"condition,omitempty"`
	BodyType            string     `json:"body_type"`
	ExteriorColor       string     `json:"exterior_color"`
	InteriorColor       string     `json:"interior_color"`
	Engine              string     `json:"engine"`
	Bluetooth           bool       `json:"bluetooth"`
	Drivetrain          string     `json:"drivetrain"` // "fwd", "rwd", "awd", "4wd"
	Status              string     `json:"status"`     // "available" through "archived"
	SaleType            string     `json:"sale_type"`  // "fixed_price" or "auction"
	AuctionEnd          *string    `json:"auction_end"`
	Priority            bool       `json:"priority"`
	Location            string     `json:"location"`
	Description         string     `json:"description"`
	Features            []string   `json:"features"`
	Images              []CarImage `json:"images"`
	Dealer              *int64     `json:"dealer"`
	Broker              *int64     `json:"broker"`
	PostedBy            int64      `json:"posted_by"`
	MakeRef             int64      `json:"make_ref"`
	ModelRef            int64      `json:"model_ref"`
	VerificationStatus  string     `json:"verification_status"` // "pending", "verified", "rejected"
	DealerAverageRating *float64   `json:"dealer_average_rating"`
	BrokerAverageRating *float64   `json:"broker_average_rating"`
	CreatedAt           string     `json:"created_at"`
	UpdatedAt           string     `json:"updated_at"`
}

// CarImage is one photo attached to a listing.
type CarImage struct {
	ID         int64  `json:"id"`
	Car        int64  `json:"car"`
	ImageURL   string `json:"image_url"`
	IsFeatured bool   `json:"is_featured"`
	Caption    string `json:"caption"`
	UploadedAt string `json:"uploaded_at"`
}

// Make is a car manufacturer reference record.
type Make struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Model is a car model reference record, scoped to a make.
type Model struct {
	ID   int64  `json:"id"`
	Make int64  `json:"make"`
	Name string `json:"name"`
}

// CarFilter narrows a car listing fetch. Zero values are omitted from the query.
type CarFilter struct {
	Make     string
	Model    string
	Status   string
	MinPrice string
	MaxPrice string
	YearFrom int
	YearTo   int
}
