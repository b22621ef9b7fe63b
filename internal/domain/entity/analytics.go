package entity

// CarView aggregates listing views for one car.
type CarView struct {
	CarID      int64  `json:"car_id"`
	CarMake    string `json:"car_make"`
	CarModel   string `json:"car_model"`
	TotalViews int64  `json:"total_views"`
}

// ModelStats summarizes sales performance of one make/model pair.
type ModelStats struct {
	MakeName   string  `json:"make_name"`
	ModelName  string  `json:"model_name"`
	TotalSold  int64   `json:"total_sold"`
	TotalSales float64 `json:"total_sales"`
	AvgPrice   float64 `json:"avg_price"`
}

// DealerAnalytics is the marketplace's rollup for the dealer's inventory.
type DealerAnalytics struct {
	TotalCars    int64        `json:"total_cars"`
	SoldCars     int64        `json:"sold_cars"`
	AveragePrice float64      `json:"average_price"`
	ModelStats   []ModelStats `json:"model_stats"`
}

// TopSeller is one entry of the marketplace's top-sellers board.
type TopSeller struct {
	DealerID    int64   `json:"dealer_id"`
	CompanyName string  `json:"company_name"`
	TotalSold   int64   `json:"total_sold"`
	TotalSales  float64 `json:"total_sales"`
}

// HighSaleCar is a car ranked by sale price across the marketplace.
type HighSaleCar struct {
	CarID    int64  `json:"car_id"`
	CarMake  string `json:"car_make"`
	CarModel string `json:"car_model"`
	Price    string `json:"price"`
	SoldAt   string `json:"sold_at"`
}
