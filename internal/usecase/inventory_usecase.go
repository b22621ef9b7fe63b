package usecase

import (
	"context"

	"dealerdesk/internal/domain/entity"
)

// PostCarInput is the listing creation body. Server-assigned fields (id,
// timestamps, verification state, ratings) are absent by construction.
type PostCarInput struct {
	Make          string   `json:"make" validate:"required"`
	Model         string   `json:"model" validate:"required"`
	Year          int      `json:"year" validate:"required"`
	Price         string   `json:"price" validate:"required"`
	Mileage       int64    `json:"mileage"`
	FuelType      string   `json:"fuel_type" validate:"required,oneof=electric hybrid petrol diesel"`
	BodyType      string   `json:"body_type" validate:"required"`
	ExteriorColor string   `json:"exterior_color"`
	InteriorColor string   `json:"interior_color"`
	Engine        string   `json:"engine"`
	Bluetooth     bool     `json:"bluetooth"`
	Drivetrain    string   `json:"drivetrain"`
	SaleType      string   `json:"sale_type"`
	AuctionEnd    *string  `json:"auction_end,omitempty"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	MakeRef       int64    `json:"make_ref"`
	ModelRef      int64    `json:"model_ref"`
}

// InventoryUsecase is the resource store for the dealer's listings and the
// make/model reference data.
type InventoryUsecase interface {
	FetchCars(ctx context.Context) ([]entity.Car, error)
	FetchFilteredCars(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error)
	FetchCarByID(ctx context.Context, id int64) (*entity.Car, error)
	PostCar(ctx context.Context, input *PostCarInput) (*entity.Car, error)

	FetchMakes(ctx context.Context) ([]entity.Make, error)
	FetchModels(ctx context.Context, makeID int64) ([]entity.Model, error)

	Cars() []entity.Car
	Car() *entity.Car
	Makes() []entity.Make
	Models() []entity.Model

	Loading() bool
	LastError() string
}
