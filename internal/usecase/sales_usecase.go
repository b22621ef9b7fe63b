package usecase

import (
	"context"

	"dealerdesk/internal/domain/entity"
)

type CreateSaleInput struct {
	Car        int64  `json:"car" validate:"required"`
	Buyer      string `json:"buyer" validate:"required"`
	Price      string `json:"price" validate:"required"`
	Status     string `json:"status"`
	PaymentRef string `json:"payment_ref"`
	Dealer     int64  `json:"dealer"`
}

type UpdateSaleInput struct {
	Buyer      *string `json:"buyer,omitempty"`
	Price      *string `json:"price,omitempty"`
	Status     *string `json:"status,omitempty"`
	PaymentRef *string `json:"payment_ref,omitempty"`
}

type CreateLeadInput struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Car     int64  `json:"car"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

type UpdateLeadInput struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
	Status  *string `json:"status,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// SalesUsecase is the resource store for sales and leads.
type SalesUsecase interface {
	FetchSales(ctx context.Context) ([]entity.Sale, error)
	CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error)
	UpdateSale(ctx context.Context, id int64, input *UpdateSaleInput) (*entity.Sale, error)
	DeleteSale(ctx context.Context, id int64) error

	FetchLeads(ctx context.Context) ([]entity.Lead, error)
	CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error)
	UpdateLead(ctx context.Context, id int64, input *UpdateLeadInput) (*entity.Lead, error)
	DeleteLead(ctx context.Context, id int64) error

	Sales() []entity.Sale
	Leads() []entity.Lead

	Loading() bool
	LastError() string
}
