package impl

import (
	"context"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/usecase"
)

const (
	salesPath = "/sales/"
	leadsPath = "/sales/leads/"
)

type salesStore struct {
	state storeState
	api   service.MarketplaceAPI

	sales collection[entity.Sale]
	leads collection[entity.Lead]
}

// NewSalesStore creates the resource store for sales and leads.
func NewSalesStore(api service.MarketplaceAPI) usecase.SalesUsecase {
	return &salesStore{api: api}
}

func saleID(s *entity.Sale) int64 { return s.ID }

func leadID(l *entity.Lead) int64 { return l.ID }

func (s *salesStore) FetchSales(ctx context.Context) ([]entity.Sale, error) {
	return fetchAll(ctx, s.api, &s.state, &s.sales, salesPath, nil)
}

func (s *salesStore) CreateSale(ctx context.Context, input *usecase.CreateSaleInput) (*entity.Sale, error) {
	return createOne(ctx, s.api, &s.state, &s.sales, salesPath, input)
}

func (s *salesStore) UpdateSale(ctx context.Context, id int64, input *usecase.UpdateSaleInput) (*entity.Sale, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.sales, detailPath(salesPath, id), id, input, saleID)
}

func (s *salesStore) DeleteSale(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.sales, detailPath(salesPath, id), id, saleID)
}

func (s *salesStore) FetchLeads(ctx context.Context) ([]entity.Lead, error) {
	return fetchAll(ctx, s.api, &s.state, &s.leads, leadsPath, nil)
}

func (s *salesStore) CreateLead(ctx context.Context, input *usecase.CreateLeadInput) (*entity.Lead, error) {
	return createOne(ctx, s.api, &s.state, &s.leads, leadsPath, input)
}

func (s *salesStore) UpdateLead(ctx context.Context, id int64, input *usecase.UpdateLeadInput) (*entity.Lead, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.leads, detailPath(leadsPath, id), id, input, leadID)
}

func (s *salesStore) DeleteLead(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.leads, detailPath(leadsPath, id), id, leadID)
}

func (s *salesStore) Sales() []entity.Sale {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.sales.items)
}

func (s *salesStore) Leads() []entity.Lead {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.leads.items)
}

func (s *salesStore) Loading() bool {
	return s.state.Loading()
}

func (s *salesStore) LastError() string {
	return s.state.LastError()
}
