package impl

import (
	"context"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/usecase"
)

const (
	carViewsPath        = "/inventory/car-views/dealer-analytics/"
	dealerAnalyticsPath = "/inventory/cars/dealer-analytics/"
	topSellersPath      = "/dealers/top-sellers/"
	highSaleCarsPath    = "/dealers/high-sale-cars/"
)

type analyticsStore struct {
	state storeState
	api   service.MarketplaceAPI

	carViews     collection[entity.CarView]
	topSellers   collection[entity.TopSeller]
	highSaleCars collection[entity.HighSaleCar]
	analytics    *entity.DealerAnalytics
}

// NewAnalyticsStore creates the read-only store for the analytics rollups.
func NewAnalyticsStore(api service.MarketplaceAPI) usecase.AnalyticsUsecase {
	return &analyticsStore{api: api}
}

func (s *analyticsStore) FetchCarViews(ctx context.Context) ([]entity.CarView, error) {
	return fetchAll(ctx, s.api, &s.state, &s.carViews, carViewsPath, nil)
}

func (s *analyticsStore) FetchDealerAnalytics(ctx context.Context) (*entity.DealerAnalytics, error) {
	s.state.begin()

	var rollup entity.DealerAnalytics
	err := s.api.Get(ctx, dealerAnalyticsPath, nil, &rollup)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.loading = false

	if err != nil {
		s.state.lastErr = failureMessage(err)

		return nil, err
	}

	s.analytics = &rollup
	out := rollup

	return &out, nil
}

func (s *analyticsStore) FetchTopSellers(ctx context.Context) ([]entity.TopSeller, error) {
	return fetchAll(ctx, s.api, &s.state, &s.topSellers, topSellersPath, nil)
}

func (s *analyticsStore) FetchHighSaleCars(ctx context.Context) ([]entity.HighSaleCar, error) {
	return fetchAll(ctx, s.api, &s.state, &s.highSaleCars, highSaleCarsPath, nil)
}

func (s *analyticsStore) CarViews() []entity.CarView {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.carViews.items)
}

func (s *analyticsStore) DealerAnalytics() *entity.DealerAnalytics {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.analytics == nil {
		return nil
	}
	out := *s.analytics

	return &out
}

func (s *analyticsStore) TopSellers() []entity.TopSeller {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.topSellers.items)
}

func (s *analyticsStore) HighSaleCars() []entity.HighSaleCar {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.highSaleCars.items)
}

func (s *analyticsStore) Loading() bool {
	return s.state.Loading()
}

func (s *analyticsStore) LastError() string {
	return s.state.LastError()
}
