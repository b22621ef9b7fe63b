package usecase

import (
	"context"

	"dealerdesk/internal/domain/entity"
)

// AnalyticsUsecase caches the read-only analytics collections. Everything
// here is fetch-only; the marketplace computes the aggregates.
type AnalyticsUsecase interface {
	FetchCarViews(ctx context.Context) ([]entity.CarView, error)
	FetchDealerAnalytics(ctx context.Context) (*entity.DealerAnalytics, error)
	FetchTopSellers(ctx context.Context) ([]entity.TopSeller, error)
	FetchHighSaleCars(ctx context.Context) ([]entity.HighSaleCar, error)

	CarViews() []entity.CarView
	DealerAnalytics() *entity.DealerAnalytics
	TopSellers() []entity.TopSeller
	HighSaleCars() []entity.HighSaleCar

	Loading() bool
	LastError() string
}
