package usecase

import (
	"context"

	"dealerdesk/internal/domain/entity"
)

// ProfileUsecase caches the dealer record behind /dealers/me/.
type ProfileUsecase interface {
	FetchDealer(ctx context.Context) (*entity.Dealer, error)
	UpdateDealer(ctx context.Context, update *entity.DealerUpdate) (*entity.Dealer, error)

	Dealer() *entity.Dealer

	Loading() bool
	LastError() string
}
