package impl

import (
	"context"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/usecase"
)

const dealerMePath = "/dealers/me/"

type profileStore struct {
	state  storeState
	api    service.MarketplaceAPI
	dealer *entity.Dealer
}

// NewProfileStore creates the store caching the dealer's own record.
func NewProfileStore(api service.MarketplaceAPI) usecase.ProfileUsecase {
	return &profileStore{api: api}
}

func (s *profileStore) FetchDealer(ctx context.Context) (*entity.Dealer, error) {
	s.state.begin()

	var dealer entity.Dealer
	err := s.api.Get(ctx, dealerMePath, nil, &dealer)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.loading = false

	if err != nil {
		s.state.lastErr = failureMessage(err)

		return nil, err
	}

	s.dealer = &dealer
	out := dealer

	return &out, nil
}

func (s *profileStore) UpdateDealer(ctx context.Context, update *entity.DealerUpdate) (*entity.Dealer, error) {
	s.state.begin()

	var dealer entity.Dealer
	err := s.api.Patch(ctx, dealerMePath, update, &dealer)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.loading = false

	if err != nil {
		s.state.lastErr = failureMessage(err)

		return nil, err
	}

	s.dealer = &dealer
	out := dealer

	return &out, nil
}

func (s *profileStore) Dealer() *entity.Dealer {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.dealer == nil {
		return nil
	}
	out := *s.dealer

	return &out
}

func (s *profileStore) Loading() bool {
	return s.state.Loading()
}

func (s *profileStore) LastError() string {
	return s.state.LastError()
}
