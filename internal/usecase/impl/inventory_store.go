package impl

import (
	"context"
	"net/url"
	"strconv"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/usecase"
)

const (
	carsPath   = "/inventory/cars/"
	makesPath  = "/inventory/makes/"
	modelsPath = "/inventory/models/"
)

type inventoryStore struct {
	state storeState
	api   service.MarketplaceAPI

	cars   collection[entity.Car]
	makes  collection[entity.Make]
	models collection[entity.Model]
	car    *entity.Car
}

// NewInventoryStore creates the store for the dealer's listings plus the
// make/model reference data.
func NewInventoryStore(api service.MarketplaceAPI) usecase.InventoryUsecase {
	return &inventoryStore{api: api}
}

func carID(c *entity.Car) int64 { return c.ID }

func (s *inventoryStore) FetchCars(ctx context.Context) ([]entity.Car, error) {
	return fetchAll(ctx, s.api, &s.state, &s.cars, carsPath, nil)
}

func (s *inventoryStore) FetchFilteredCars(ctx context.Context, filter entity.CarFilter) ([]entity.Car, error) {
	return fetchAll(ctx, s.api, &s.state, &s.cars, carsPath, filterQuery(filter))
}

// FetchCarByID loads one listing into the single-car slot without touching
// the cached sequence.
func (s *inventoryStore) FetchCarByID(ctx context.Context, id int64) (*entity.Car, error) {
	s.state.begin()

	var car entity.Car
	err := s.api.Get(ctx, detailPath(carsPath, id), nil, &car)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.loading = false

	if err != nil {
		s.state.lastErr = failureMessage(err)

		return nil, err
	}

	s.car = &car
	out := car

	return &out, nil
}

func (s *inventoryStore) PostCar(ctx context.Context, input *usecase.PostCarInput) (*entity.Car, error) {
	return createOne(ctx, s.api, &s.state, &s.cars, carsPath, input)
}

func (s *inventoryStore) FetchMakes(ctx context.Context) ([]entity.Make, error) {
	return fetchAll(ctx, s.api, &s.state, &s.makes, makesPath, nil)
}

func (s *inventoryStore) FetchModels(ctx context.Context, makeID int64) ([]entity.Model, error) {
	query := url.Values{}
	if makeID > 0 {
		query.Set("make", strconv.FormatInt(makeID, 10))
	}

	return fetchAll(ctx, s.api, &s.state, &s.models, modelsPath, query)
}

func (s *inventoryStore) Cars() []entity.Car {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.cars.items)
}

func (s *inventoryStore) Car() *entity.Car {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.car == nil {
		return nil
	}
	out := *s.car

	return &out
}

func (s *inventoryStore) Makes() []entity.Make {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.makes.items)
}

func (s *inventoryStore) Models() []entity.Model {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.models.items)
}

func (s *inventoryStore) Loading() bool {
	return s.state.Loading()
}

func (s *inventoryStore) LastError() string {
	return s.state.LastError()
}

// filterQuery translates the filter into query parameters, omitting zero values.
func filterQuery(filter entity.CarFilter) url.Values {
	query := url.Values{}
	if filter.Make != "" {
		query.Set("make", filter.Make)
	}
	if filter.Model != "" {
		query.Set("model", filter.Model)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.MinPrice != "" {
		query.Set("min_price", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query.Set("max_price", filter.MaxPrice)
	}
	if filter.YearFrom > 0 {
		query.Set("year_from", strconv.Itoa(filter.YearFrom))
	}
	if filter.YearTo > 0 {
		query.Set("year_to", strconv.Itoa(filter.YearTo))
	}

	return query
}
