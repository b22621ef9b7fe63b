package impl

import (
	"context"
	"net/url"
	"testing"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryStore_FetchFilteredCarsBuildsQuery(t *testing.T) {
	var gotQuery url.Values
	api := &fakeAPI{
		getFn: func(path string, query url.Values, out any) error {
			assert.Equal(t, "/inventory/cars/", path)
			gotQuery = query
			setOut(out, []entity.Car{{ID: 1, Make: "Toyota"}})

			return nil
		},
	}
	store := NewInventoryStore(api)

	cars, err := store.FetchFilteredCars(context.Background(), entity.CarFilter{
		Make:     "Toyota",
		Status:   "available",
		MinPrice: "10000",
		YearFrom: 2020,
	})
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	assert.Equal(t, "Toyota", gotQuery.Get("make"))
	assert.Equal(t, "available", gotQuery.Get("status"))
	assert.Equal(t, "10000", gotQuery.Get("min_price"))
	assert.Equal(t, "2020", gotQuery.Get("year_from"))
	assert.False(t, gotQuery.Has("model"), "zero values stay out of the query")
	assert.False(t, gotQuery.Has("year_to"))
}

func TestInventoryStore_FetchCarByIDFillsSingleSlot(t *testing.T) {
	api := &fakeAPI{
		getFn: func(path string, _ url.Values, out any) error {
			assert.Equal(t, "/inventory/cars/5/", path)
			setOut(out, entity.Car{ID: 5, Make: "BYD"})

			return nil
		},
	}
	store := NewInventoryStore(api)

	car, err := store.FetchCarByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "BYD", car.Make)

	cached := store.Car()
	require.NotNil(t, cached)
	assert.Equal(t, int64(5), cached.ID)
	assert.Empty(t, store.Cars(), "single-car fetch leaves the sequence alone")
}

func TestInventoryStore_PostCarPrepends(t *testing.T) {
	api := &fakeAPI{
		postFn: func(path string, body, out any) error {
			input := body.(*usecase.PostCarInput)
			setOut(out, entity.Car{ID: 11, Make: input.Make, Model: input.Model})

			return nil
		},
	}
	store := NewInventoryStore(api)

	inner := store.(*inventoryStore)
	inner.cars.items = []entity.Car{{ID: 10}}

	car, err := store.PostCar(context.Background(), &usecase.PostCarInput{Make: "Toyota", Model: "Corolla", Year: 2022, Price: "30000.00"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), car.ID)

	cached := store.Cars()
	require.Len(t, cached, 2)
	assert.Equal(t, int64(11), cached[0].ID)
}

func TestInventoryStore_FetchModelsScopedToMake(t *testing.T) {
	api := &fakeAPI{
		getFn: func(path string, query url.Values, out any) error {
			assert.Equal(t, "/inventory/models/", path)
			assert.Equal(t, "3", query.Get("make"))
			setOut(out, []entity.Model{{ID: 1, Make: 3, Name: "Corolla"}})

			return nil
		},
	}
	store := NewInventoryStore(api)

	models, err := store.FetchModels(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "Corolla", models[0].Name)
}
