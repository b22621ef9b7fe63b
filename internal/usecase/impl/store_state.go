// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"net/url"
	"slices"
	"sync"

	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/errors"
)

// storeState is the shared render state of one resource store: the loading
// flag and the single last-error message. Concurrent operations are neither
// de-duplicated nor queued; whichever call completes last wins both fields.
type storeState struct {
	mu      sync.Mutex
	loading bool
	lastErr string
}

// begin marks an operation in flight and resets the last error.
func (s *storeState) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *storeState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *storeState) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}

// collection is one cached remote sequence plus its fetch generation. The
// generation lets a fetch detect that a newer fetch superseded it, so a late
// response is discarded instead of clobbering fresher data.
type collection[T any] struct {
	items []T
	gen   uint64
}

func snapshot[T any](items []T) []T {
	return slices.Clone(items)
}

// fetchAll replaces the cached sequence wholesale with the server's current
// collection. It never merges. A response belonging to a superseded fetch is
// returned to its caller but not committed.
func fetchAll[T any](ctx context.Context, api service.MarketplaceAPI, st *storeState, col *collection[T], path string, query url.Values) ([]T, error) {
	st.begin()

	st.mu.Lock()
	col.gen++
	gen := col.gen
	st.mu.Unlock()

	var items []T
	err := api.Get(ctx, path, query, &items)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false

	if err != nil {
		st.lastErr = failureMessage(err)

		return nil, err
	}

	if gen == col.gen {
		col.items = items
	}

	return snapshot(items), nil
}

// createOne posts the new record and, on success, prepends the server's
// returned record (with its assigned id) to the cached sequence. On failure
// the cache is untouched and the error message is recorded.
func createOne[T any](ctx context.Context, api service.MarketplaceAPI, st *storeState, col *collection[T], path string, body any) (*T, error) {
	st.begin()

	var created T
	err := api.Post(ctx, path, body, &created)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false

	if err != nil {
		st.lastErr = failureMessage(err)

		return nil, err
	}

	col.items = append([]T{created}, col.items...)

	return &created, nil
}

// updateOne sends a partial record through call (PUT or PATCH) and, on
// success, replaces the matching cached record by id. Non-matching records
// are untouched.
func updateOne[T any](ctx context.Context, call func(context.Context, string, any, any) error, st *storeState, col *collection[T], path string, id int64, body any, idOf func(*T) int64) (*T, error) {
	st.begin()

	var updated T
	err := call(ctx, path, body, &updated)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false

	if err != nil {
		st.lastErr = failureMessage(err)

		return nil, err
	}

	for i := range col.items {
		if idOf(&col.items[i]) == id {
			col.items[i] = updated

			break
		}
	}

	return &updated, nil
}

// deleteOne removes the cached record by id only after the server confirms
// the deletion. A failed call leaves the record in place.
func deleteOne[T any](ctx context.Context, api service.MarketplaceAPI, st *storeState, col *collection[T], path string, id int64, idOf func(*T) int64) error {
	st.begin()

	err := api.Delete(ctx, path)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.loading = false

	if err != nil {
		st.lastErr = failureMessage(err)

		return err
	}

	col.items = slices.DeleteFunc(col.items, func(item T) bool {
		return idOf(&item) == id
	})

	return nil
}

// failureMessage collapses the error taxonomy (transport, non-2xx, malformed
// body, auth) into the human-readable string the UI renders inline.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMarketplaceUnauthorized):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, service.ErrMarketplaceUnavailable):
		return "Could not reach the marketplace. Check your connection and try again."
	case errors.Is(err, service.ErrMarketplaceMalformed):
		return "The marketplace returned an unexpected response."
	case errors.Is(err, service.ErrMarketplaceRejected):
		return "The marketplace rejected the request."
	default:
		return err.Error()
	}
}
