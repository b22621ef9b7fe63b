package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/repository"
	"dealerdesk/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSessionRepo is an in-memory SessionRepository. The malformed flag makes
// Load report an undecodable record, as the file store does for corrupt JSON.
type fakeSessionRepo struct {
	records   map[string]*entity.Session
	malformed bool
	saveErr   error
	deletes   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{records: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Save(_ context.Context, key string, session *entity.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *session
	r.records[key] = &copied

	return nil
}

func (r *fakeSessionRepo) Load(_ context.Context, key string) (*entity.Session, error) {
	if r.malformed {
		return nil, repository.ErrSessionMalformed
	}
	session, ok := r.records[key]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	copied := *session

	return &copied, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, key string) error {
	r.deletes++
	delete(r.records, key)

	return nil
}

// fakeIdentity is a configurable IdentityProvider.
type fakeIdentity struct {
	loginFn     func(email, password string) (*service.TokenGrant, error)
	refreshFn   func(refreshToken string) (*service.TokenGrant, error)
	fetchUserFn func(accessToken string) (json.RawMessage, error)

	refreshCalls int
}

func (f *fakeIdentity) Login(_ context.Context, email, password string) (*service.TokenGrant, error) {
	return f.loginFn(email, password)
}

func (f *fakeIdentity) Refresh(_ context.Context, refreshToken string) (*service.TokenGrant, error) {
	f.refreshCalls++

	return f.refreshFn(refreshToken)
}

func (f *fakeIdentity) FetchUser(_ context.Context, accessToken string) (json.RawMessage, error) {
	if f.fetchUserFn == nil {
		return json.RawMessage(`{"id":1}`), nil
	}

	return f.fetchUserFn(accessToken)
}

// fakeAPI is a configurable MarketplaceAPI. Each func field defaults to a
// no-op success so tests only wire what they exercise.
type fakeAPI struct {
	getFn    func(path string, query url.Values, out any) error
	postFn   func(path string, body, out any) error
	putFn    func(path string, body, out any) error
	patchFn  func(path string, body, out any) error
	deleteFn func(path string) error
}

func (f *fakeAPI) Get(_ context.Context, path string, query url.Values, out any) error {
	if f.getFn == nil {
		return nil
	}

	return f.getFn(path, query, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	if f.postFn == nil {
		return nil
	}

	return f.postFn(path, body, out)
}

func (f *fakeAPI) Put(_ context.Context, path string, body, out any) error {
	if f.putFn == nil {
		return nil
	}

	return f.putFn(path, body, out)
}

func (f *fakeAPI) Patch(_ context.Context, path string, body, out any) error {
	if f.patchFn == nil {
		return nil
	}

	return f.patchFn(path, body, out)
}

func (f *fakeAPI) Delete(_ context.Context, path string) error {
	if f.deleteFn == nil {
		return nil
	}

	return f.deleteFn(path)
}

// setOut copies a typed value into the decode target the store handed in.
func setOut[T any](out any, value T) {
	*out.(*T) = value
}
