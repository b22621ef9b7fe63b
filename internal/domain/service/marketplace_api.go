package service

import (
	"context"
	"net/url"

	"dealerdesk/internal/errors"
)

// Marketplace API failure categories: transport failure, non-2xx
// response, malformed body, auth expiry.
var (
	// ErrMarketplaceUnavailable is a network/transport failure.
	ErrMarketplaceUnavailable = errors.New("marketplace API unavailable")

	// ErrMarketplaceRejected is a non-2xx response other than 401.
	ErrMarketplaceRejected = errors.New("marketplace API rejected the request")

	// ErrMarketplaceMalformed is a 2xx response whose body could not be decoded.
	ErrMarketplaceMalformed = errors.New("marketplace API response malformed")

	// ErrMarketplaceUnauthorized is a 401 that survived the refresh attempt.
	// It is the one non-local failure: the caller must clear auth state.
	ErrMarketplaceUnauthorized = errors.New("marketplace API unauthorized")
)

// MarketplaceAPI is the bearer-authenticated JSON surface the resource
// stores consume. Implementations attach the current access token to every
// request and run the refresh-on-401 exchange internally.
type MarketplaceAPI interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}
