package service

import "context"

// SessionTokens is the narrow view of the session store the marketplace
// client needs: the current access token and the refresh exchange.
type SessionTokens interface {
	// AccessToken returns the current access token, or an auth error when
	// no valid session exists.
	AccessToken(ctx context.Context) (string, error)

	// RefreshSession runs the single-attempt refresh. On failure all auth
	// state has already been cleared by the time the error returns.
	RefreshSession(ctx context.Context) error
}
