// Package service declares contracts for external collaborators the console
// glues together. Implementations live under internal/infra.
package service

import (
	"context"
	"encoding/json"

	"dealerdesk/internal/errors"
)

// Identity backend failures every implementation maps to.
var (
	// ErrIdentityRejected means the backend answered with a non-success
	// status (bad credentials, expired refresh token, revoked session).
	ErrIdentityRejected = errors.New("identity backend rejected the request")

	// ErrIdentityUnavailable means the backend could not be reached at all.
	ErrIdentityUnavailable = errors.New("identity backend unavailable")
)

// TokenGrant is the identity backend's answer to a login or refresh:
// a fresh token pair, plus the user record on login.
type TokenGrant struct {
	Access  string          `json:"access"`
	Refresh string          `json:"refresh"`
	User    json.RawMessage `json:"user"`
}

// IdentityProvider fronts the identity backend. Every operation is a single
// attempt; there is no retry or backoff anywhere behind this interface.
type IdentityProvider interface {
	// Login exchanges credentials for a token pair and the user record.
	Login(ctx context.Context, email, password string) (*TokenGrant, error)

	// Refresh exchanges a refresh token for a new token pair. A response
	// missing both tokens counts as ErrIdentityRejected.
	Refresh(ctx context.Context, refreshToken string) (*TokenGrant, error)

	// FetchUser returns the profile of the token's owner.
	FetchUser(ctx context.Context, accessToken string) (json.RawMessage, error)
}
