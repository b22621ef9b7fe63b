// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"encoding/json"

	"dealerdesk/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the credentials forwarded to the identity backend.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is an access/refresh pair handed to Initialize.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// --- Output DTOs ---

// SignInOutput returns the initialized session after a successful sign-in.
type SignInOutput struct {
	Session *entity.Session
}

// SessionUsecase is the token store plus the refresh orchestration built on
// top of it. It owns the one Session record; nothing else writes it.
type SessionUsecase interface {
	// SignIn posts credentials to the identity backend and, on success,
	// initializes the store with the returned user and token pair.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// Initialize persists the session. Access token and user must both be
	// present; partial sessions are rejected.
	Initialize(ctx context.Context, user json.RawMessage, tokens TokenPair) error

	// Clear removes the persisted session. Idempotent.
	Clear(ctx context.Context) error

	// Current returns the stored session or ErrNoSession. A malformed
	// record is treated as absence and cleared (fail closed).
	Current(ctx context.Context) (*entity.Session, error)

	// Refresh runs the single-attempt token refresh and rewrites the
	// stored session. Any failure clears all auth state before returning.
	Refresh(ctx context.Context) (*entity.Session, error)

	// VerifyUser fetches the user for the current access token from the
	// identity backend. Used by /api/me and the remote-verifying guard.
	VerifyUser(ctx context.Context) (json.RawMessage, error)
}
