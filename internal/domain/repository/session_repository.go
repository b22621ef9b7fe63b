// Package repository defines persistence contracts the infrastructure layer
// implements. Usecases depend on these interfaces, never on a concrete store.
package repository

import (
	"context"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/errors"
)

// Sentinel errors shared by every SessionRepository implementation.
var (
	// ErrSessionNotFound means no record exists under the key.
	ErrSessionNotFound = errors.New("session record not found")

	// ErrSessionMalformed means a record exists but could not be decoded.
	// Callers treat it as absence (fail closed).
	ErrSessionMalformed = errors.New("session record malformed")
)

// SessionRepository persists the single session record under a fixed key.
type SessionRepository interface {
	// Save writes the record, replacing any previous one.
	Save(ctx context.Context, key string, session *entity.Session) error

	// Load returns the record, ErrSessionNotFound when absent, or
	// ErrSessionMalformed when present but undecodable.
	Load(ctx context.Context, key string) (*entity.Session, error)

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, key string) error
}
