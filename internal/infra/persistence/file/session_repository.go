// Package file persists the session record as a JSON file under a fixed
// key, the durable-storage equivalent of the console's localStorage entry.
package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"dealerdesk/config"
	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/repository"
	"dealerdesk/internal/errors"
)

type sessionRepository struct {
	dir    string
	logger *slog.Logger
}

// NewSessionRepository stores session records under cfg.Session.StoragePath.
func NewSessionRepository(cfg *config.Config, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{
		dir:    cfg.Session.StoragePath,
		logger: logger,
	}
}

func (r *sessionRepository) path(key string) string {
	return filepath.Join(r.dir, key+".json")
}

// Save writes the record atomically: temp file then rename, so a crash never
// leaves a half-written session behind.
func (r *sessionRepository) Save(ctx context.Context, key string, session *entity.Session) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session record")
	}

	tmp, err := os.CreateTemp(r.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp session file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "write session record")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "close temp session file")
	}

	if err := os.Rename(tmpName, r.path(key)); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "replace session record")
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context, key string) (*entity.Session, error) {
	payload, err := os.ReadFile(r.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "read session record")
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		r.logger.WarnContext(ctx, "stored session record is unreadable",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, repository.ErrSessionMalformed
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	if err := os.Remove(r.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "delete session record")
	}

	return nil
}
