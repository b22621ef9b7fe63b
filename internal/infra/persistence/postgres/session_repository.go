package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/repository"
	"dealerdesk/internal/errors"
	"dealerdesk/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSessionRepository is the database-backed SessionRepository.
func NewSessionRepository(db *gorm.DB, logger *slog.Logger) repository.SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) Save(ctx context.Context, key string, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session record")
	}

	record := &model.SessionRecord{
		Key:     key,
		Payload: payload,
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(record).Error
	if err != nil {
		return errors.Wrap(err, "save session record")
	}

	return nil
}

func (r *sessionRepository) Load(ctx context.Context, key string) (*entity.Session, error) {
	var record model.SessionRecord
	err := r.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "load session record")
	}

	var session entity.Session
	if err := json.Unmarshal(record.Payload, &session); err != nil {
		r.logger.WarnContext(ctx, "stored session record is unreadable",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return nil, repository.ErrSessionMalformed
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).
		Delete(&model.SessionRecord{}, "key = ?", key).Error
	if err != nil {
		return errors.Wrap(err, "delete session record")
	}

	return nil
}
