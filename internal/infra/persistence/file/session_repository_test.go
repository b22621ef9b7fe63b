package file

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dealerdesk/config"
	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (repository.SessionRepository, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{Session: &config.SessionConfig{StoragePath: dir}}
	repo := NewSessionRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return repo, dir
}

func TestSessionRepository_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	session := &entity.Session{
		Access:        "acc-1",
		Refresh:       "ref-1",
		User:          json.RawMessage(`{"id":7}`),
		LastRefreshed: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, entity.SessionKey, session))

	loaded, err := repo.Load(ctx, entity.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, session.Access, loaded.Access)
	assert.Equal(t, session.Refresh, loaded.Refresh)
	assert.JSONEq(t, string(session.User), string(loaded.User))
	assert.True(t, session.LastRefreshed.Equal(loaded.LastRefreshed))
}

func TestSessionRepository_SaveReplacesPreviousRecord(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	first := &entity.Session{Access: "acc-1", User: json.RawMessage(`{"id":1}`)}
	second := &entity.Session{Access: "acc-2", User: json.RawMessage(`{"id":1}`)}
	require.NoError(t, repo.Save(ctx, entity.SessionKey, first))
	require.NoError(t, repo.Save(ctx, entity.SessionKey, second))

	loaded, err := repo.Load(ctx, entity.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "acc-2", loaded.Access)
}

func TestSessionRepository_LoadAbsent(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Load(context.Background(), entity.SessionKey)
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_LoadCorruptRecord(t *testing.T) {
	repo, dir := newTestRepository(t)

	target := filepath.Join(dir, entity.SessionKey+".json")
	require.NoError(t, os.WriteFile(target, []byte("{not json"), 0o600))

	_, err := repo.Load(context.Background(), entity.SessionKey)
	require.ErrorIs(t, err, repository.ErrSessionMalformed)
}

func TestSessionRepository_DeleteIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, entity.SessionKey))

	session := &entity.Session{Access: "acc", User: json.RawMessage(`{"id":1}`)}
	require.NoError(t, repo.Save(ctx, entity.SessionKey, session))
	require.NoError(t, repo.Delete(ctx, entity.SessionKey))
	require.NoError(t, repo.Delete(ctx, entity.SessionKey))

	_, err := repo.Load(ctx, entity.SessionKey)
	require.ErrorIs(t, err, repository.ErrSessionNotFound)
}
