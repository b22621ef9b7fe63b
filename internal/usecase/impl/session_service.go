package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dealerdesk/internal/domain/entity"
	domainerrors "dealerdesk/internal/domain/errors"
	"dealerdesk/internal/domain/repository"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/errors"
	"dealerdesk/internal/usecase"
)

type sessionService struct {
	sessions repository.SessionRepository
	identity service.IdentityProvider
	logger   *slog.Logger
}

// NewSessionService creates the session store. The second return value is the
// same instance behind the narrow token view the marketplace client consumes.
func NewSessionService(sessions repository.SessionRepository, identity service.IdentityProvider, logger *slog.Logger) (usecase.SessionUsecase, service.SessionTokens) {
	svc := &sessionService{
		sessions: sessions,
		identity: identity,
		logger:   logger,
	}

	return svc, svc
}

// SignIn exchanges credentials for a token grant and initializes the store.
func (s *sessionService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	grant, err := s.identity.Login(ctx, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrIdentityRejected) {
			return nil, domainerrors.ErrInvalidCredentials.WithDetails(err.Error())
		}

		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.Initialize(ctx, grant.User, usecase.TokenPair{Access: grant.Access, Refresh: grant.Refresh}); err != nil {
		return nil, err
	}

	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.SignInOutput{Session: session}, nil
}

// Initialize persists the session atomically. A session missing either the
// access token or the user record is rejected without touching storage.
func (s *sessionService) Initialize(ctx context.Context, user json.RawMessage, tokens usecase.TokenPair) error {
	session := &entity.Session{
		Access:        tokens.Access,
		Refresh:       tokens.Refresh,
		User:          user,
		LastRefreshed: time.Now().UTC(),
	}

	if !session.Valid() {
		return domainerrors.ErrPartialSession
	}

	if err := s.sessions.Save(ctx, entity.SessionKey, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an empty store succeeds.
func (s *sessionService) Clear(ctx context.Context) error {
	if err := s.sessions.Delete(ctx, entity.SessionKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// Current returns the stored session. A record that cannot be decoded is
// cleared and reported as absence, so a corrupt store never authenticates.
func (s *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	session, err := s.sessions.Load(ctx, entity.SessionKey)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return nil, domainerrors.ErrNoSession
		case errors.Is(err, repository.ErrSessionMalformed):
			s.logger.WarnContext(ctx, "clearing undecodable session record")
			if clearErr := s.sessions.Delete(ctx, entity.SessionKey); clearErr != nil {
				s.logger.ErrorContext(ctx, "failed to clear malformed session", slog.Any("error", clearErr))
			}

			return nil, domainerrors.ErrNoSession
		default:
			return nil, fmt.Errorf("load session: %w", err)
		}
	}

	if !session.Valid() {
		return nil, domainerrors.ErrNoSession
	}

	return session, nil
}

// Refresh exchanges the stored refresh token for a new pair, re-fetches the
// user and rewrites the session. One attempt only; any failure clears all
// auth state before the error is returned.
func (s *sessionService) Refresh(ctx context.Context) (*entity.Session, error) {
	stored, err := s.sessions.Load(ctx, entity.SessionKey)
	if err != nil || stored == nil || stored.Refresh == "" {
		s.clearAfterFailure(ctx)

		return nil, domainerrors.ErrMissingRefreshToken
	}

	grant, err := s.identity.Refresh(ctx, stored.Refresh)
	if err != nil {
		s.clearAfterFailure(ctx)

		return nil, domainerrors.ErrRefreshFailed.WithDetails(err.Error())
	}

	// A rotated refresh token replaces the old one; when the backend keeps
	// the old token valid it omits the field and the old token is carried over.
	refresh := grant.Refresh
	if refresh == "" {
		refresh = stored.Refresh
	}

	user, err := s.identity.FetchUser(ctx, grant.Access)
	if err != nil {
		s.clearAfterFailure(ctx)

		return nil, domainerrors.ErrRefreshFailed.WithDetails(err.Error())
	}

	session := &entity.Session{
		Access:        grant.Access,
		Refresh:       refresh,
		User:          user,
		LastRefreshed: time.Now().UTC(),
	}

	if err := s.sessions.Save(ctx, entity.SessionKey, session); err != nil {
		s.clearAfterFailure(ctx)

		return nil, domainerrors.ErrRefreshFailed.WithDetails(err.Error())
	}

	s.logger.InfoContext(ctx, "session refreshed", slog.Time("last_refreshed", session.LastRefreshed))

	return session, nil
}

// VerifyUser asks the identity backend who owns the current access token.
func (s *sessionService) VerifyUser(ctx context.Context) (json.RawMessage, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.identity.FetchUser(ctx, session.Access)
	if err != nil {
		if errors.Is(err, service.ErrIdentityRejected) {
			return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
		}

		return nil, fmt.Errorf("fetch user: %w", err)
	}

	return user, nil
}

// AccessToken implements service.SessionTokens.
func (s *sessionService) AccessToken(ctx context.Context) (string, error) {
	session, err := s.Current(ctx)
	if err != nil {
		return "", err
	}

	return session.Access, nil
}

// RefreshSession implements service.SessionTokens.
func (s *sessionService) RefreshSession(ctx context.Context) error {
	_, err := s.Refresh(ctx)

	return err
}

func (s *sessionService) clearAfterFailure(ctx context.Context) {
	if err := s.sessions.Delete(ctx, entity.SessionKey); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear session after refresh failure", slog.Any("error", err))
	}
}
