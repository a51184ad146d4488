package service

import (
	"context"
	"fmt"

	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/features/session/domain"
	"dispatch-console/internal/features/session/ports"

	"go.uber.org/zap"
)

// SessionServiceImpl implements ports.SessionService. It is also the token
// source of the order service adapter.
type SessionServiceImpl struct {
	repo       ports.SessionRepository
	defaultTTL int
}

// NewSessionService creates a new SessionServiceImpl. defaultTTL, in seconds,
// applies when a token is set without an explicit TTL.
func NewSessionService(repo ports.SessionRepository, defaultTTL int) *SessionServiceImpl {
	return &SessionServiceImpl{
		repo:       repo,
		defaultTTL: defaultTTL,
	}
}

// Seed installs the configured token at startup. An empty token is a no-op.
func (s *SessionServiceImpl) Seed(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.save(ctx, token, domain.SourceConfig, s.defaultTTL)
}

// SetToken replaces the current credential. A ttlSeconds of 0 uses the default TTL.
func (s *SessionServiceImpl) SetToken(ctx context.Context, token string, ttlSeconds int) error {
	if ttlSeconds == 0 {
		ttlSeconds = s.defaultTTL
	}
	return s.save(ctx, token, domain.SourceAPI, ttlSeconds)
}

// GetSession retrieves the current session, or nil if none is set.
func (s *SessionServiceImpl) GetSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get session: %w", err)
	}

	return session, nil
}

// ClearToken removes the current credential.
func (s *SessionServiceImpl) ClearToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to clear session: %w", err)
	}

	logger.Get().Info("Session cleared")
	return nil
}

// Token returns the current bearer token, or "" when no session is set.
func (s *SessionServiceImpl) Token(ctx context.Context) (string, error) {
	session, err := s.GetSession(ctx)
	if err != nil || session == nil {
		return "", err
	}
	return session.Token, nil
}

func (s *SessionServiceImpl) save(ctx context.Context, token string, source domain.Source, ttlSeconds int) error {
	session, err := domain.NewSession(token, source, ttlSeconds)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return fmt.Errorf("service: failed to save session: %w", err)
	}

	logger.Get().Info("Session set",
		zap.String("source", string(source)),
		zap.Int("ttl_seconds", ttlSeconds),
	)
	return nil
}
