package ports

import (
	"context"

	"dispatch-console/internal/features/session/domain"
)

// SessionService defines the primary port for the order service credential.
type SessionService interface {
	SetToken(ctx context.Context, token string, ttlSeconds int) error
	GetSession(ctx context.Context) (*domain.Session, error)
	ClearToken(ctx context.Context) error
}

// SessionRepository defines the secondary port for session storage.
type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context) (*domain.Session, error)
	Delete(ctx context.Context) error
}
