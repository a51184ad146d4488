package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dispatch-console/internal/core/cache"
	"dispatch-console/internal/features/session/domain"
)

const sessionCacheKey = "session"

// CacheSessionRepository implements ports.SessionRepository on top of a cache.Cache,
// which is Redis or process memory depending on configuration.
type CacheSessionRepository struct {
	cache cache.Cache
}

// NewCacheSessionRepository creates a new CacheSessionRepository.
func NewCacheSessionRepository(c cache.Cache) *CacheSessionRepository {
	return &CacheSessionRepository{
		cache: c,
	}
}

// Save stores the session, expiring it after its TTL.
func (r *CacheSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.cache.Set(ctx, sessionCacheKey, data, session.TTL()); err != nil {
		return fmt.Errorf("failed to save session to cache: %w", err)
	}

	return nil
}

// Get retrieves the session. It returns nil, nil when none is stored.
func (r *CacheSessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	data, err := r.cache.Get(ctx, sessionCacheKey)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// Delete removes the session.
func (r *CacheSessionRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, sessionCacheKey); err != nil {
		return fmt.Errorf("failed to delete session from cache: %w", err)
	}
	return nil
}
