package app

import (
	"context"
	"fmt"

	"dispatch-console/internal/core/cache"
	"dispatch-console/internal/core/config"
	"dispatch-console/internal/core/logger"
	shipmentadapter "dispatch-console/internal/features/shipments/adapters"
	"dispatch-console/internal/features/shipments/domain"
	shipmentservice "dispatch-console/internal/features/shipments/service"
	sessionadapter "dispatch-console/internal/features/session/adapters"
	sessionservice "dispatch-console/internal/features/session/service"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// App is the wired console shared by the HTTP API and the CLI.
type App struct {
	Console  *shipmentservice.Console
	Sessions *sessionservice.SessionServiceImpl
	Orders   *shipmentadapter.OrderServiceAdapter

	cache cache.Cache
}

// New wires the session store, the order service adapter and the console from cfg.
func New(ctx context.Context, cfg *config.AppConfig) (*App, error) {
	l := logger.Get()

	locale := language.AmericanEnglish
	if cfg.Locale != "" {
		parsed, err := language.Parse(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
		}
		locale = parsed
	}

	store, err := cache.New(cfg.Session.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("session store unreachable: %w", err)
	}
	l.Info("Session store ready",
		zap.Bool("redis", cfg.Session.RedisURL != ""),
		zap.Duration("ttl", cfg.Session.TTL()),
	)

	sessions := sessionservice.NewSessionService(
		sessionadapter.NewCacheSessionRepository(store),
		cfg.Session.TTLSeconds,
	)
	if err := sessions.Seed(ctx, cfg.Session.AuthToken); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed session: %w", err)
	}

	orders := shipmentadapter.NewOrderServiceAdapter(cfg.OrderService, sessions)

	projector := domain.NewProjector(
		domain.WithStrictStatus(cfg.StrictStatusMapping()),
		domain.WithLanguage(locale),
	)
	l.Info("Projector configured",
		zap.Bool("strict_status_mapping", projector.Strict()),
		zap.String("locale", locale.String()),
	)

	return &App{
		Console:  shipmentservice.NewConsole(orders, projector),
		Sessions: sessions,
		Orders:   orders,
		cache:    store,
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.cache.Close()
}
