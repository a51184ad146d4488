package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"dispatch-console/internal/app"
	"dispatch-console/internal/core/config"
	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/core/server"
	sessionhandler "dispatch-console/internal/features/session/handler"
	shipmenthandler "dispatch-console/internal/features/shipments/handler"

	"go.uber.org/zap"
)

// @title Dispatch Console API
// @version 1.0
// @description This API serves the dispatcher console shipment views backed by the order service.
// @contact.name API Support
// @contact.email support@dispatch-console.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wired, err := app.New(ctx, cfg)
	if err != nil {
		l.Fatal("Failed to wire console", zap.Error(err))
	}
	defer wired.Close()

	// The console renders fetch failures itself, so an unreachable order service is not fatal.
	if err := wired.Orders.HealthCheck(ctx); err != nil {
		l.Warn("Order service health check failed", zap.Error(err))
	} else {
		l.Info("Order service connection verified")
	}

	srv := server.New(cfg)
	srv.Mount(
		shipmenthandler.NewShipmentHandler(wired.Console),
		sessionhandler.NewSessionHandler(wired.Sessions),
	)

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
