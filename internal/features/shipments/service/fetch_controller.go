package service

import (
	"context"
	"sync"
	"time"

	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/features/shipments/domain"
	"dispatch-console/internal/features/shipments/ports"

	"go.uber.org/zap"
)

// failureMessage prefixes the error shown in the view's error panel.
const failureMessage = "Failed to load shipments"

// FetchController owns the loading/error/retry state of one shipment view.
//
// Every Load or Refresh issues a new sequence number; a result is applied only
// if no newer request was issued in the meantime, so a slow stale call can
// never overwrite a newer one. In-flight calls are not cancelled.
type FetchController struct {
	view      domain.View
	provider  ports.OrderProvider
	projector *domain.Projector
	now       func() time.Time

	mu     sync.Mutex
	state  domain.FetchState
	issued uint64
}

// NewFetchController creates an Idle controller for view.
func NewFetchController(view domain.View, provider ports.OrderProvider, projector *domain.Projector) *FetchController {
	return &FetchController{
		view:      view,
		provider:  provider,
		projector: projector,
		now:       time.Now,
		state: domain.FetchState{
			Phase:     domain.PhaseIdle,
			Shipments: []domain.Shipment{},
		},
	}
}

// Load fetches the view's shipments and returns the resulting state.
func (c *FetchController) Load(ctx context.Context) domain.FetchState {
	return c.fetch(ctx, "load")
}

// Refresh refetches the view's shipments, replacing the collection wholesale on success.
func (c *FetchController) Refresh(ctx context.Context) domain.FetchState {
	return c.fetch(ctx, "refresh")
}

// Retry is a Refresh issued from the error panel.
func (c *FetchController) Retry(ctx context.Context) domain.FetchState {
	return c.fetch(ctx, "retry")
}

// State returns a snapshot of the current view state.
func (c *FetchController) State() domain.FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Summary derives dashboard metrics from the current, possibly stale, shipments.
func (c *FetchController) Summary() domain.Summary {
	return domain.Summarize(c.State().Shipments)
}

func (c *FetchController) fetch(ctx context.Context, op string) domain.FetchState {
	log := logger.Get().With(zap.String("view", string(c.view)), zap.String("op", op))

	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.state.Phase = domain.PhaseLoading
	c.state.Message = ""
	c.mu.Unlock()

	log.Debug("Fetching shipments", zap.Uint64("seq", seq))

	projection, err := c.request(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.issued {
		log.Debug("Discarding superseded fetch result",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", c.issued),
		)
		return c.snapshot()
	}

	if err != nil {
		log.Error("Failed to fetch shipments", zap.Error(err))
		c.state.Phase = domain.PhaseFailed
		c.state.Message = failureMessage + ": " + err.Error()
		return c.snapshot()
	}

	if len(projection.Skipped) > 0 {
		log.Warn("Skipped malformed orders",
			zap.Int("skipped", len(projection.Skipped)),
			zap.Int("loaded", len(projection.Shipments)),
		)
		for _, s := range projection.Skipped {
			log.Error("Order rejected", zap.Int("index", s.Index), zap.String("order_id", s.OrderID), zap.Error(s.Err))
		}
	}

	c.state = domain.FetchState{
		Phase:     domain.PhaseLoaded,
		Shipments: projection.Shipments,
		Skipped:   projection.Skipped,
		LoadedAt:  c.now(),
	}
	log.Info("Shipments loaded", zap.Int("count", len(projection.Shipments)))

	return c.snapshot()
}

func (c *FetchController) request(ctx context.Context) (domain.Projection, error) {
	orders, err := c.provider.ListOrders(ctx)
	if err != nil {
		return domain.Projection{}, err
	}
	return c.projector.Project(orders)
}

// snapshot copies the state so callers never alias controller memory. Callers hold mu.
func (c *FetchController) snapshot() domain.FetchState {
	s := c.state
	s.Shipments = append([]domain.Shipment(nil), c.state.Shipments...)
	if s.Shipments == nil {
		s.Shipments = []domain.Shipment{}
	}
	if c.state.Skipped != nil {
		s.Skipped = append([]domain.SkippedRecord(nil), c.state.Skipped...)
	}
	return s
}
