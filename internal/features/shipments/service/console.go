package service

import (
	"context"
	"errors"
	"fmt"

	"dispatch-console/internal/features/shipments/domain"
	"dispatch-console/internal/features/shipments/ports"
)

// ErrUnknownView is returned when a view name is not registered.
var ErrUnknownView = errors.New("unknown view")

// Console holds one FetchController per view. All controllers share the same
// provider and Projector so every view labels shipments identically, but no
// view ever sees another view's state.
type Console struct {
	controllers map[domain.View]*FetchController
}

// NewConsole creates a Console with an Idle controller for each known view.
func NewConsole(provider ports.OrderProvider, projector *domain.Projector) *Console {
	c := &Console{
		controllers: make(map[domain.View]*FetchController, len(domain.Views())),
	}
	for _, view := range domain.Views() {
		c.controllers[view] = NewFetchController(view, provider, projector)
	}
	return c
}

// Controller returns the FetchController owning view.
func (c *Console) Controller(view domain.View) (*FetchController, error) {
	ctrl, ok := c.controllers[view]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, string(view))
	}
	return ctrl, nil
}

// View returns the state of view. The first access mounts the view and loads it.
func (c *Console) View(ctx context.Context, view domain.View) (domain.FetchState, error) {
	ctrl, err := c.Controller(view)
	if err != nil {
		return domain.FetchState{}, err
	}

	state := ctrl.State()
	if state.Phase == domain.PhaseIdle {
		return ctrl.Load(ctx), nil
	}
	return state, nil
}

// Refresh refetches view.
func (c *Console) Refresh(ctx context.Context, view domain.View) (domain.FetchState, error) {
	ctrl, err := c.Controller(view)
	if err != nil {
		return domain.FetchState{}, err
	}
	if ctrl.State().Phase == domain.PhaseFailed {
		return ctrl.Retry(ctx), nil
	}
	return ctrl.Refresh(ctx), nil
}

// Summary derives metrics from view's current shipments.
func (c *Console) Summary(view domain.View) (domain.Summary, error) {
	ctrl, err := c.Controller(view)
	if err != nil {
		return domain.Summary{}, err
	}
	return ctrl.Summary(), nil
}

// Steps renders the progress stepper for a backend status.
func (c *Console) Steps(status domain.BackendStatus) ([]domain.Step, error) {
	return domain.StepsFor(status)
}
