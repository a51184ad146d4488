package ports

import (
	"context"

	"dispatch-console/internal/features/shipments/domain"
)

// ShipmentService defines the primary port for the shipment list views.
type ShipmentService interface {
	// View returns the state of a view, loading it on first access.
	View(ctx context.Context, view domain.View) (domain.FetchState, error)
	// Refresh refetches a view. Retrying a failed view is a refresh.
	Refresh(ctx context.Context, view domain.View) (domain.FetchState, error)
	// Summary derives dashboard metrics from a view's current shipments.
	Summary(view domain.View) (domain.Summary, error)
	// Steps renders the progress stepper for a backend status.
	Steps(status domain.BackendStatus) ([]domain.Step, error)
}
