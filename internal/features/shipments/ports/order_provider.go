package ports

import (
	"context"

	"dispatch-console/internal/features/shipments/domain"
)

// OrderProvider defines the interface for listing orders from the order service.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	// ListOrders retrieves every order in the order service's collection, in service order.
	ListOrders(ctx context.Context) ([]domain.RawOrder, error)
}

// TokenSource supplies the bearer credential attached to outgoing requests.
// An empty token means the request is sent without credentials.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
