package domain

import (
	"time"
)

// RawOrder is an order record as returned by the order service.
// Empty strings and nil pointers mean the field was absent.
type RawOrder struct {
	// OrderID is the unique identifier assigned by the order service.
	OrderID string
	// OrderNumber is the human facing order number, used as tracking ID.
	OrderNumber string
	// CustomerID identifies the customer who placed the order.
	CustomerID string
	// PickupCity is the city where the parcel is collected.
	PickupCity string
	// DeliveryCity is the city where the parcel is delivered.
	DeliveryCity string
	// Status is the backend lifecycle code.
	Status BackendStatus
	// ScheduledDelivery is the planned delivery time, if any.
	ScheduledDelivery *time.Time
	// Amount is the order value.
	Amount *float64
	// Currency is the ISO 4217 code of Amount. Empty means USD.
	Currency string
	// DecodeErr is set when the record could not be read from the response.
	DecodeErr error
}

// Shipment is the display-ready record consumed by the list views.
// Shipments are rebuilt wholesale on every successful fetch.
type Shipment struct {
	// ID is the order identifier.
	ID string `json:"id"`
	// TrackingID is the order number, or "PENDING" when none was issued yet.
	TrackingID string `json:"tracking_id"`
	// Customer is a short customer label, or "Unknown Customer".
	Customer string `json:"customer"`
	// Origin is the pickup city.
	Origin string `json:"origin"`
	// Destination is the delivery city.
	Destination string `json:"destination"`
	// Status is the original backend status; display labels are derived from it on demand.
	Status BackendStatus `json:"status"`
	// EstimatedDelivery is the formatted scheduled date, or "TBD".
	EstimatedDelivery string `json:"estimated_delivery"`
	// Amount is the currency formatted order value.
	Amount string `json:"amount"`
	// AmountValue is the raw order value used for aggregation.
	AmountValue float64 `json:"amount_value"`
}

// DisplayStatus returns the display label of the shipment's status.
func (s Shipment) DisplayStatus() (DisplayStatus, error) {
	return ToDisplay(s.Status)
}
