package domain

import (
	"errors"
	"fmt"
)

// BackendStatus is the raw lifecycle code assigned by the order service.
type BackendStatus string

const (
	// StatusPending indicates the order has been placed and awaits a courier.
	StatusPending BackendStatus = "PENDING"
	// StatusAssigned indicates a courier has been assigned and picked up the parcel.
	StatusAssigned BackendStatus = "ASSIGNED"
	// StatusInTransit indicates the parcel is moving between origin and destination.
	StatusInTransit BackendStatus = "IN_TRANSIT"
	// StatusDelivered indicates the parcel reached the recipient.
	StatusDelivered BackendStatus = "DELIVERED"
	// StatusFailed indicates the delivery attempt failed.
	StatusFailed BackendStatus = "FAILED"
	// StatusCancelled indicates the order was cancelled.
	StatusCancelled BackendStatus = "CANCELLED"
)

// DisplayStatus is the user-facing lifecycle label derived from a BackendStatus.
type DisplayStatus string

const (
	DisplayOrdered        DisplayStatus = "Ordered"
	DisplayPickedUp       DisplayStatus = "Picked Up"
	DisplayInTransit      DisplayStatus = "In Transit"
	DisplayOutForDelivery DisplayStatus = "Out for Delivery"
	DisplayDelivered      DisplayStatus = "Delivered"
	DisplayException      DisplayStatus = "Exception"
)

// ErrUnmappedStatus is returned when a backend status is outside the known set.
var ErrUnmappedStatus = errors.New("unmapped backend status")

// MappingError reports a BackendStatus that has no display counterpart.
type MappingError struct {
	Status BackendStatus
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnmappedStatus, string(e.Status))
}

func (e *MappingError) Unwrap() error {
	return ErrUnmappedStatus
}

var displayByBackend = map[BackendStatus]DisplayStatus{
	StatusPending:   DisplayOrdered,
	StatusAssigned:  DisplayPickedUp,
	StatusInTransit: DisplayInTransit,
	StatusDelivered: DisplayDelivered,
	StatusCancelled: DisplayException,
	StatusFailed:    DisplayException,
}

// steps is the fixed progress sequence. OutForDelivery has no backend
// counterpart yet and is kept so the stepper stays stable once one appears.
var steps = []DisplayStatus{
	DisplayOrdered,
	DisplayPickedUp,
	DisplayInTransit,
	DisplayOutForDelivery,
	DisplayDelivered,
}

// BackendStatuses returns the closed set of backend statuses.
func BackendStatuses() []BackendStatus {
	return []BackendStatus{
		StatusPending,
		StatusAssigned,
		StatusInTransit,
		StatusDelivered,
		StatusFailed,
		StatusCancelled,
	}
}

// DisplayStatuses returns every display status, stepper order first and Exception last.
func DisplayStatuses() []DisplayStatus {
	return append(Steps(), DisplayException)
}

// Steps returns the ordered stepper sequence.
func Steps() []DisplayStatus {
	out := make([]DisplayStatus, len(steps))
	copy(out, steps)
	return out
}

// Valid reports whether the status belongs to the closed backend set.
func (s BackendStatus) Valid() bool {
	_, ok := displayByBackend[s]
	return ok
}

// ToDisplay maps a backend status to its display status.
// Unknown values yield a *MappingError; there is no fallback label.
func ToDisplay(status BackendStatus) (DisplayStatus, error) {
	display, ok := displayByBackend[status]
	if !ok {
		return "", &MappingError{Status: status}
	}
	return display, nil
}

// StepIndex returns the position of status in the stepper sequence.
// Exception is shown as stalled in transit. Unknown values return -1.
func StepIndex(status DisplayStatus) int {
	if status == DisplayException {
		status = DisplayInTransit
	}
	for i, step := range steps {
		if step == status {
			return i
		}
	}
	return -1
}
