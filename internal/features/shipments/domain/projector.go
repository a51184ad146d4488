package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// PendingTrackingID is shown when the order service has not issued an order number.
	PendingTrackingID = "PENDING"
	// UnknownCustomer is shown when the order carries no customer.
	UnknownCustomer = "Unknown Customer"
	// UnscheduledDelivery is shown when no delivery date is scheduled.
	UnscheduledDelivery = "TBD"

	customerPrefixLen  = 8
	deliveryDateLayout = "1/2/2006"
)

// ErrMalformedOrder is returned when a raw order misses a required field.
var ErrMalformedOrder = errors.New("malformed order")

var errNonFinite = errors.New("not a finite number")

// ProjectionError reports a raw order rejected by the projector.
// Cause is nil when the field is missing and set when it is present but unusable.
type ProjectionError struct {
	Index   int
	OrderID string
	Field   string
	Cause   error
}

func (e *ProjectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s at index %d (order %q): invalid %s: %v", ErrMalformedOrder, e.Index, e.OrderID, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s at index %d (order %q): missing %s", ErrMalformedOrder, e.Index, e.OrderID, e.Field)
}

func (e *ProjectionError) Unwrap() error {
	return ErrMalformedOrder
}

// SkippedRecord describes a raw order left out of a projection.
type SkippedRecord struct {
	// Index is the position of the record in the order service response.
	Index int `json:"index"`
	// OrderID is the record's identifier, possibly empty.
	OrderID string `json:"order_id"`
	// Reason is the human readable rejection cause.
	Reason string `json:"reason"`
	// Err is the underlying ProjectionError or MappingError.
	Err error `json:"-"`
}

// Projection is the outcome of projecting one order service response.
type Projection struct {
	Shipments []Shipment
	Skipped   []SkippedRecord
}

// Projector turns raw orders into shipments. It holds no mutable state and is
// shared by every view.
type Projector struct {
	strict  bool
	printer *message.Printer
}

// ProjectorOption configures a Projector.
type ProjectorOption func(*Projector)

// WithStrictStatus makes an unmapped backend status abort the whole projection
// instead of skipping the record.
func WithStrictStatus(strict bool) ProjectorOption {
	return func(p *Projector) {
		p.strict = strict
	}
}

// WithLanguage sets the language used for number grouping.
func WithLanguage(tag language.Tag) ProjectorOption {
	return func(p *Projector) {
		p.printer = message.NewPrinter(tag)
	}
}

// NewProjector creates a Projector. Defaults to non-strict, American English.
func NewProjector(opts ...ProjectorOption) *Projector {
	p := &Projector{
		printer: message.NewPrinter(language.AmericanEnglish),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strict reports whether unmapped statuses abort projections.
func (p *Projector) Strict() bool {
	return p.strict
}

// Project converts orders into shipments, preserving input order.
// Malformed records are skipped and reported. In strict mode an unmapped
// status returns a *MappingError and no projection.
func (p *Projector) Project(orders []RawOrder) (Projection, error) {
	result := Projection{
		Shipments: make([]Shipment, 0, len(orders)),
	}

	for i, order := range orders {
		if err := validate(i, order); err != nil {
			result.Skipped = append(result.Skipped, skipped(i, order, err))
			continue
		}

		if _, err := ToDisplay(order.Status); err != nil {
			if p.strict {
				return Projection{}, fmt.Errorf("order %q: %w", order.OrderID, err)
			}
			result.Skipped = append(result.Skipped, skipped(i, order, err))
			continue
		}

		result.Shipments = append(result.Shipments, p.project(order))
	}

	return result, nil
}

func (p *Projector) project(order RawOrder) Shipment {
	return Shipment{
		ID:                order.OrderID,
		TrackingID:        trackingID(order.OrderNumber),
		Customer:          customerLabel(order.CustomerID),
		Origin:            order.PickupCity,
		Destination:       order.DeliveryCity,
		Status:            order.Status,
		EstimatedDelivery: estimatedDelivery(order),
		Amount:            p.FormatAmount(*order.Amount, order.Currency),
		AmountValue:       *order.Amount,
	}
}

// FormatAmount renders amount in the given ISO currency. USD, empty or
// unknown codes use a dollar sign; other currencies are prefixed with their code.
// Negative amounts carry the sign before the symbol.
func (p *Projector) FormatAmount(amount float64, code string) string {
	number := p.printer.Sprintf("%.2f", math.Abs(amount))

	sign := ""
	if amount < 0 && math.Round(math.Abs(amount)*100) != 0 {
		sign = "-"
	}

	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil || unit == currency.USD {
		return sign + "$" + number
	}
	return sign + unit.String() + " " + number
}

func validate(index int, order RawOrder) error {
	if order.DecodeErr != nil {
		return &ProjectionError{Index: index, OrderID: order.OrderID, Field: "record", Cause: order.DecodeErr}
	}

	var field string
	switch {
	case strings.TrimSpace(order.OrderID) == "":
		field = "orderId"
	case order.Status == "":
		field = "status"
	case order.PickupCity == "":
		field = "pickupCity"
	case order.DeliveryCity == "":
		field = "deliveryCity"
	case order.Amount == nil:
		field = "amount"
	case math.IsNaN(*order.Amount) || math.IsInf(*order.Amount, 0):
		return &ProjectionError{Index: index, OrderID: order.OrderID, Field: "amount", Cause: errNonFinite}
	default:
		return nil
	}
	return &ProjectionError{Index: index, OrderID: order.OrderID, Field: field}
}

func skipped(index int, order RawOrder, err error) SkippedRecord {
	return SkippedRecord{
		Index:   index,
		OrderID: order.OrderID,
		Reason:  err.Error(),
		Err:     err,
	}
}

func trackingID(orderNumber string) string {
	if strings.TrimSpace(orderNumber) == "" {
		return PendingTrackingID
	}
	return orderNumber
}

func customerLabel(customerID string) string {
	if customerID == "" {
		return UnknownCustomer
	}
	prefix := customerID
	if runes := []rune(customerID); len(runes) > customerPrefixLen {
		prefix = string(runes[:customerPrefixLen])
	}
	return "Customer " + prefix + "..."
}

func estimatedDelivery(order RawOrder) string {
	if order.ScheduledDelivery == nil || order.ScheduledDelivery.IsZero() {
		return UnscheduledDelivery
	}
	return order.ScheduledDelivery.Format(deliveryDateLayout)
}
