package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dispatch-console/internal/core/config"
	"dispatch-console/internal/core/httpclient"
	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/features/shipments/domain"
	"dispatch-console/internal/features/shipments/ports"

	"go.uber.org/zap"
)

const ordersPath = "/api/v1/orders"

// ErrUnexpectedStatus is returned when the order service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("order service returned unexpected status")

// OrderServiceAdapter implements the OrderProvider interface using the order service REST API.
type OrderServiceAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the order service connection details.
	config config.OrderServiceConfig
	// tokens supplies the bearer credential, if any.
	tokens ports.TokenSource
}

// NewOrderServiceAdapter creates a new instance of OrderServiceAdapter.
// tokens may be nil, in which case requests are sent without credentials.
func NewOrderServiceAdapter(cfg config.OrderServiceConfig, tokens ports.TokenSource) *OrderServiceAdapter {
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &OrderServiceAdapter{
		client: httpclient.NewClient(timeout),
		config: cfg,
		tokens: tokens,
	}
}

// ListOrders fetches the order collection and maps it to raw domain orders.
func (a *OrderServiceAdapter) ListOrders(ctx context.Context) ([]domain.RawOrder, error) {
	req, err := a.newRequest(ctx, a.ordersURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Records are decoded one by one so a bad record is skipped by the
	// projector instead of failing the whole collection.
	raw := make([]domain.RawOrder, 0, len(records))
	for i, record := range records {
		var o serviceOrder
		if err := json.Unmarshal(record, &o); err != nil {
			logger.Get().Warn("Failed to decode order", zap.Int("index", i), zap.Error(err))
			raw = append(raw, domain.RawOrder{
				OrderID:   recordID(record),
				DecodeErr: err,
			})
			continue
		}
		raw = append(raw, o.toDomain())
	}

	return raw, nil
}

// recordID extracts the order ID of an unreadable record, if it has a readable one.
func recordID(record json.RawMessage) string {
	var id struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(record, &id); err != nil {
		return ""
	}
	return id.OrderID
}

// HealthCheck verifies that the order service is reachable and accepts our credentials.
func (a *OrderServiceAdapter) HealthCheck(ctx context.Context) error {
	req, err := a.newRequest(ctx, a.ordersURL())
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}

func (a *OrderServiceAdapter) ordersURL() string {
	return strings.TrimRight(a.config.URL, "/") + ordersPath
}

// newRequest builds a GET request carrying the bearer token, when one is set.
// The client's transport adds the request ID.
func (a *OrderServiceAdapter) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	if a.tokens == nil {
		return req, nil
	}

	token, err := a.tokens.Token(ctx)
	if err != nil {
		logger.Get().Warn("Failed to read session token", zap.Error(err))
		return req, nil
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// internal structs for mapping

// serviceOrder represents the JSON structure of an order from the order service.
type serviceOrder struct {
	// OrderID is the unique order ID (UUID).
	OrderID string `json:"orderId"`
	// OrderNumber is the human facing order number.
	OrderNumber string `json:"orderNumber"`
	// CustomerID is the customer UUID.
	CustomerID string `json:"customerId"`
	// PickupCity is the pickup city.
	PickupCity string `json:"pickupCity"`
	// DeliveryCity is the delivery city.
	DeliveryCity string `json:"deliveryCity"`
	// Status is the backend status code.
	Status string `json:"status"`
	// ScheduledDelivery is the planned delivery time, null when unscheduled.
	ScheduledDelivery *serviceTime `json:"scheduledDelivery"`
	// Amount is the order value, null when missing.
	Amount *serviceAmount `json:"amount"`
	// Currency is the ISO currency code.
	Currency string `json:"currency"`
}

func (o serviceOrder) toDomain() domain.RawOrder {
	raw := domain.RawOrder{
		OrderID:      o.OrderID,
		OrderNumber:  o.OrderNumber,
		CustomerID:   o.CustomerID,
		PickupCity:   o.PickupCity,
		DeliveryCity: o.DeliveryCity,
		Status:       domain.BackendStatus(o.Status),
		Currency:     o.Currency,
	}

	if o.ScheduledDelivery != nil && !time.Time(*o.ScheduledDelivery).IsZero() {
		t := time.Time(*o.ScheduledDelivery)
		raw.ScheduledDelivery = &t
	}
	if o.Amount != nil {
		v := float64(*o.Amount)
		raw.Amount = &v
	}

	return raw
}

// serviceTime handles the order service's LocalDateTime format.
type serviceTime time.Time

var serviceTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// UnmarshalJSON parses LocalDateTime values, with or without zone.
func (t *serviceTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "null" || s == "" {
		*t = serviceTime(time.Time{})
		return nil
	}

	for _, layout := range serviceTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = serviceTime(parsed)
			return nil
		}
	}

	// An unreadable date is shown as unscheduled rather than failing the whole response.
	logger.Get().Warn("Failed to parse date", zap.String("date", s))
	*t = serviceTime(time.Time{})
	return nil
}

// serviceAmount accepts BigDecimal values serialized either as numbers or strings.
type serviceAmount float64

// UnmarshalJSON parses a JSON number or numeric string. NaN and infinities are rejected.
func (a *serviceAmount) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, "\"")
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", string(b), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid amount %q: not a finite number", string(b))
	}
	*a = serviceAmount(v)
	return nil
}
