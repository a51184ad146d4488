package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispatch-console/internal/features/shipments/domain"
	"dispatch-console/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockShipmentService is a mock implementation of ports.ShipmentService
type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) View(ctx context.Context, view domain.View) (domain.FetchState, error) {
	args := m.Called(ctx, view)
	return args.Get(0).(domain.FetchState), args.Error(1)
}

func (m *MockShipmentService) Refresh(ctx context.Context, view domain.View) (domain.FetchState, error) {
	args := m.Called(ctx, view)
	return args.Get(0).(domain.FetchState), args.Error(1)
}

func (m *MockShipmentService) Summary(view domain.View) (domain.Summary, error) {
	args := m.Called(view)
	return args.Get(0).(domain.Summary), args.Error(1)
}

func (m *MockShipmentService) Steps(status domain.BackendStatus) ([]domain.Step, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Step), args.Error(1)
}

func setupApp(svc *MockShipmentService) *fiber.App {
	app := fiber.New()
	NewShipmentHandler(svc).Register(app)
	return app
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

var loadedState = domain.FetchState{
	Phase: domain.PhaseLoaded,
	Shipments: []domain.Shipment{
		{ID: "1", TrackingID: "TRK-1", Status: domain.StatusInTransit, Amount: "$50.00", AmountValue: 50},
		{ID: "2", TrackingID: "PENDING", Status: domain.StatusFailed, Amount: "$10.00", AmountValue: 10},
	},
	LoadedAt: time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC),
}

func TestShipmentHandler_GetView(t *testing.T) {
	t.Run("Loaded", func(t *testing.T) {
		svc := new(MockShipmentService)
		app := setupApp(svc)
		svc.On("View", mock.Anything, domain.ViewDashboard).Return(loadedState, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body ViewResponse
		decode(t, resp, &body)
		assert.Equal(t, domain.ViewDashboard, body.View)
		assert.Equal(t, domain.PhaseLoaded, body.Phase)
		assert.Equal(t, domain.PresentationPopulated, body.Presentation)
		assert.False(t, body.Stale)
		require.Len(t, body.Shipments, 2)
		assert.Equal(t, domain.DisplayInTransit, body.Shipments[0].DisplayStatus)
		assert.Equal(t, domain.DisplayException, body.Shipments[1].DisplayStatus)
		assert.Equal(t, 2, body.Summary.Total)
		assert.Equal(t, 1, body.Summary.Delayed)
		assert.Equal(t, "2024-03-05T10:00:00Z", body.LoadedAt)
		svc.AssertExpectations(t)
	})

	t.Run("FailedIsStillOK", func(t *testing.T) {
		svc := new(MockShipmentService)
		app := setupApp(svc)
		failed := loadedState
		failed.Phase = domain.PhaseFailed
		failed.Message = "Failed to load shipments: timeout"
		svc.On("View", mock.Anything, domain.ViewOrders).Return(failed, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/orders", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body ViewResponse
		decode(t, resp, &body)
		assert.Equal(t, domain.PresentationError, body.Presentation)
		assert.True(t, body.Stale)
		assert.Equal(t, failed.Message, body.Message)
		assert.Len(t, body.Shipments, 2)
	})

	t.Run("UnknownView", func(t *testing.T) {
		svc := new(MockShipmentService)
		app := setupApp(svc)
		svc.On("View", mock.Anything, domain.View("reports")).
			Return(domain.FetchState{}, fmt.Errorf("%w: %q", service.ErrUnknownView, "reports")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/reports", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body ErrorResponse
		decode(t, resp, &body)
		assert.Contains(t, body.Message, "unknown view")
	})

	t.Run("UnexpectedError", func(t *testing.T) {
		svc := new(MockShipmentService)
		app := setupApp(svc)
		svc.On("View", mock.Anything, domain.ViewOrders).Return(domain.FetchState{}, errors.New("boom")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/orders", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestShipmentHandler_RefreshView(t *testing.T) {
	svc := new(MockShipmentService)
	app := setupApp(svc)
	svc.On("Refresh", mock.Anything, domain.ViewOrders).Return(domain.FetchState{
		Phase:     domain.PhaseLoaded,
		Shipments: []domain.Shipment{},
	}, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/shipments/orders/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ViewResponse
	decode(t, resp, &body)
	assert.Equal(t, domain.PresentationEmpty, body.Presentation)
	assert.NotNil(t, body.Shipments)
	assert.Empty(t, body.LoadedAt)
	svc.AssertExpectations(t)
}

func TestShipmentHandler_GetSummary(t *testing.T) {
	svc := new(MockShipmentService)
	app := setupApp(svc)
	summary := domain.Summarize(loadedState.Shipments)
	svc.On("Summary", domain.ViewDashboard).Return(summary, nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/shipments/dashboard/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body domain.Summary
	decode(t, resp, &body)
	assert.Equal(t, 2, body.Total)
	assert.InDelta(t, 60.0, body.Revenue, 0.001)
	assert.Equal(t, 1, body.Counts[domain.DisplayInTransit])
	svc.AssertExpectations(t)
}

func TestShipmentHandler_GetSteps(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockShipmentService)
		app := setupApp(svc)
		svc.On("Steps", domain.StatusDelivered).Return(domain.RenderSteps(domain.DisplayDelivered), nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/steps/DELIVERED", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var steps []domain.Step
		decode(t, resp, &steps)
		require.Len(t, steps, 5)
		assert.True(t, steps[4].Current)
	})

	t.Run("UnmappedStatus", func(t *testing.T) {
		svc := new(MockShipmentService)
		app := setupApp(svc)
		svc.On("Steps", domain.BackendStatus("LOST")).Return(nil, &domain.MappingError{Status: "LOST"}).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/steps/LOST", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
