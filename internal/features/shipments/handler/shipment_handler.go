package handler

import (
	"errors"
	"net/http"
	"time"

	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/features/shipments/domain"
	"dispatch-console/internal/features/shipments/ports"
	"dispatch-console/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// ShipmentResponse is a shipment row with its display label resolved.
type ShipmentResponse struct {
	domain.Shipment
	DisplayStatus domain.DisplayStatus `json:"display_status,omitempty"`
}

// ViewResponse is the full render state of one view.
type ViewResponse struct {
	View         domain.View            `json:"view"`
	Phase        domain.Phase           `json:"phase"`
	Presentation domain.Presentation    `json:"presentation"`
	Stale        bool                   `json:"stale"`
	Message      string                 `json:"message,omitempty"`
	Shipments    []ShipmentResponse     `json:"shipments"`
	Skipped      []domain.SkippedRecord `json:"skipped,omitempty"`
	Summary      domain.Summary         `json:"summary"`
	LoadedAt     string                 `json:"loaded_at,omitempty"`
}

// ShipmentHandler handles HTTP requests for shipment views.
type ShipmentHandler struct {
	service ports.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
		service: service,
	}
}

// Register mounts the shipment routes.
func (h *ShipmentHandler) Register(router fiber.Router) {
	router.Get("/shipments/:view", h.GetView)
	router.Post("/shipments/:view/refresh", h.RefreshView)
	router.Get("/shipments/:view/summary", h.GetSummary)
	router.Get("/steps/:status", h.GetSteps)
}

// GetView handles GET /shipments/:view.
// @Summary Get a shipment view
// @Description Returns the view state, loading it on first access.
// @Tags Shipments
// @Produce json
// @Param view path string true "View name (dashboard or orders)"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{view} [get]
func (h *ShipmentHandler) GetView(c *fiber.Ctx) error {
	view := domain.View(c.Params("view"))

	state, err := h.service.View(c.UserContext(), view)
	if err != nil {
		return h.fail(c, "Failed to get view", err)
	}

	return c.Status(http.StatusOK).JSON(newViewResponse(view, state))
}

// RefreshView handles POST /shipments/:view/refresh.
// @Summary Refresh a shipment view
// @Description Refetches the view. A failed view is retried. Fetch failures are reported in the returned state.
// @Tags Shipments
// @Produce json
// @Param view path string true "View name (dashboard or orders)"
// @Success 200 {object} ViewResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{view}/refresh [post]
func (h *ShipmentHandler) RefreshView(c *fiber.Ctx) error {
	view := domain.View(c.Params("view"))

	state, err := h.service.Refresh(c.UserContext(), view)
	if err != nil {
		return h.fail(c, "Failed to refresh view", err)
	}

	return c.Status(http.StatusOK).JSON(newViewResponse(view, state))
}

// GetSummary handles GET /shipments/:view/summary.
// @Summary Get dashboard metrics
// @Description Summarizes the view's current shipments without fetching.
// @Tags Shipments
// @Produce json
// @Param view path string true "View name (dashboard or orders)"
// @Success 200 {object} domain.Summary
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{view}/summary [get]
func (h *ShipmentHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(domain.View(c.Params("view")))
	if err != nil {
		return h.fail(c, "Failed to get summary", err)
	}

	return c.Status(http.StatusOK).JSON(summary)
}

// GetSteps handles GET /steps/:status.
// @Summary Render the progress stepper
// @Description Returns the fulfillment steps for a backend status.
// @Tags Shipments
// @Produce json
// @Param status path string true "Backend status, e.g. IN_TRANSIT"
// @Success 200 {array} domain.Step
// @Failure 400 {object} ErrorResponse
// @Router /steps/{status} [get]
func (h *ShipmentHandler) GetSteps(c *fiber.Ctx) error {
	steps, err := h.service.Steps(domain.BackendStatus(c.Params("status")))
	if err != nil {
		return h.fail(c, "Failed to render steps", err)
	}

	return c.Status(http.StatusOK).JSON(steps)
}

func (h *ShipmentHandler) fail(c *fiber.Ctx, msg string, err error) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnknownView):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUnmappedStatus):
		status = http.StatusBadRequest
	default:
		logger.Get().Error(msg, zap.Error(err), zap.String("ray_id", rayID))
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID,
	})
}

func newViewResponse(view domain.View, state domain.FetchState) ViewResponse {
	rows := make([]ShipmentResponse, len(state.Shipments))
	for i, s := range state.Shipments {
		rows[i] = ShipmentResponse{Shipment: s}
		if display, err := s.DisplayStatus(); err == nil {
			rows[i].DisplayStatus = display
		}
	}

	resp := ViewResponse{
		View:         view,
		Phase:        state.Phase,
		Presentation: state.Presentation(),
		Stale:        state.Stale(),
		Message:      state.Message,
		Shipments:    rows,
		Skipped:      state.Skipped,
		Summary:      domain.Summarize(state.Shipments),
	}
	if !state.LoadedAt.IsZero() {
		resp.LoadedAt = state.LoadedAt.Format(time.RFC3339)
	}
	return resp
}
