package handler

import (
	"errors"
	"net/http"
	"time"

	"dispatch-console/internal/core/logger"
	"dispatch-console/internal/features/session/domain"
	"dispatch-console/internal/features/session/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHandler handles HTTP requests for the order service credential.
type SessionHandler struct {
	service ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// Register mounts the session routes.
func (h *SessionHandler) Register(router fiber.Router) {
	router.Put("/session", h.SetSession)
	router.Get("/session", h.GetSession)
	router.Delete("/session", h.ClearSession)
}

// SetSessionRequest represents the request body for setting the credential.
type SetSessionRequest struct {
	Token      string `json:"token"`
	TTLSeconds int    `json:"ttl_seconds"`
}

// SessionResponse describes the current credential without revealing it.
type SessionResponse struct {
	Token     string        `json:"token"`
	Source    domain.Source `json:"source"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
}

// SetSession handles PUT /session.
// @Summary Set the order service credential
// @Description Replaces the bearer token sent to the order service.
// @Tags Session
// @Accept json
// @Produce json
// @Param session body SetSessionRequest true "Credential"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /session [put]
func (h *SessionHandler) SetSession(c *fiber.Ctx) error {
	var req SetSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.SetToken(c.UserContext(), req.Token, req.TTLSeconds); err != nil {
		if errors.Is(err, domain.ErrTokenRequired) || errors.Is(err, domain.ErrInvalidTTL) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to set session", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Session set successfully",
	})
}

// GetSession handles GET /session.
// @Summary Get the current credential
// @Description Describes the active session with its token masked.
// @Tags Session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.service.GetSession(c.UserContext())
	if err != nil {
		logger.Get().Error("Failed to get session", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if session == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active session",
		})
	}

	return c.Status(http.StatusOK).JSON(SessionResponse{
		Token:     session.MaskedToken(),
		Source:    session.Source,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt(),
	})
}

// ClearSession handles DELETE /session.
// @Summary Clear the credential
// @Description Removes the bearer token. Later order service calls go out unauthenticated.
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /session [delete]
func (h *SessionHandler) ClearSession(c *fiber.Ctx) error {
	if err := h.service.ClearToken(c.UserContext()); err != nil {
		logger.Get().Error("Failed to clear session", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Session cleared successfully",
	})
}
