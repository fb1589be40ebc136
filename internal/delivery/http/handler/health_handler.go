package handler

import (
	"time"

	"skillsync-ai/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	aiStatus string
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	AIStatus  string `json:"ai_status"`
}

func NewHealthHandler(aiStatus string) *HealthHandler {
	if aiStatus == "" {
		aiStatus = "AI API Key Required"
	}
	return &HealthHandler{aiStatus: aiStatus}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		AIStatus:  h.aiStatus,
	})
}
