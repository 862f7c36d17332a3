package handler

import (
	"quizforge/internal/ai"
	"quizforge/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness and which providers are configured.
type HealthHandler struct {
	providers ai.PriorityList
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(providers ai.PriorityList) *HealthHandler {
	return &HealthHandler{providers: providers}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := h.providers.Status()
	providers := make([]dto.ProviderHealth, len(status))
	for i, s := range status {
		providers[i] = dto.ProviderHealth{Name: string(s.Name), Configured: s.Configured}
	}
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Preferred: string(h.providers.Preferred()),
		Providers: providers,
	})
}
