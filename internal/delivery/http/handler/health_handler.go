package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HealthChecker - проверка живости одной зависимости
type HealthChecker func(ctx context.Context) error

// HealthHandler - обработчик health check с проверкой зависимостей
type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Health godoc
// @Summary Проверка работоспособности сервиса
// @Description Проверяет доступность PostgreSQL и Redis. При сбое любой зависимости возвращает 503.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	status := fiber.StatusOK
	deps := fiber.Map{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("Health check failed",
				zap.String("dependency", name),
				zap.Error(err))
			deps[name] = "unhealthy"
			status = fiber.StatusServiceUnavailable
			continue
		}
		deps[name] = "healthy"
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":       overall,
		"dependencies": deps,
		"time":         time.Now(),
	})
}
