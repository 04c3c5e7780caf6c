package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
)

// HealthCheck — именованная проверка зависимости (БД, Redis)
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler отвечает на GET /health
type HealthHandler struct {
	checks  []HealthCheck
	timeout time.Duration
	log     *slog.Logger
}

// NewHealthHandler создает обработчик проверки состояния
func NewHealthHandler(log *slog.Logger, checks ...HealthCheck) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{checks: checks, timeout: 2 * time.Second, log: log}
}

// Health пингует зависимости: 200 "healthy" или 503 "unavailable"
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := "healthy"
	statusCode := http.StatusOK
	results := make(map[string]string, len(h.checks))

	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.log.Warn("health check failed", slog.String("check", check.Name), slog.Any("error", err))
			results[check.Name] = "unavailable"
			status = "unavailable"
			statusCode = http.StatusServiceUnavailable
			continue
		}
		results[check.Name] = "ok"
	}

	c.JSON(statusCode, dto.HealthResponse{Status: status, Checks: results})
}
