package handler

import (
	"net/http"
	"time"

	"github.com/andromeda/ordersync/internal/infrastructure/logger"
	"github.com/andromeda/ordersync/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping() error
}

// HealthHandler reports service health
type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

// Check answers 200 when the database is reachable and 503 otherwise
func (h *HealthHandler) Check(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "healthy",
		Time:     h.now().Format(time.RFC3339),
		Database: "ok",
	}

	if err := h.db.Ping(); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "error"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
