package middleware

import (
	"github.com/andromeda/ordersync/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Global returns the middleware every route runs through. Body limits are not
// part of it: partner callbacks must be acknowledged whatever their size, so
// BodyLimit is attached per route group.
func Global(log *zap.Logger, meter metric.Meter) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		Secure(),
		HTTPMetrics(meter),
	}
}
