package handler

import (
	"context"
	"io"
	"net/http"
	"strconv"

	appdelivery "github.com/andromeda/ordersync/internal/application/delivery"
	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultMaxWebhookBody int64 = 1 << 20

// WebhookProcessor runs the event pipeline for one partner callback
type WebhookProcessor interface {
	Handle(ctx context.Context, kind delivery.EventKind, taskID int64, body []byte) *appdelivery.Outcome
}

// DeliveryWebhookHandler receives the partner's task lifecycle callbacks.
// Every callback is acknowledged with 200 and an empty body, whatever
// happened while processing it.
type DeliveryWebhookHandler struct {
	BaseHandler
	processor WebhookProcessor
	maxBody   int64
}

// NewDeliveryWebhookHandler creates the handler. maxBody caps how much of
// the callback body is read; non-positive means 1MB.
func NewDeliveryWebhookHandler(processor WebhookProcessor, maxBody int64) *DeliveryWebhookHandler {
	if maxBody <= 0 {
		maxBody = defaultMaxWebhookBody
	}
	return &DeliveryWebhookHandler{processor: processor, maxBody: maxBody}
}

// Notify returns the handler for one event kind
func (h *DeliveryWebhookHandler) Notify(kind delivery.EventKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := logger.FromContext(ctx).With(zap.String("event", kind.String()))

		raw := c.Param("taskId")
		taskID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn("delivery webhook with non-numeric task id acknowledged", zap.String("task_id", raw))
			c.Status(http.StatusOK)
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxBody))
		if err != nil {
			log.Error("failed to read delivery webhook body", zap.Int64("task_id", taskID), zap.Error(err))
			c.Status(http.StatusOK)
			return
		}

		ctx, _ = logger.WithTaskID(ctx, log, taskID)
		h.processor.Handle(ctx, kind, taskID, body)
		c.Status(http.StatusOK)
	}
}
