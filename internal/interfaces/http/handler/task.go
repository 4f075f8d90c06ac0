package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/shared"
	"github.com/andromeda/ordersync/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskLookup fetches a partner task by id
type TaskLookup interface {
	GetTask(ctx context.Context, taskID int64) (*delivery.Task, error)
}

// TaskHandler exposes partner task lookups
type TaskHandler struct {
	BaseHandler
	tasks TaskLookup
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks TaskLookup) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// GetTask returns the partner's view of a task
// GET get/:taskId
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("taskId"), 10, 64)
	if err != nil || taskID <= 0 {
		h.BadRequest(c, "taskId must be a positive integer")
		return
	}

	task, err := h.tasks.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.handleTaskError(c, taskID, err)
		return
	}
	h.Success(c, task)
}

func (h *TaskHandler) handleTaskError(c *gin.Context, taskID int64, err error) {
	switch {
	case errors.Is(err, delivery.ErrOrderNotFound),
		errors.Is(err, delivery.ErrStoreNotFound),
		errors.Is(err, delivery.ErrSettingsNotFound),
		errors.Is(err, delivery.ErrTaskNotFound),
		errors.Is(err, shared.ErrNotFound):
		h.NotFound(c, err.Error())
	case errors.Is(err, delivery.ErrPartnerRequest):
		h.BadGateway(c, "delivery partner request failed")
	default:
		logger.FromContext(c.Request.Context()).Error("task lookup failed",
			zap.Int64("task_id", taskID),
			zap.Error(err),
		)
		h.InternalError(c, "An unexpected error occurred")
	}
}
