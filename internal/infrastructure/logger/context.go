package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// TaskIDKey is the context key for the partner task id being handled
	TaskIDKey contextKey = "task_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID adds request ID to context and returns enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enriched := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enriched), enriched
}

// WithTaskID adds the task id to context and returns enriched logger
func WithTaskID(ctx context.Context, logger *zap.Logger, taskID int64) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, TaskIDKey, taskID)
	enriched := logger.With(zap.Int64("task_id", taskID))
	return WithContext(ctx, enriched), enriched
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetTaskID retrieves the task id from context, 0 when absent
func GetTaskID(ctx context.Context) int64 {
	if taskID, ok := ctx.Value(TaskIDKey).(int64); ok {
		return taskID
	}
	return 0
}
