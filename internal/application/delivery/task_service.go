package delivery

import (
	"context"
	"fmt"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TaskService fetches a task from the partner API using the credentials of
// the store the task's order belongs to.
type TaskService struct {
	resolver *Resolver
	settings delivery.SettingsRepository
	client   delivery.TaskClient
	validate *validator.Validate
	logger   *zap.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	resolver *Resolver,
	settings delivery.SettingsRepository,
	client delivery.TaskClient,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		resolver: resolver,
		settings: settings,
		client:   client,
		validate: validator.New(),
		logger:   logger,
	}
}

// GetTask resolves order, store and settings for the task and asks the
// partner for it.
func (s *TaskService) GetTask(ctx context.Context, taskID int64) (*delivery.Task, error) {
	order := s.resolver.ResolveOrder(ctx, taskID)
	if order == nil {
		return nil, delivery.ErrOrderNotFound
	}
	store := s.resolver.ResolveStore(ctx, order)
	if store == nil {
		return nil, delivery.ErrStoreNotFound
	}

	settings, err := s.settings.FindByStoreID(ctx, store.AndroAdminStoreID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(settings); err != nil {
		s.logger.Error("partner settings are incomplete",
			zap.Int("store_id", store.AndroAdminStoreID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: store %d", delivery.ErrInvalidSettings, store.AndroAdminStoreID)
	}

	task, err := s.client.GetTask(ctx, settings, taskID)
	if err != nil {
		s.logger.Error("partner task lookup failed",
			zap.Int64("task_id", taskID),
			zap.Int("store_id", store.AndroAdminStoreID),
			zap.Error(err),
		)
		return nil, err
	}
	return task, nil
}
