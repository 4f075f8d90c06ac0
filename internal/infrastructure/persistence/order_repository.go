package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/andromeda/ordersync/internal/domain/shared"
	"github.com/andromeda/ordersync/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order with customer, contacts, address, lines, payments
// and discounts
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.OrderHeader, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Customer.Contacts", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Address").
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Discounts", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound.WithMessage(fmt.Sprintf("order %s not found", id))
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByDeliveryTaskID returns the orders carrying the task id, newest first.
// Children are not loaded.
func (r *GormOrderRepository) FindByDeliveryTaskID(ctx context.Context, taskID int64) ([]ordering.OrderHeader, error) {
	var rows []models.OrderModel
	err := r.db.WithContext(ctx).
		Where("delivery_task_id = ?", taskID).
		Order("recorded_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]ordering.OrderHeader, 0, len(rows))
	for i := range rows {
		orders = append(orders, *rows[i].ToDomain())
	}
	return orders, nil
}

// UpdateStatus sets the status of an order
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ordering.OrderStatus) error {
	if !status.IsValid() {
		return shared.ErrInvalidInput.WithMessage(status.String())
	}

	result := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", id).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound.WithMessage(fmt.Sprintf("order %s not found", id))
	}
	return nil
}

// Ensure GormOrderRepository implements ordering.OrderRepository
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
