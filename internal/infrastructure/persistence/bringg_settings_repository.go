package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBringgSettingsRepository implements delivery.SettingsRepository
type GormBringgSettingsRepository struct {
	db *gorm.DB
}

// NewGormBringgSettingsRepository creates a new GormBringgSettingsRepository
func NewGormBringgSettingsRepository(db *gorm.DB) *GormBringgSettingsRepository {
	return &GormBringgSettingsRepository{db: db}
}

// FindByStoreID returns the partner settings of a store
func (r *GormBringgSettingsRepository) FindByStoreID(ctx context.Context, storeID int) (*delivery.Settings, error) {
	var model models.BringgSettingsModel
	err := r.db.WithContext(ctx).Where("store_id = ?", storeID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: store %d", delivery.ErrSettingsNotFound, storeID)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormBringgSettingsRepository implements delivery.SettingsRepository
var _ delivery.SettingsRepository = (*GormBringgSettingsRepository)(nil)
