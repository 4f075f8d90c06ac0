package persistence

import (
	"context"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStoreRepository implements delivery.StoreDirectory using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindStoresBySiteAndApplication returns the stores with the external site
// id. Stores must also be linked to the application through
// acs_application_sites unless the application is the special one.
func (r *GormStoreRepository) FindStoresBySiteAndApplication(
	ctx context.Context,
	externalSiteID string,
	applicationID int,
) ([]delivery.StoreDetails, error) {
	query := r.db.WithContext(ctx).
		Model(&models.StoreModel{}).
		Where("stores.external_site_id = ?", externalSiteID)

	if applicationID != delivery.SpecialApplicationID {
		query = query.Where(
			"EXISTS (SELECT 1 FROM acs_application_sites s WHERE s.store_id = stores.id AND s.acs_application_id = ?)",
			applicationID,
		)
	}

	var rows []models.StoreModel
	if err := query.Order("stores.id").Find(&rows).Error; err != nil {
		return nil, err
	}

	stores := make([]delivery.StoreDetails, 0, len(rows))
	for i := range rows {
		stores = append(stores, rows[i].ToDomain())
	}
	return stores, nil
}

// Ensure GormStoreRepository implements delivery.StoreDirectory
var _ delivery.StoreDirectory = (*GormStoreRepository)(nil)
