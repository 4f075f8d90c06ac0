package persistence

import (
	"context"

	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/andromeda/ordersync/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTranslationRepository implements ordering.TranslationRepository.
// Rows are read in insertion order so the first duplicate wins.
type GormTranslationRepository struct {
	db *gorm.DB
}

// NewGormTranslationRepository creates a new GormTranslationRepository
func NewGormTranslationRepository(db *gorm.DB) *GormTranslationRepository {
	return &GormTranslationRepository{db: db}
}

// FoodTranslations loads the menu item to PLU table
func (r *GormTranslationRepository) FoodTranslations(ctx context.Context) (*ordering.FoodTranslationTable, error) {
	var rows []models.FoodItemTranslationModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	translations := make([]ordering.FoodItemTranslation, 0, len(rows))
	for _, row := range rows {
		translations = append(translations, ordering.FoodItemTranslation{
			MenuItemID: row.MenuItemID,
			PLU:        row.PLU,
		})
	}
	return ordering.NewFoodTranslationTable(translations), nil
}

// PaymentTranslations loads the payment type to media table
func (r *GormTranslationRepository) PaymentTranslations(ctx context.Context) (*ordering.PaymentTranslationTable, error) {
	var rows []models.PaymentTypeTranslationModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	translations := make([]ordering.PaymentTypeTranslation, 0, len(rows))
	for _, row := range rows {
		translations = append(translations, ordering.PaymentTypeTranslation{
			PaymentTypeName: row.PaymentTypeName,
			MediaNumber:     row.MediaNumber,
			MediaType:       row.MediaType,
		})
	}
	return ordering.NewPaymentTranslationTable(translations), nil
}

// Ensure GormTranslationRepository implements ordering.TranslationRepository
var _ ordering.TranslationRepository = (*GormTranslationRepository)(nil)
