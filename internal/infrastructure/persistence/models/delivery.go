package models

import (
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
)

// StoreModel is a store known to the platform
type StoreModel struct {
	ID              int    `gorm:"primaryKey"`
	AndromedaSiteID int    `gorm:"not null;index"`
	ExternalSiteID  string `gorm:"type:varchar(100);not null;index"`
	Name            string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the model to StoreDetails
func (m *StoreModel) ToDomain() delivery.StoreDetails {
	return delivery.StoreDetails{
		ExternalSiteID:    m.ExternalSiteID,
		AndromedaSiteID:   m.AndromedaSiteID,
		AndroAdminStoreID: m.ID,
	}
}

// ApplicationSiteModel links an ordering application to a store
type ApplicationSiteModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	ApplicationID int   `gorm:"column:acs_application_id;not null;index"`
	StoreID       int   `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ApplicationSiteModel) TableName() string {
	return "acs_application_sites"
}

// BringgSettingsModel holds a store's partner API credentials
type BringgSettingsModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	StoreID     int       `gorm:"not null;uniqueIndex"`
	CompanyID   int64     `gorm:"not null"`
	AccessToken string    `gorm:"type:varchar(200);not null"`
	SecretKey   string    `gorm:"type:varchar(200);not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (BringgSettingsModel) TableName() string {
	return "bringg_settings"
}

// ToDomain converts the model to partner Settings
func (m *BringgSettingsModel) ToDomain() *delivery.Settings {
	return &delivery.Settings{
		StoreID:     m.StoreID,
		CompanyID:   m.CompanyID,
		AccessToken: m.AccessToken,
		SecretKey:   m.SecretKey,
	}
}
