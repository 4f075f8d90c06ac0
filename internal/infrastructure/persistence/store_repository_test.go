package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStoreRepository_FindStoresBySiteAndApplication(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&[]models.StoreModel{
		{ID: 10, AndromedaSiteID: 1234, ExternalSiteID: "site-42", Name: "Sutton"},
		{ID: 11, AndromedaSiteID: 1235, ExternalSiteID: "site-42", Name: "Sutton annex"},
		{ID: 12, AndromedaSiteID: 1300, ExternalSiteID: "site-77", Name: "Croydon"},
	}).Error)
	require.NoError(t, db.Create(&[]models.ApplicationSiteModel{
		{ApplicationID: 7, StoreID: 10},
		{ApplicationID: 8, StoreID: 11},
		{ApplicationID: 7, StoreID: 12},
	}).Error)

	tests := []struct {
		name          string
		site          string
		applicationID int
		want          []int
	}{
		{"linked application", "site-42", 7, []int{10}},
		{"other application", "site-42", 8, []int{11}},
		{"unlinked application", "site-42", 9, []int{}},
		{"special application ignores links", "site-42", delivery.SpecialApplicationID, []int{10, 11}},
		{"unknown site", "site-99", 7, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores, err := repo.FindStoresBySiteAndApplication(ctx, tt.site, tt.applicationID)
			require.NoError(t, err)

			ids := make([]int, 0, len(stores))
			for _, s := range stores {
				ids = append(ids, s.AndroAdminStoreID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	t.Run("maps store details", func(t *testing.T) {
		stores, err := repo.FindStoresBySiteAndApplication(ctx, "site-77", 7)
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, delivery.StoreDetails{ExternalSiteID: "site-77", AndromedaSiteID: 1300, AndroAdminStoreID: 12}, stores[0])
	})
}

func TestGormStoreRepository_QueryShape(t *testing.T) {
	t.Run("filters through application sites", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormStoreRepository(db.DB)

		mock.ExpectQuery(`SELECT \* FROM "stores" WHERE stores.external_site_id = \$1 AND .*EXISTS \(SELECT 1 FROM acs_application_sites s WHERE s.store_id = stores.id AND s.acs_application_id = \$2\).* ORDER BY stores.id`).
			WithArgs("site-42", 7).
			WillReturnRows(sqlmock.NewRows([]string{"id", "andromeda_site_id", "external_site_id", "name"}).
				AddRow(10, 1234, "site-42", "Sutton"))

		stores, err := repo.FindStoresBySiteAndApplication(context.Background(), "site-42", 7)
		require.NoError(t, err)
		assert.Len(t, stores, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("special application skips the join", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormStoreRepository(db.DB)

		mock.ExpectQuery(`SELECT \* FROM "stores" WHERE stores.external_site_id = \$1 ORDER BY stores.id`).
			WithArgs("site-42").
			WillReturnRows(sqlmock.NewRows([]string{"id", "andromeda_site_id", "external_site_id", "name"}))

		stores, err := repo.FindStoresBySiteAndApplication(context.Background(), "site-42", delivery.SpecialApplicationID)
		require.NoError(t, err)
		assert.Empty(t, stores)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates query errors", func(t *testing.T) {
		db, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormStoreRepository(db.DB)

		mock.ExpectQuery(`SELECT \* FROM "stores"`).WillReturnError(assert.AnError)

		stores, err := repo.FindStoresBySiteAndApplication(context.Background(), "site-42", 7)
		assert.Nil(t, stores)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
