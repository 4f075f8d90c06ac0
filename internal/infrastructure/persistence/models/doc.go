// Package models contains GORM persistence models that map to database tables.
// They stay separate from domain types so the domain layer carries no ORM
// tags; each model converts itself with ToDomain.
package models

// All returns every model, in dependency order, for AutoMigrate in tests
func All() []any {
	return []any{
		&CustomerModel{},
		&CustomerContactModel{},
		&OrderModel{},
		&OrderAddressModel{},
		&OrderLineModel{},
		&OrderPaymentModel{},
		&OrderDiscountModel{},
		&FoodItemTranslationModel{},
		&PaymentTypeTranslationModel{},
		&StoreModel{},
		&ApplicationSiteModel{},
		&BringgSettingsModel{},
	}
}
