package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderReader provides read access to stored orders
type OrderReader interface {
	// FindByID loads an order with its lines, payments, discounts and customer.
	// Returns shared.ErrNotFound when the order does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*OrderHeader, error)

	// FindByDeliveryTaskID returns every order carrying the delivery task id,
	// newest record timestamp first.
	FindByDeliveryTaskID(ctx context.Context, taskID int64) ([]OrderHeader, error)
}

// OrderStatusWriter updates the status of a stored order
type OrderStatusWriter interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}

// OrderRepository combines read and status-write access
type OrderRepository interface {
	OrderReader
	OrderStatusWriter
}

// TranslationRepository loads the POS lookup tables
type TranslationRepository interface {
	FoodTranslations(ctx context.Context) (*FoodTranslationTable, error)
	PaymentTranslations(ctx context.Context) (*PaymentTranslationTable, error)
}
