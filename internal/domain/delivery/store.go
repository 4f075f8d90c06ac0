package delivery

import (
	"context"
	"strings"

	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/google/uuid"
)

// SpecialApplicationID is the ordering application whose orders may belong
// to any store with a matching external site id
const SpecialApplicationID = 1100000000

// StoreDetails identifies the store an order belongs to
type StoreDetails struct {
	ExternalSiteID    string
	AndromedaSiteID   int
	AndroAdminStoreID int
}

// StoreDirectory looks stores up
type StoreDirectory interface {
	// FindStoresBySiteAndApplication returns stores with the external site id.
	// Unless applicationID is SpecialApplicationID only stores linked to the
	// application are returned.
	FindStoresBySiteAndApplication(ctx context.Context, externalSiteID string, applicationID int) ([]StoreDetails, error)
}

func checkResolved(taskID int64, event *WebhookEvent, order *ordering.OrderHeader, store *StoreDetails) error {
	switch {
	case event == nil:
		return ErrEmptyEvent
	case order == nil:
		return ErrOrderNotFound
	case store == nil:
		return ErrStoreNotFound
	case store.AndromedaSiteID <= 0:
		return missingField("AndromedaSiteId")
	case strings.TrimSpace(store.ExternalSiteID) == "":
		return missingField("ExternalSiteId")
	case order.ID == uuid.Nil:
		return missingField("AndromedaOrderId")
	case strings.TrimSpace(order.ExternalOrderRef) == "":
		return missingField("ExternalOrderRef")
	case taskID <= 0:
		return missingField("TaskId")
	}
	return nil
}
