package delivery

import (
	"github.com/andromeda/ordersync/internal/domain/ordering"
)

// Source is written on every payload forwarded downstream
const Source = "Bringg -> ACS"

// TaskNotification is forwarded downstream for every lifecycle event.
// Field names are the downstream receiver's.
type TaskNotification struct {
	AndromedaSiteID        int                  `json:"AndromedaSiteId"`
	ExternalSiteID         string               `json:"ExternalSiteId"`
	AndromedaOrderID       string               `json:"AndromedaOrderId"`
	ExternalID             string               `json:"ExternalId"`
	ID                     int64                `json:"Id"`
	Source                 string               `json:"Source"`
	Status                 TaskStatus           `json:"Status"`
	AndromedaOrderStatusID ordering.OrderStatus `json:"AndromedaOrderStatusId"`
	UserID                 int64                `json:"UserId"`
}

// OrderStatusChange is forwarded downstream when an event moves the order
// to a new status
type OrderStatusChange struct {
	AndromedaSiteID   int    `json:"AndromedaSiteId"`
	ExternalSiteID    string `json:"ExternalSiteId"`
	ExternalOrderID   string `json:"ExternalOrderId"`
	Source            string `json:"Source"`
	AcsApplicationID  int    `json:"AcsApplicationId"`
	Status            int    `json:"Status"`
	StatusDescription string `json:"StatusDescription"`
}

// NewTaskNotification validates the resolved records and builds the
// notification for a task.
func NewTaskNotification(taskID int64, event *WebhookEvent, order *ordering.OrderHeader, store *StoreDetails) (*TaskNotification, error) {
	if err := checkResolved(taskID, event, order, store); err != nil {
		return nil, err
	}

	return &TaskNotification{
		AndromedaSiteID:        store.AndromedaSiteID,
		ExternalSiteID:         store.ExternalSiteID,
		AndromedaOrderID:       order.ID.String(),
		ExternalID:             order.ExternalOrderRef,
		ID:                     taskID,
		Source:                 Source,
		Status:                 event.Status,
		AndromedaOrderStatusID: order.Status,
		UserID:                 event.UserID,
	}, nil
}

// NewOrderStatusChange builds the status change payload
func NewOrderStatusChange(order *ordering.OrderHeader, store *StoreDetails, status ordering.OrderStatus) (*OrderStatusChange, error) {
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	return &OrderStatusChange{
		AndromedaSiteID:   store.AndromedaSiteID,
		ExternalSiteID:    store.ExternalSiteID,
		ExternalOrderID:   order.ExternalOrderRef,
		Source:            Source,
		AcsApplicationID:  order.ApplicationID,
		Status:            int(status),
		StatusDescription: status.Describe(),
	}, nil
}
