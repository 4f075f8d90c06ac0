package delivery

import (
	"context"
	"time"
)

// Forwarder posts JSON payloads to the downstream order receiver
type Forwarder interface {
	// PostJSON posts payload to path below the configured base address.
	// A non-success response is an error carrying the response body.
	PostJSON(ctx context.Context, path string, payload any) error
}

// Endpoints are the downstream receiver paths payloads are posted to
type Endpoints struct {
	// Task receives TaskNotification payloads
	Task string
	// OrderStatus receives OrderStatusChange payloads
	OrderStatus string
}

// StatusPublisher announces order status changes to other services
type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, change *OrderStatusChange) error
}

// Settings are a store's credentials for the partner API
type Settings struct {
	StoreID     int    `validate:"required,gt=0"`
	CompanyID   int64  `validate:"required,gt=0"`
	AccessToken string `validate:"required"`
	SecretKey   string `validate:"required"`
}

// SettingsRepository loads partner settings per store
type SettingsRepository interface {
	// FindByStoreID returns ErrSettingsNotFound when the store has none
	FindByStoreID(ctx context.Context, storeID int) (*Settings, error)
}

// Task is a task as reported by the partner API
type Task struct {
	ID          int64      `json:"id"`
	ExternalID  string     `json:"external_id"`
	Title       string     `json:"title"`
	Status      TaskStatus `json:"status"`
	UserID      int64      `json:"user_id"`
	CustomerID  int64      `json:"customer_id"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// TaskClient queries the partner API
type TaskClient interface {
	GetTask(ctx context.Context, settings *Settings, taskID int64) (*Task, error)
}
