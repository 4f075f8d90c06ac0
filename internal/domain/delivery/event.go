package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/andromeda/ordersync/internal/domain/ordering"
)

// EventKind identifies which partner webhook an event arrived on
type EventKind string

const (
	EventTaskCreated   EventKind = "task_created"
	EventTaskAssigned  EventKind = "task_assigned"
	EventTaskOnTheWay  EventKind = "task_on_the_way"
	EventTaskCheckedIn EventKind = "task_checked_in"
	EventTaskArrived   EventKind = "task_arrived"
	EventTaskDone      EventKind = "task_done"
	EventTaskAccepted  EventKind = "task_accepted"
	EventTaskCancelled EventKind = "task_cancelled"
	EventTaskRejected  EventKind = "task_rejected"
	EventTaskLate      EventKind = "task_late"
)

// AllEventKinds lists every kind in partner documentation order
var AllEventKinds = []EventKind{
	EventTaskCreated,
	EventTaskAssigned,
	EventTaskOnTheWay,
	EventTaskCheckedIn,
	EventTaskArrived,
	EventTaskDone,
	EventTaskAccepted,
	EventTaskCancelled,
	EventTaskRejected,
	EventTaskLate,
}

// IsValid checks if the kind is known
func (k EventKind) IsValid() bool {
	for _, kind := range AllEventKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// String returns the string representation
func (k EventKind) String() string {
	return string(k)
}

// StatusChange returns the order status the event moves the order to, if any
func (k EventKind) StatusChange() (ordering.OrderStatus, bool) {
	switch k {
	case EventTaskOnTheWay:
		return ordering.OrderStatusOutForDelivery, true
	case EventTaskDone:
		return ordering.OrderStatusCompleted, true
	}
	return ordering.OrderStatusUnknown, false
}

// TaskStatus is the partner's numeric task status. The partner sends it
// either as a JSON number or as a numeric string.
type TaskStatus int

// UnmarshalJSON accepts 4, "4" and null
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		if text == "" {
			*s = 0
			return nil
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("delivery: invalid task status %q", text)
		}
		*s = TaskStatus(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = TaskStatus(n)
	return nil
}

// WebhookEvent is a lifecycle event pushed by the partner
type WebhookEvent struct {
	// ID is the partner's task id as sent in the body
	ID int64 `json:"id"`
	// Status is the partner's task status
	Status TaskStatus `json:"status"`
	// UserID is the partner user (driver) acting on the task
	UserID int64 `json:"user_id"`
	// Raw is the body as received
	Raw json.RawMessage `json:"-"`
}

// ParseWebhookEvent decodes a raw webhook body
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyEvent
	}
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	event.Raw = append(json.RawMessage(nil), body...)
	return &event, nil
}
