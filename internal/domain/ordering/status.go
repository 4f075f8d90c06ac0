package ordering

import "fmt"

// OrderStatus is the numeric order status shared with downstream receivers
type OrderStatus int

const (
	OrderStatusUnknown          OrderStatus = 0
	OrderStatusReceived         OrderStatus = 1
	OrderStatusInOven           OrderStatus = 2
	OrderStatusReadyForDispatch OrderStatus = 3
	OrderStatusOutForDelivery   OrderStatus = 4
	OrderStatusCompleted        OrderStatus = 5
	OrderStatusCancelled        OrderStatus = 6
)

var orderStatusDescriptions = map[OrderStatus]string{
	OrderStatusReceived:         "Order has been received",
	OrderStatusInOven:           "Order is in the oven",
	OrderStatusReadyForDispatch: "Order is ready for dispatch",
	OrderStatusOutForDelivery:   "Order is out for delivery",
	OrderStatusCompleted:        "Order has been completed",
	OrderStatusCancelled:        "Order has been cancelled",
}

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusDescriptions[s]
	return ok
}

// Describe returns the human-readable description of the status
func (s OrderStatus) Describe() string {
	if d, ok := orderStatusDescriptions[s]; ok {
		return d
	}
	return fmt.Sprintf("Unknown order status %d", int(s))
}

// String returns the string representation
func (s OrderStatus) String() string {
	return s.Describe()
}
