package ordering

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact type identifiers used on customer contact records.
const (
	ContactTypeEmail = 0
	ContactTypePhone = 1
)

// Pay types recorded on the order header.
const (
	PayTypePayLater = "PAYLATER"
	PayTypeCash     = "CASH"
)

// ---------------------------------------------------------------------------
// OrderHeader Aggregate
// ---------------------------------------------------------------------------

// OrderHeader is an order as stored after placement. Everything except
// Status is read-only for this service.
type OrderHeader struct {
	// ID is the internal order identifier
	ID uuid.UUID
	// ExternalOrderRef is the reference issued by the ordering channel
	ExternalOrderRef string
	// ExternalSiteID identifies the site in the ordering channel
	ExternalSiteID string
	// ApplicationID is the ordering application the order came from
	ApplicationID int
	// DeliveryTaskID is the delivery partner's task identifier, 0 when unassigned
	DeliveryTaskID int64
	// CustomerID is the customer reference sent to the POS
	CustomerID int64
	// PayType is the header level payment code (CASH, PAYLATER, CARD...)
	PayType string
	// DeliveryCharge in minor units
	DeliveryCharge int64
	// Tips in minor units
	Tips int64
	// Status is the current order status
	Status OrderStatus
	// PlacedAt is when the order was placed (UTC)
	PlacedAt time.Time
	// WantedAt is when the customer wants the order (UTC)
	WantedAt time.Time
	// Timestamp is the record timestamp, newest wins when task ids collide
	Timestamp time.Time

	Customer  *Customer
	Address   *CustomerAddress
	Lines     []OrderLine
	Payments  []OrderPayment
	Discounts []OrderDiscount
}

// OrderLine is one ordered item
type OrderLine struct {
	ProductID int64
	Quantity  int
	// Price is the unit price in minor units
	Price       int64
	Description string
}

// Units returns the number of units on the line. Lines recorded without a
// quantity count as a single unit.
func (l OrderLine) Units() int {
	if l.Quantity <= 0 {
		return 1
	}
	return l.Quantity
}

// Total returns the extended line price in minor units
func (l OrderLine) Total() int64 {
	return l.Price * int64(l.Units())
}

// OrderPayment is one payment applied to the order
type OrderPayment struct {
	// PayTypeName is the payment method name (VISA, INTERNET...)
	PayTypeName string
	// PaymentType is the coarse payment kind used when PayTypeName is blank
	PaymentType string
	// Value in minor units
	Value int64
}

// TypeName returns the name used to look the payment up
func (p OrderPayment) TypeName() string {
	if strings.TrimSpace(p.PayTypeName) == "" {
		return p.PaymentType
	}
	return p.PayTypeName
}

// IsCash reports whether the payment is settled in cash or on delivery
func (p OrderPayment) IsCash() bool {
	name := strings.ToUpper(strings.TrimSpace(p.TypeName()))
	return name == PayTypeCash || name == PayTypePayLater
}

// OrderDiscount is one discount applied to the order
type OrderDiscount struct {
	Reason string
	// Amount in minor units
	Amount int64
}

// Customer is the ordering customer with their contact records
type Customer struct {
	FirstName string
	LastName  string
	Contacts  []Contact
}

// Contact is a single contact record (email, phone)
type Contact struct {
	TypeID int
	Value  string
}

// FirstContact returns the first contact of the given type
func (c *Customer) FirstContact(typeID int) (Contact, bool) {
	if c == nil {
		return Contact{}, false
	}
	for _, contact := range c.Contacts {
		if contact.TypeID == typeID {
			return contact, true
		}
	}
	return Contact{}, false
}

// CustomerAddress is the delivery address of the order
type CustomerAddress struct {
	RoadNum    string
	RoadName   string
	City       string
	State      string
	ZipCode    string
	Directions string
}

// IsPayLater reports whether the order is paid on collection or delivery
func (o *OrderHeader) IsPayLater() bool {
	return strings.EqualFold(strings.TrimSpace(o.PayType), PayTypePayLater)
}

// HasDeliveryCharge reports whether a delivery charge applies
func (o *OrderHeader) HasDeliveryCharge() bool {
	return o.DeliveryCharge > 0
}

// HasTip reports whether a tip was added
func (o *OrderHeader) HasTip() bool {
	return o.Tips > 0
}
