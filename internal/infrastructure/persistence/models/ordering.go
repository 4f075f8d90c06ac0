package models

import (
	"time"

	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/google/uuid"
)

// OrderModel is the persistence model for ordering.OrderHeader
type OrderModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalOrderRef string    `gorm:"type:varchar(100);not null"`
	ExternalSiteID   string    `gorm:"type:varchar(100);not null;index"`
	ApplicationID    int       `gorm:"not null"`
	DeliveryTaskID   int64     `gorm:"not null;default:0;index"`
	CustomerID       int64     `gorm:"not null;default:0"`
	PayType          string    `gorm:"type:varchar(50)"`
	DeliveryCharge   int64     `gorm:"not null;default:0"`
	Tips             int64     `gorm:"not null;default:0"`
	Status           int       `gorm:"not null;default:1"`
	PlacedAt         time.Time `gorm:"not null"`
	WantedAt         time.Time `gorm:"not null"`
	RecordedAt       time.Time `gorm:"not null;index"`

	Customer  *CustomerModel       `gorm:"foreignKey:CustomerID"`
	Address   *OrderAddressModel   `gorm:"foreignKey:OrderID"`
	Lines     []OrderLineModel     `gorm:"foreignKey:OrderID"`
	Payments  []OrderPaymentModel  `gorm:"foreignKey:OrderID"`
	Discounts []OrderDiscountModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model and any preloaded children to an OrderHeader
func (m *OrderModel) ToDomain() *ordering.OrderHeader {
	order := &ordering.OrderHeader{
		ID:               m.ID,
		ExternalOrderRef: m.ExternalOrderRef,
		ExternalSiteID:   m.ExternalSiteID,
		ApplicationID:    m.ApplicationID,
		DeliveryTaskID:   m.DeliveryTaskID,
		CustomerID:       m.CustomerID,
		PayType:          m.PayType,
		DeliveryCharge:   m.DeliveryCharge,
		Tips:             m.Tips,
		Status:           ordering.OrderStatus(m.Status),
		PlacedAt:         m.PlacedAt.UTC(),
		WantedAt:         m.WantedAt.UTC(),
		Timestamp:        m.RecordedAt.UTC(),
	}
	if m.Customer != nil {
		order.Customer = m.Customer.ToDomain()
	}
	if m.Address != nil {
		order.Address = m.Address.ToDomain()
	}
	for _, l := range m.Lines {
		order.Lines = append(order.Lines, ordering.OrderLine{
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Description: l.Description,
		})
	}
	for _, p := range m.Payments {
		order.Payments = append(order.Payments, ordering.OrderPayment{
			PayTypeName: p.PayTypeName,
			PaymentType: p.PaymentType,
			Value:       p.Value,
		})
	}
	for _, d := range m.Discounts {
		order.Discounts = append(order.Discounts, ordering.OrderDiscount{
			Reason: d.Reason,
			Amount: d.Amount,
		})
	}
	return order
}

// OrderLineModel is one ordered item
type OrderLineModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   int64     `gorm:"not null"`
	Quantity    int       `gorm:"not null;default:1"`
	Price       int64     `gorm:"not null;default:0"`
	Description string    `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// OrderPaymentModel is one payment against an order
type OrderPaymentModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PayTypeName string    `gorm:"type:varchar(100)"`
	PaymentType string    `gorm:"type:varchar(100)"`
	Value       int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderPaymentModel) TableName() string {
	return "order_payments"
}

// OrderDiscountModel is one discount applied to an order
type OrderDiscountModel struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reason  string    `gorm:"type:varchar(200)"`
	Amount  int64     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderDiscountModel) TableName() string {
	return "order_discounts"
}

// OrderAddressModel is the delivery address of an order
type OrderAddressModel struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoadNum    string    `gorm:"type:varchar(50)"`
	RoadName   string    `gorm:"type:varchar(200)"`
	City       string    `gorm:"type:varchar(100)"`
	State      string    `gorm:"type:varchar(100)"`
	ZipCode    string    `gorm:"type:varchar(20)"`
	Directions string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderAddressModel) TableName() string {
	return "order_addresses"
}

// ToDomain converts the model to a CustomerAddress
func (m *OrderAddressModel) ToDomain() *ordering.CustomerAddress {
	return &ordering.CustomerAddress{
		RoadNum:    m.RoadNum,
		RoadName:   m.RoadName,
		City:       m.City,
		State:      m.State,
		ZipCode:    m.ZipCode,
		Directions: m.Directions,
	}
}

// CustomerModel is an ordering customer
type CustomerModel struct {
	ID        int64                  `gorm:"primaryKey"`
	FirstName string                 `gorm:"type:varchar(100)"`
	LastName  string                 `gorm:"type:varchar(100)"`
	Contacts  []CustomerContactModel `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the model and its preloaded contacts to a Customer
func (m *CustomerModel) ToDomain() *ordering.Customer {
	customer := &ordering.Customer{FirstName: m.FirstName, LastName: m.LastName}
	for _, c := range m.Contacts {
		customer.Contacts = append(customer.Contacts, ordering.Contact{TypeID: c.ContactTypeID, Value: c.Value})
	}
	return customer
}

// CustomerContactModel is one contact record of a customer
type CustomerContactModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID    int64  `gorm:"not null;index"`
	ContactTypeID int    `gorm:"not null"`
	Value         string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (CustomerContactModel) TableName() string {
	return "customer_contacts"
}

// FoodItemTranslationModel maps a menu item to its POS PLU
type FoodItemTranslationModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	MenuItemID int64 `gorm:"not null;index"`
	PLU        int64 `gorm:"column:plu;not null"`
}

// TableName returns the table name for GORM
func (FoodItemTranslationModel) TableName() string {
	return "food_item_translations"
}

// PaymentTypeTranslationModel maps a payment type name to a POS media
type PaymentTypeTranslationModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	PaymentTypeName string `gorm:"type:varchar(100);not null"`
	MediaNumber     int64  `gorm:"not null"`
	MediaType       string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (PaymentTypeTranslationModel) TableName() string {
	return "payment_type_translations"
}
