package pos

import "github.com/shopspring/decimal"

// LineType tags a transaction line
type LineType string

const (
	LineTypePLU        LineType = "ePLU"
	LineTypePayment    LineType = "ePayment"
	LineTypeAdjustment LineType = "eAdjustment"
	LineTypeTip        LineType = "eTip"
)

// IsValid checks if the line type is valid
func (t LineType) IsValid() bool {
	switch t {
	case LineTypePLU, LineTypePayment, LineTypeAdjustment, LineTypeTip:
		return true
	}
	return false
}

// String returns the string representation
func (t LineType) String() string {
	return string(t)
}

// OrderType is the POS order type
type OrderType string

// OrderTypeDelivery is the only type this service submits
const OrderTypeDelivery OrderType = "eDelivery"

// AddOrderRequest is the POS order-entry request
type AddOrderRequest struct {
	CustomerNo           int64           `json:"customerNo"`
	CustomerDetails      CustomerDetails `json:"customerDetails"`
	DeliveryInstructions string          `json:"deliveryInstructions"`
	UserReference        string          `json:"userReference"`
	OrderType            OrderType       `json:"orderType"`

	OrderPlacedDay   int `json:"orderPlacedDay"`
	OrderPlacedMonth int `json:"orderPlacedMonth"`
	OrderPlacedYear  int `json:"orderPlacedYear"`
	OrderPlacedHour  int `json:"orderPlacedHour"`
	OrderPlacedMin   int `json:"orderPlacedMin"`

	WantedOrderDay   int `json:"wantedOrderDay"`
	WantedOrderMonth int `json:"wantedOrderMonth"`
	WantedOrderYear  int `json:"wantedOrderYear"`

	// TimeSlotFrom and TimeSlotTo hold the wanted time as HHMM
	TimeSlotFrom int `json:"timeSlotFrom"`
	TimeSlotTo   int `json:"timeSlotTo"`

	PayOnCollectionOrDelivery bool `json:"payOnCollectionOrDelivery"`

	Items []TransactionLine `json:"items"`
}

// CustomerDetails is the customer and address block of a request
type CustomerDetails struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	Address3 string `json:"address3"`
	Address4 string `json:"address4"`
	Postcode string `json:"postcode"`
	Forename string `json:"forename"`
	Surname  string `json:"surname"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// TransactionLine is one line of a request
type TransactionLine struct {
	LineType   LineType        `json:"lineType"`
	LineNumber int             `json:"lineNumber"`
	GrossValue decimal.Decimal `json:"grossValue"`
	Quantity   int             `json:"quantity"`
	// StockQuantity is the number of stock units the line consumes
	StockQuantity int    `json:"stockQuantity"`
	Description   string `json:"description"`
	Code          string `json:"code,omitempty"`
	// Offset is the PLU for food lines and the media code for payments
	Offset int64 `json:"offset"`
}

// NextLineNumber returns the number the next appended line will get
func (r *AddOrderRequest) NextLineNumber() int {
	return len(r.Items) + 1
}

// AppendLine numbers the line and appends it
func (r *AddOrderRequest) AppendLine(line TransactionLine) {
	line.LineNumber = r.NextLineNumber()
	r.Items = append(r.Items, line)
}

// HasLineType reports whether any line carries the given type
func (r *AddOrderRequest) HasLineType(lineType LineType) bool {
	for _, item := range r.Items {
		if item.LineType == lineType {
			return true
		}
	}
	return false
}

// minorToMajor converts minor currency units to a decimal major amount
func minorToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
