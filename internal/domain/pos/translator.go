package pos

import (
	"fmt"
	"time"

	"github.com/andromeda/ordersync/internal/domain/ordering"
)

// Reserved POS codes and placeholder values
const (
	DeliveryChargeOffset      int64 = 15073
	DeliveryChargeDescription       = "Delivery Charge"
	CashMediaOffset           int64 = 1
	CardMediaOffset           int64 = 2
	AdjustmentOffset          int64 = 1
	TipOffset                 int64 = 1
	TipDescription                  = "Tip Added"

	FallbackPostcode             = "SM6 0DZ"
	FallbackEmail                = "unknown@andromeda.com"
	FallbackPhone                = "0123456789"
	FallbackDeliveryInstructions = "Unknown"

	// WantedTimeFloor is how far ahead a wanted time already in the past is moved
	WantedTimeFloor = 5 * time.Minute
)

// TimeZoneConverter converts stored UTC instants to store local time
type TimeZoneConverter interface {
	ToLocal(utc time.Time) time.Time
}

// Translator builds POS requests from stored orders
type Translator struct {
	converter TimeZoneConverter
}

// NewTranslator creates a translator using the given time zone converter
func NewTranslator(converter TimeZoneConverter) *Translator {
	return &Translator{converter: converter}
}

// Translate builds the request header, the customer block and the delivery
// charge line. Food, payment, discount and tip lines are appended by the
// Add* functions.
func (t *Translator) Translate(order *ordering.OrderHeader, nowLocal time.Time) (*AddOrderRequest, error) {
	if order == nil {
		return nil, ErrNilOrder
	}

	placed := t.converter.ToLocal(order.PlacedAt)
	wanted := t.converter.ToLocal(order.WantedAt)
	if !wanted.After(nowLocal) {
		wanted = nowLocal.Add(WantedTimeFloor)
	}
	slot := TimeSlot(wanted)

	req := &AddOrderRequest{
		CustomerNo:                order.CustomerID,
		CustomerDetails:           customerDetails(order),
		DeliveryInstructions:      deliveryInstructions(order),
		UserReference:             order.ExternalOrderRef,
		OrderType:                 OrderTypeDelivery,
		OrderPlacedDay:            placed.Day(),
		OrderPlacedMonth:          int(placed.Month()),
		OrderPlacedYear:           placed.Year(),
		OrderPlacedHour:           placed.Hour(),
		OrderPlacedMin:            placed.Minute(),
		WantedOrderDay:            wanted.Day(),
		WantedOrderMonth:          int(wanted.Month()),
		WantedOrderYear:           wanted.Year(),
		TimeSlotFrom:              slot,
		TimeSlotTo:                slot,
		PayOnCollectionOrDelivery: order.IsPayLater(),
		Items:                     make([]TransactionLine, 0),
	}

	if order.HasDeliveryCharge() {
		req.AppendLine(TransactionLine{
			LineType:      LineTypePLU,
			GrossValue:    minorToMajor(order.DeliveryCharge),
			Quantity:      1,
			StockQuantity: 1,
			Description:   DeliveryChargeDescription,
			Offset:        DeliveryChargeOffset,
		})
	}

	return req, nil
}

// Build runs the whole translation: header, food, payments, discounts, tip.
func (t *Translator) Build(
	order *ordering.OrderHeader,
	nowLocal time.Time,
	food *ordering.FoodTranslationTable,
	payments *ordering.PaymentTranslationTable,
) (*AddOrderRequest, error) {
	req, err := t.Translate(order, nowLocal)
	if err != nil {
		return nil, err
	}
	if err := AddFoodItems(req, order, food); err != nil {
		return nil, err
	}
	if err := AddPaymentLines(req, order, payments); err != nil {
		return nil, err
	}
	if err := AddDiscounts(req, order); err != nil {
		return nil, err
	}
	if err := AddTip(req, order); err != nil {
		return nil, err
	}
	return req, nil
}

// TimeSlot returns the wall clock time as HHMM
func TimeSlot(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// UnmatchedProducts lists the distinct product ids with no PLU translation,
// in order of first appearance.
func UnmatchedProducts(order *ordering.OrderHeader, food *ordering.FoodTranslationTable) []int64 {
	if order == nil {
		return nil
	}
	seen := make(map[int64]struct{})
	var missing []int64
	for _, line := range order.Lines {
		if _, ok := food.PLU(line.ProductID); ok {
			continue
		}
		if _, dup := seen[line.ProductID]; dup {
			continue
		}
		seen[line.ProductID] = struct{}{}
		missing = append(missing, line.ProductID)
	}
	return missing
}

type pluGroup struct {
	plu   int64
	lines []ordering.OrderLine
}

// AddFoodItems appends one ePLU line per distinct PLU. Lines whose products
// share a PLU collapse into one line carrying the unit count and the summed
// value. A product without a PLU fails the whole call and nothing is appended.
func AddFoodItems(req *AddOrderRequest, order *ordering.OrderHeader, food *ordering.FoodTranslationTable) error {
	if req == nil {
		return ErrNilRequest
	}
	if order == nil {
		return ErrNilOrder
	}
	if missing := UnmatchedProducts(order, food); len(missing) > 0 {
		return &MissingPLUError{ProductIDs: missing}
	}

	var groups []*pluGroup
	index := make(map[int64]*pluGroup)
	for _, line := range order.Lines {
		plu, _ := food.PLU(line.ProductID)
		g, ok := index[plu]
		if !ok {
			g = &pluGroup{plu: plu}
			index[plu] = g
			groups = append(groups, g)
		}
		g.lines = append(g.lines, line)
	}

	for _, g := range groups {
		var units int
		var total int64
		for _, line := range g.lines {
			units += line.Units()
			total += line.Total()
		}
		req.AppendLine(TransactionLine{
			LineType:      LineTypePLU,
			GrossValue:    minorToMajor(total),
			Quantity:      units,
			StockQuantity: units,
			Description:   g.lines[0].Description,
			Offset:        g.plu,
		})
	}
	return nil
}

// AddPaymentLines appends one ePayment line per payment. Cash and pay later
// use the cash media code, other names are looked up and fall back to the
// card media code when unknown.
func AddPaymentLines(req *AddOrderRequest, order *ordering.OrderHeader, payments *ordering.PaymentTranslationTable) error {
	if req == nil {
		return ErrNilRequest
	}
	if order == nil {
		return ErrNilOrder
	}

	for _, payment := range order.Payments {
		description := payment.TypeName()
		offset := CashMediaOffset
		if !payment.IsCash() {
			if mapping, ok := payments.Lookup(description); ok {
				offset = mapping.MediaNumber
				description = mapping.MediaType
			} else {
				offset = CardMediaOffset
			}
		}

		req.AppendLine(TransactionLine{
			LineType:      LineTypePayment,
			GrossValue:    minorToMajor(payment.Value),
			StockQuantity: 1,
			Description:   description,
			Offset:        offset,
		})
	}
	return nil
}

// AddDiscounts appends one eAdjustment line per discount
func AddDiscounts(req *AddOrderRequest, order *ordering.OrderHeader) error {
	if req == nil {
		return ErrNilRequest
	}
	if order == nil {
		return ErrNilOrder
	}

	for _, discount := range order.Discounts {
		req.AppendLine(TransactionLine{
			LineType:    LineTypeAdjustment,
			GrossValue:  minorToMajor(discount.Amount),
			Description: discount.Reason,
			Code:        discount.Reason,
			Offset:      AdjustmentOffset,
		})
	}
	return nil
}

// AddTip appends the tip line when a tip was added
func AddTip(req *AddOrderRequest, order *ordering.OrderHeader) error {
	if req == nil {
		return ErrNilRequest
	}
	if order == nil {
		return ErrNilOrder
	}
	if !order.HasTip() {
		return nil
	}

	req.AppendLine(TransactionLine{
		LineType:    LineTypeTip,
		GrossValue:  minorToMajor(order.Tips),
		Quantity:    1,
		Description: TipDescription,
		Offset:      TipOffset,
	})
	return nil
}

func customerDetails(order *ordering.OrderHeader) CustomerDetails {
	address := order.Address
	if address == nil {
		address = &ordering.CustomerAddress{ZipCode: FallbackPostcode}
	}

	details := CustomerDetails{
		Address1: address.RoadNum,
		Address2: address.RoadName,
		Address3: address.City,
		Address4: address.State,
		Postcode: address.ZipCode,
		Phone:    FallbackPhone,
		Email:    FallbackEmail,
	}
	if order.Customer != nil {
		details.Forename = order.Customer.FirstName
		details.Surname = order.Customer.LastName
	}
	if email, ok := order.Customer.FirstContact(ordering.ContactTypeEmail); ok {
		details.Email = email.Value
	}
	if phone, ok := order.Customer.FirstContact(ordering.ContactTypePhone); ok {
		details.Phone = phone.Value
	}
	return details
}

func deliveryInstructions(order *ordering.OrderHeader) string {
	if order.Address == nil {
		return FallbackDeliveryInstructions
	}
	return order.Address.Directions
}

// String renders a line for logs
func (l TransactionLine) String() string {
	return fmt.Sprintf("#%d %s offset=%d qty=%d value=%s %q",
		l.LineNumber, l.LineType, l.Offset, l.Quantity, l.GrossValue.StringFixed(2), l.Description)
}
