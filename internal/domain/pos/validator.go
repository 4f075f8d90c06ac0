package pos

// Validation rule failures, in the order they are checked
var (
	ErrWantedDayNotSet    = newValidationError("wantedOrderDay", "Wanted 'day' is not set")
	ErrWantedMonthNotSet  = newValidationError("wantedOrderMonth", "Wanted 'month' is not set")
	ErrWantedYearNotSet   = newValidationError("wantedOrderYear", "Wanted 'year' is not set")
	ErrTimeSlotFromNotSet = newValidationError("timeSlotFrom", "'TimeSlotFrom' not set")
	ErrTimeSlotToNotSet   = newValidationError("timeSlotTo", "'TimeSlotTo' not set")
	ErrCustomerNotSet     = newValidationError("customerNo", "Customer id is not set")
	ErrItemsNotSet        = newValidationError("items", "Items are not set")
	ErrNoFoodItems        = newValidationError("items", "There are no food items in the order")
	ErrNoPaymentItems     = newValidationError("items", "There are no payment items in the order")
	ErrPlacedDayNotSet    = newValidationError("orderPlacedDay", "Placed 'day' is not set")
	ErrPlacedMonthNotSet  = newValidationError("orderPlacedMonth", "Placed 'month' is not set")
	ErrPlacedYearNotSet   = newValidationError("orderPlacedYear", "Placed 'year' is not set")
	ErrPlacedHourNotSet   = newValidationError("orderPlacedHour", "Placed 'hour' is not set")
	ErrPlacedMinuteNotSet = newValidationError("orderPlacedMin", "Placed 'minute' is not set")
)

type rule struct {
	err *ValidationError
	ok  func(*AddOrderRequest) bool
}

var rules = []rule{
	{ErrWantedDayNotSet, func(r *AddOrderRequest) bool { return r.WantedOrderDay > 0 }},
	{ErrWantedMonthNotSet, func(r *AddOrderRequest) bool { return r.WantedOrderMonth > 0 }},
	{ErrWantedYearNotSet, func(r *AddOrderRequest) bool { return r.WantedOrderYear > 0 }},
	{ErrTimeSlotFromNotSet, func(r *AddOrderRequest) bool { return r.TimeSlotFrom > 0 }},
	{ErrTimeSlotToNotSet, func(r *AddOrderRequest) bool { return r.TimeSlotTo > 0 }},
	{ErrCustomerNotSet, func(r *AddOrderRequest) bool { return r.CustomerNo > 0 }},
	{ErrItemsNotSet, func(r *AddOrderRequest) bool { return r.Items != nil }},
	{ErrNoFoodItems, func(r *AddOrderRequest) bool { return r.HasLineType(LineTypePLU) }},
	{ErrNoPaymentItems, func(r *AddOrderRequest) bool { return r.HasLineType(LineTypePayment) }},
	{ErrPlacedDayNotSet, func(r *AddOrderRequest) bool { return r.OrderPlacedDay > 0 }},
	{ErrPlacedMonthNotSet, func(r *AddOrderRequest) bool { return r.OrderPlacedMonth > 0 }},
	{ErrPlacedYearNotSet, func(r *AddOrderRequest) bool { return r.OrderPlacedYear > 0 }},
	{ErrPlacedHourNotSet, func(r *AddOrderRequest) bool { return r.OrderPlacedHour > 0 }},
	{ErrPlacedMinuteNotSet, func(r *AddOrderRequest) bool { return r.OrderPlacedMin > 0 }},
}

// Validate returns nil when the request may be submitted, otherwise the
// first rule it breaks. Every returned rule matches ErrInvalidRequest.
func Validate(req *AddOrderRequest) error {
	if req == nil {
		return ErrNilRequest
	}
	for _, r := range rules {
		if !r.ok(req) {
			return r.err
		}
	}
	return nil
}
