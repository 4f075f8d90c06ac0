package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() *AddOrderRequest {
	return &AddOrderRequest{
		CustomerNo:       12,
		OrderType:        OrderTypeDelivery,
		OrderPlacedDay:   14,
		OrderPlacedMonth: 3,
		OrderPlacedYear:  2024,
		OrderPlacedHour:  18,
		OrderPlacedMin:   10,
		WantedOrderDay:   14,
		WantedOrderMonth: 3,
		WantedOrderYear:  2024,
		TimeSlotFrom:     1910,
		TimeSlotTo:       1910,
		Items: []TransactionLine{
			{LineType: LineTypePLU, LineNumber: 1, Offset: 3001},
			{LineType: LineTypePayment, LineNumber: 2, Offset: 1},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *AddOrderRequest)
		wantErr error
	}{
		{"valid request", func(r *AddOrderRequest) {}, nil},
		{"wanted day", func(r *AddOrderRequest) { r.WantedOrderDay = 0 }, ErrWantedDayNotSet},
		{"wanted month", func(r *AddOrderRequest) { r.WantedOrderMonth = 0 }, ErrWantedMonthNotSet},
		{"wanted year", func(r *AddOrderRequest) { r.WantedOrderYear = 0 }, ErrWantedYearNotSet},
		{"slot from", func(r *AddOrderRequest) { r.TimeSlotFrom = 0 }, ErrTimeSlotFromNotSet},
		{"slot to", func(r *AddOrderRequest) { r.TimeSlotTo = -1 }, ErrTimeSlotToNotSet},
		{"customer zero", func(r *AddOrderRequest) { r.CustomerNo = 0 }, ErrCustomerNotSet},
		{"customer negative", func(r *AddOrderRequest) { r.CustomerNo = -5 }, ErrCustomerNotSet},
		{"items nil", func(r *AddOrderRequest) { r.Items = nil }, ErrItemsNotSet},
		{"items empty", func(r *AddOrderRequest) { r.Items = []TransactionLine{} }, ErrNoFoodItems},
		{"no food", func(r *AddOrderRequest) { r.Items = r.Items[1:] }, ErrNoFoodItems},
		{"no payment", func(r *AddOrderRequest) { r.Items = r.Items[:1] }, ErrNoPaymentItems},
		{"placed day", func(r *AddOrderRequest) { r.OrderPlacedDay = 0 }, ErrPlacedDayNotSet},
		{"placed month", func(r *AddOrderRequest) { r.OrderPlacedMonth = 0 }, ErrPlacedMonthNotSet},
		{"placed year", func(r *AddOrderRequest) { r.OrderPlacedYear = 0 }, ErrPlacedYearNotSet},
		{"placed hour", func(r *AddOrderRequest) { r.OrderPlacedHour = 0 }, ErrPlacedHourNotSet},
		{"placed minute", func(r *AddOrderRequest) { r.OrderPlacedMin = 0 }, ErrPlacedMinuteNotSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := Validate(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestValidate_FirstFailingRuleWins(t *testing.T) {
	req := validRequest()
	req.OrderPlacedMin = 0
	req.Items = nil
	req.CustomerNo = 0
	req.TimeSlotTo = 0

	assert.ErrorIs(t, Validate(req), ErrTimeSlotToNotSet)

	req.TimeSlotTo = 1910
	assert.ErrorIs(t, Validate(req), ErrCustomerNotSet)

	req.CustomerNo = 1
	assert.ErrorIs(t, Validate(req), ErrItemsNotSet)
}

func TestValidate_CustomerRuleIndependentOfOtherFields(t *testing.T) {
	for _, customer := range []int64{0, -1, -1000} {
		req := validRequest()
		req.CustomerNo = customer
		assert.ErrorIs(t, Validate(req), ErrCustomerNotSet)
	}
}

func TestValidate_NilRequest(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrNilRequest)
}

func TestValidationError_Field(t *testing.T) {
	assert.Equal(t, "customerNo", ErrCustomerNotSet.Field)
	assert.Equal(t, "There are no food items in the order", ErrNoFoodItems.Error())
}
