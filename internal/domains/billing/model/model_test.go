package model_test

import (
	"testing"
	"time"

	"suitespot/internal/domains/billing/model"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		roomCharges string
		discount    string
		rates       model.Rates
		service     string
		taxes       string
		applied     string
		total       string
	}{
		{name: "default rates", roomCharges: "200", discount: "0", rates: model.DefaultRates(), service: "10.00", taxes: "21.00", applied: "0", total: "231.00"},
		{name: "half up rounding", roomCharges: "99.99", discount: "0", rates: model.DefaultRates(), service: "5.00", taxes: "10.50", applied: "0", total: "115.49"},
		{name: "booking discount", roomCharges: "200", discount: "31", rates: model.DefaultRates(), service: "10.00", taxes: "21.00", applied: "31", total: "200.00"},
		{name: "custom rates", roomCharges: "100", discount: "0", rates: model.Rates{Tax: money("0.2"), Service: money("0.1")}, service: "10.00", taxes: "22.00", applied: "0", total: "132.00"},
		{name: "booking discount capped at half the room charges", roomCharges: "200", discount: "150", rates: model.DefaultRates(), service: "10.00", taxes: "21.00", applied: "100", total: "131.00"},
		{name: "negative discount ignored", roomCharges: "10", discount: "-3", rates: model.DefaultRates(), service: "0.50", taxes: "1.05", applied: "0", total: "11.55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := model.Calculate("b-1", money(tt.roomCharges), money(tt.discount), tt.rates)

			assert.Equal(t, "b-1", bill.BookingID)
			assert.Equal(t, model.PaymentStatusPending, bill.PaymentStatus)
			assert.True(t, bill.ServiceCharges.Equal(money(tt.service)), "service %s", bill.ServiceCharges)
			assert.True(t, bill.Taxes.Equal(money(tt.taxes)), "taxes %s", bill.Taxes)
			assert.True(t, bill.Discount.Equal(money(tt.applied)), "discount %s", bill.Discount)
			assert.True(t, bill.TotalAmount.Equal(money(tt.total)), "total %s", bill.TotalAmount)
		})
	}

	t.Run("capped discount leaves no room for further discounts", func(t *testing.T) {
		bill := model.Calculate("b-1", money("200"), money("150"), model.DefaultRates())

		discounted := bill.ApplyDiscount(money("1"))
		assert.True(t, discounted.Discount.Equal(money("100")), "discount %s", discounted.Discount)
		assert.True(t, discounted.TotalAmount.Equal(bill.TotalAmount), "total %s", discounted.TotalAmount)
		assert.False(t, discounted.TotalAmount.GreaterThan(bill.TotalAmount))
	})
}

func TestRoomCharges(t *testing.T) {
	checkIn := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	charges, err := model.RoomCharges(bookingModel.Booking{TotalAmount: money("200")}, "r-1", money("100"))
	require.NoError(t, err)
	assert.True(t, charges.Equal(money("200")))

	recomputed := bookingModel.Booking{CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 3)}
	charges, err = model.RoomCharges(recomputed, "r-1", money("80"))
	require.NoError(t, err)
	assert.True(t, charges.Equal(money("240")))

	sameDay := bookingModel.Booking{CheckInDate: checkIn, CheckOutDate: checkIn}
	charges, err = model.RoomCharges(sameDay, "r-1", money("80"))
	require.NoError(t, err)
	assert.True(t, charges.Equal(money("80")))

	_, err = model.RoomCharges(bookingModel.Booking{}, "", decimal.Zero)
	assert.ErrorIs(t, err, failure.ErrMissingChargeBasis)
}

func TestBill_ApplyDiscount(t *testing.T) {
	bill := model.Calculate("b-1", money("200"), decimal.Zero, model.DefaultRates())

	t.Run("non-positive amount is a no-op", func(t *testing.T) {
		assert.Equal(t, bill, bill.ApplyDiscount(decimal.Zero))
		assert.Equal(t, bill, bill.ApplyDiscount(money("-5")))
	})

	t.Run("discount accumulates", func(t *testing.T) {
		discounted := bill.ApplyDiscount(money("20")).ApplyDiscount(money("11"))

		assert.True(t, discounted.Discount.Equal(money("31")))
		assert.True(t, discounted.TotalAmount.Equal(money("200")))
	})

	t.Run("discount is capped at half of room charges", func(t *testing.T) {
		discounted := bill
		for range 5 {
			discounted = discounted.ApplyDiscount(money("60"))
		}

		assert.True(t, discounted.Discount.Equal(money("100")))
		assert.True(t, discounted.TotalAmount.Equal(money("131")))
		assert.False(t, discounted.TotalAmount.IsNegative())
	})
}

func TestBill_PaymentStatus(t *testing.T) {
	bill := model.Calculate("b-1", money("200"), decimal.Zero, model.DefaultRates())
	paidAt := time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC)

	partial, err := bill.MarkAsPartialPaid()
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPartial, partial.PaymentStatus)

	paid, err := partial.MarkAsPaid(paidAt)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, paid.PaymentStatus)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, paidAt, *paid.PaidAt)

	_, err = paid.MarkAsPartialPaid()
	assert.ErrorIs(t, err, failure.ErrInvalidStatus)

	bill.PaymentStatus = model.PaymentStatusCancelled
	_, err = bill.MarkAsPaid(paidAt)
	assert.ErrorIs(t, err, failure.ErrInvalidStatus)
}

func TestIsEligibleForDiscount(t *testing.T) {
	booking := bookingModel.Booking{TotalAmount: money("200")}

	assert.True(t, model.IsEligibleForDiscount(booking, money("100")))
	assert.False(t, model.IsEligibleForDiscount(booking, money("100.01")))
	assert.False(t, model.IsEligibleForDiscount(booking, decimal.Zero))
}
