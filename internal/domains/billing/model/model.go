package model

import (
	"fmt"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/shared/failure"
	"suitespot/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bills"
	EntityName = "bill"

	FieldID             = "id"
	FieldBookingID      = "booking_id"
	FieldRoomCharges    = "room_charges"
	FieldServiceCharges = "service_charges"
	FieldTaxes          = "taxes"
	FieldDiscount       = "discount"
	FieldTotalAmount    = "total_amount"
	FieldPaymentStatus  = "payment_status"
	FieldGeneratedAt    = "generated_at"
	FieldPaidAt         = "paid_at"
)

const moneyPlaces = 2

var (
	// DefaultTaxRate and DefaultServiceRate are fractions applied when settings carry none.
	DefaultTaxRate     = decimal.RequireFromString("0.10")
	DefaultServiceRate = decimal.RequireFromString("0.05")

	maxDiscountShare = decimal.RequireFromString("0.50")
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Rates are fractional tax and service-charge rates, e.g. 0.10 for 10%.
type Rates struct {
	Tax     decimal.Decimal
	Service decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{Tax: DefaultTaxRate, Service: DefaultServiceRate}
}

type Bill struct {
	ID             string          `db:"id"`
	BookingID      string          `db:"booking_id"`
	RoomCharges    decimal.Decimal `db:"room_charges"`
	ServiceCharges decimal.Decimal `db:"service_charges"`
	Taxes          decimal.Decimal `db:"taxes"`
	Discount       decimal.Decimal `db:"discount"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	PaymentStatus  PaymentStatus   `db:"payment_status"`
	GeneratedAt    time.Time       `db:"generated_at"`
	PaidAt         *time.Time      `db:"paid_at"`
	model.Metadata
}

// RoomCharges is the booking total, or the nightly price times at least one night when
// the total is missing. roomID is empty when the booked room could not be loaded.
func RoomCharges(booking bookingModel.Booking, roomID string, nightlyPrice decimal.Decimal) (decimal.Decimal, error) {
	if booking.TotalAmount.IsPositive() {
		return booking.TotalAmount, nil
	}

	if roomID == "" {
		return decimal.Zero, failure.MissingChargeBasis("booking total is missing and no room price is available") // nolint:wrapcheck
	}

	nights := max(booking.Nights(), 1)

	return bookingModel.TotalFor(nightlyPrice, nights), nil
}

// Calculate derives a pending bill from room charges and rates. The booking discount is
// capped at MaxDiscount and the total never drops below zero.
func Calculate(bookingID string, roomCharges, discount decimal.Decimal, rates Rates) Bill {
	roomCharges = roomCharges.Round(moneyPlaces)
	service := roomCharges.Mul(rates.Service).Round(moneyPlaces)
	taxes := roomCharges.Add(service).Mul(rates.Tax).Round(moneyPlaces)

	if discount.IsNegative() {
		discount = decimal.Zero
	}

	bill := Bill{
		BookingID:      bookingID,
		RoomCharges:    roomCharges,
		ServiceCharges: service,
		Taxes:          taxes,
		PaymentStatus:  PaymentStatusPending,
	}
	bill.Discount = decimal.Min(discount, bill.MaxDiscount()).Round(moneyPlaces)
	bill.TotalAmount = bill.total()

	return bill
}

// Gross is room charges plus service charges plus taxes.
func (b Bill) Gross() decimal.Decimal {
	return b.RoomCharges.Add(b.ServiceCharges).Add(b.Taxes)
}

// MaxDiscount is half of the room charges, rounded to cents.
func (b Bill) MaxDiscount() decimal.Decimal {
	return b.RoomCharges.Mul(maxDiscountShare).Round(moneyPlaces)
}

// ApplyDiscount adds amount to the cumulative discount, capped at MaxDiscount.
// Non-positive amounts leave the bill untouched.
func (b Bill) ApplyDiscount(amount decimal.Decimal) Bill {
	if !amount.IsPositive() {
		return b
	}

	b.Discount = decimal.Min(b.Discount.Add(amount), b.MaxDiscount()).Round(moneyPlaces)
	b.TotalAmount = b.total()

	return b
}

func (b Bill) MarkAsPaid(at time.Time) (Bill, error) {
	if b.PaymentStatus == PaymentStatusCancelled {
		return b, failure.InvalidStatus("a cancelled bill cannot be paid") // nolint:wrapcheck
	}

	b.PaymentStatus = PaymentStatusPaid
	b.PaidAt = &at

	return b, nil
}

func (b Bill) MarkAsPartialPaid() (Bill, error) {
	switch b.PaymentStatus {
	case PaymentStatusPaid, PaymentStatusCancelled:
		return b, failure.InvalidStatus(fmt.Sprintf("a %s bill cannot be marked as partially paid", b.PaymentStatus)) // nolint:wrapcheck
	default:
		b.PaymentStatus = PaymentStatusPartial

		return b, nil
	}
}

func (b Bill) total() decimal.Decimal {
	return decimal.Max(b.Gross().Sub(b.Discount), decimal.Zero).Round(moneyPlaces)
}

// IsEligibleForDiscount reports whether amount is positive and at most half the booking total.
func IsEligibleForDiscount(booking bookingModel.Booking, amount decimal.Decimal) bool {
	if !amount.IsPositive() {
		return false
	}

	return amount.LessThanOrEqual(booking.TotalAmount.Mul(maxDiscountShare))
}
