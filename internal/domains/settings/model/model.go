package model

import (
	billingModel "suitespot/internal/domains/billing/model"
	"suitespot/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "system_settings"
	EntityName = "settings"

	// SingletonID is the key of the only settings row.
	SingletonID = "default"

	FieldID                 = "id"
	FieldHotelName          = "hotel_name"
	FieldHotelEmail         = "hotel_email"
	FieldHotelPhone         = "hotel_phone"
	FieldHotelAddress       = "hotel_address"
	FieldTaxRate            = "tax_rate"
	FieldServiceChargeRate  = "service_charge_rate"
	FieldCurrency           = "currency"
	FieldCheckInTime        = "check_in_time"
	FieldCheckOutTime       = "check_out_time"
	FieldCancellationPolicy = "cancellation_policy"
)

const ratePlaces = 4

var hundred = decimal.NewFromInt(100)

// Settings holds hotel-wide configuration. Rates are stored as percentages.
type Settings struct {
	ID                 string          `db:"id"`
	HotelName          string          `db:"hotel_name"`
	HotelEmail         string          `db:"hotel_email"`
	HotelPhone         string          `db:"hotel_phone"`
	HotelAddress       string          `db:"hotel_address"`
	TaxRate            decimal.Decimal `db:"tax_rate"`
	ServiceChargeRate  decimal.Decimal `db:"service_charge_rate"`
	Currency           string          `db:"currency"`
	CheckInTime        string          `db:"check_in_time"`
	CheckOutTime       string          `db:"check_out_time"`
	CancellationPolicy string          `db:"cancellation_policy"`
	model.Metadata
}

// Rates converts the stored percentages to the fractions used by billing.
func (s Settings) Rates() billingModel.Rates {
	return billingModel.Rates{
		Tax:     s.TaxRate.Div(hundred).Round(ratePlaces),
		Service: s.ServiceChargeRate.Div(hundred).Round(ratePlaces),
	}
}
