package dto

import (
	"strings"
	"suitespot/internal/domains/settings/model"
	gDto "suitespot/shared/dto"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest changes the fields that are set and keeps the rest.
type UpdateSettingsRequest struct {
	HotelName          *string          `json:"hotel_name"          validate:"omitempty,min=1,max=100"`
	HotelEmail         *string          `json:"hotel_email"         validate:"omitempty,email"`
	HotelPhone         *string          `json:"hotel_phone"         validate:"omitempty,max=30"`
	HotelAddress       *string          `json:"hotel_address"       validate:"omitempty,max=255"`
	TaxRate            *decimal.Decimal `json:"tax_rate"            validate:"omitempty,money"`
	ServiceChargeRate  *decimal.Decimal `json:"service_charge_rate" validate:"omitempty,money"`
	Currency           *string          `json:"currency"            validate:"omitempty,len=3"`
	CheckInTime        *string          `json:"check_in_time"       validate:"omitempty,clock"`
	CheckOutTime       *string          `json:"check_out_time"      validate:"omitempty,clock"`
	CancellationPolicy *string          `json:"cancellation_policy" validate:"omitempty,max=2000"`
}

// Apply returns settings with the request's fields written over it.
func (u *UpdateSettingsRequest) Apply(settings model.Settings) model.Settings {
	if u.HotelName != nil {
		settings.HotelName = strings.TrimSpace(*u.HotelName)
	}

	if u.HotelEmail != nil {
		settings.HotelEmail = strings.ToLower(strings.TrimSpace(*u.HotelEmail))
	}

	if u.HotelPhone != nil {
		settings.HotelPhone = strings.TrimSpace(*u.HotelPhone)
	}

	if u.HotelAddress != nil {
		settings.HotelAddress = strings.TrimSpace(*u.HotelAddress)
	}

	if u.TaxRate != nil {
		settings.TaxRate = *u.TaxRate
	}

	if u.ServiceChargeRate != nil {
		settings.ServiceChargeRate = *u.ServiceChargeRate
	}

	if u.Currency != nil {
		settings.Currency = strings.ToUpper(*u.Currency)
	}

	if u.CheckInTime != nil {
		settings.CheckInTime = *u.CheckInTime
	}

	if u.CheckOutTime != nil {
		settings.CheckOutTime = *u.CheckOutTime
	}

	if u.CancellationPolicy != nil {
		settings.CancellationPolicy = *u.CancellationPolicy
	}

	return settings
}

type SettingsResponse struct {
	HotelName          string          `json:"hotel_name"`
	HotelEmail         string          `json:"hotel_email"`
	HotelPhone         string          `json:"hotel_phone"`
	HotelAddress       string          `json:"hotel_address"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	ServiceChargeRate  decimal.Decimal `json:"service_charge_rate"`
	Currency           string          `json:"currency"`
	CheckInTime        string          `json:"check_in_time"`
	CheckOutTime       string          `json:"check_out_time"`
	CancellationPolicy string          `json:"cancellation_policy"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.HotelName = model.HotelName
	r.HotelEmail = model.HotelEmail
	r.HotelPhone = model.HotelPhone
	r.HotelAddress = model.HotelAddress
	r.TaxRate = model.TaxRate
	r.ServiceChargeRate = model.ServiceChargeRate
	r.Currency = model.Currency
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.CancellationPolicy = model.CancellationPolicy
	r.Metadata = gDto.MetadataOf(model.Metadata)
}
