package dto

import (
	"strings"
	"suitespot/internal/domains/taxi/model"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	gModel "suitespot/shared/model"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTaxiRequest struct {
	BookingID      string `json:"booking_id"      validate:"required,uuid"`
	PickupLocation string `json:"pickup_location" validate:"omitempty,max=255"`
	Destination    string `json:"destination"     validate:"required,max=255"`
	Notes          string `json:"notes"           validate:"omitempty,max=500"`
}

func (c *CreateTaxiRequest) ToModel(user string, now time.Time) model.TaxiRequest {
	pickup := strings.TrimSpace(c.PickupLocation)
	if pickup == constant.Empty {
		pickup = model.DefaultPickup
	}

	return model.TaxiRequest{
		ID:             uuid.NewString(),
		BookingID:      c.BookingID,
		PickupLocation: pickup,
		Destination:    strings.TrimSpace(c.Destination),
		Status:         model.StatusPending,
		RequestedAt:    now,
		Notes:          c.Notes,
		Metadata:       gModel.NewMetadata(user, now),
	}
}

type ConfirmTaxiRequest struct {
	DriverName    string          `json:"driver_name"    validate:"required,max=100"`
	VehicleNumber string          `json:"vehicle_number" validate:"required,max=30"`
	PhoneNumber   string          `json:"phone_number"   validate:"required,max=30"`
	EstimatedCost decimal.Decimal `json:"estimated_cost" validate:"money"`
}

func (c ConfirmTaxiRequest) Driver() model.Driver {
	return model.Driver{
		Name:          strings.TrimSpace(c.DriverName),
		VehicleNumber: strings.TrimSpace(c.VehicleNumber),
		PhoneNumber:   strings.TrimSpace(c.PhoneNumber),
		EstimatedCost: c.EstimatedCost,
	}
}

type UpdateTaxiStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type TaxiResponse struct {
	ID             string           `json:"id"`
	BookingID      string           `json:"booking_id"`
	PickupLocation string           `json:"pickup_location"`
	Destination    string           `json:"destination"`
	Status         string           `json:"status"`
	RequestedAt    time.Time        `json:"requested_at"`
	EstimatedETA   *time.Time       `json:"estimated_arrival_at,omitempty"`
	DriverName     string           `json:"driver_name,omitempty"`
	VehicleNumber  string           `json:"vehicle_number,omitempty"`
	PhoneNumber    string           `json:"phone_number,omitempty"`
	EstimatedCost  *decimal.Decimal `json:"estimated_cost,omitempty"`
	Notes          string           `json:"notes"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	gDto.Metadata
}

func (r *TaxiResponse) FromModel(model model.TaxiRequest) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PickupLocation = model.PickupLocation
	r.Destination = model.Destination
	r.Status = string(model.Status)
	r.RequestedAt = model.RequestedAt
	r.EstimatedETA = model.EstimatedETA
	r.DriverName = model.DriverName
	r.VehicleNumber = model.VehicleNumber
	r.PhoneNumber = model.PhoneNumber
	r.Notes = model.Notes
	r.CompletedAt = model.CompletedAt
	r.Metadata = gDto.MetadataOf(model.Metadata)

	if model.EstimatedCost.Valid {
		cost := model.EstimatedCost.Decimal
		r.EstimatedCost = &cost
	}
}

type GetTaxiRequestsResponse struct {
	TaxiRequests []TaxiResponse `json:"taxi_requests"`
	TotalPage    int            `json:"total_page"`
	TotalData    int            `json:"total_data"`
}

func (r *GetTaxiRequestsResponse) FromModels(models []model.TaxiRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.TaxiRequests = make([]TaxiResponse, len(models))
	for i, mod := range models {
		r.TaxiRequests[i].FromModel(mod)
	}
}

// TaxiFilter narrows listings to one status and/or one booking.
type TaxiFilter struct {
	Status    model.Status
	BookingID string
}

func (f TaxiFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Status != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	if f.BookingID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldBookingID, Value: f.BookingID, Operator: gDto.FilterOperatorEq})
	}

	return group
}

func (f TaxiFilter) CacheKey() string {
	return string(f.Status) + "," + f.BookingID
}
