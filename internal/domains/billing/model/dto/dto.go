package dto

import (
	"strings"
	"suitespot/internal/domains/billing/model"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"time"

	"github.com/shopspring/decimal"
)

type GenerateBillRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type DiscountRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"money"`
}

type EligibilityRequest struct {
	BookingID string          `json:"booking_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount"     validate:"money"`
}

type EligibilityResponse struct {
	BookingID string          `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
	Eligible  bool            `json:"eligible"`
}

type BillResponse struct {
	ID             string          `json:"id"`
	BookingID      string          `json:"booking_id"`
	RoomCharges    decimal.Decimal `json:"room_charges"`
	ServiceCharges decimal.Decimal `json:"service_charges"`
	Taxes          decimal.Decimal `json:"taxes"`
	Discount       decimal.Decimal `json:"discount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentStatus  string          `json:"payment_status"`
	GeneratedAt    time.Time       `json:"generated_at"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *BillResponse) FromModel(model model.Bill) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.RoomCharges = model.RoomCharges
	r.ServiceCharges = model.ServiceCharges
	r.Taxes = model.Taxes
	r.Discount = model.Discount
	r.TotalAmount = model.TotalAmount
	r.PaymentStatus = string(model.PaymentStatus)
	r.GeneratedAt = model.GeneratedAt
	r.PaidAt = model.PaidAt
	r.Metadata = gDto.MetadataOf(model.Metadata)
}

type GetBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBillsResponse) FromModels(models []model.Bill, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bills = make([]BillResponse, len(models))
	for i, mod := range models {
		r.Bills[i].FromModel(mod)
	}
}

type BillFilter struct {
	PaymentStatus string
}

func (f BillFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.PaymentStatus != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Value:    strings.ToLower(f.PaymentStatus),
			Operator: gDto.FilterOperatorEq,
		})
	}

	return group
}

func (f BillFilter) CacheKey() string {
	return f.PaymentStatus
}
