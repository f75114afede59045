package dto

import (
	"strconv"
	"strings"
	"suitespot/internal/domains/room/model"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	gModel "suitespot/shared/model"
	"suitespot/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number      string          `json:"number"      validate:"required,max=20"`
	Type        string          `json:"type"        validate:"required,oneof=single double suite deluxe presidential"`
	Price       decimal.Decimal `json:"price"       validate:"money"`
	Capacity    int             `json:"capacity"    validate:"omitempty,min=1,max=20"`
	Floor       int             `json:"floor"       validate:"omitempty,min=0"`
	Amenities   []string        `json:"amenities"   validate:"omitempty,dive,max=50"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Active      *bool           `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	capacity := c.Capacity
	if capacity == 0 {
		capacity = 1
	}

	amenities := c.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	now := timezone.Now()

	return model.Room{
		ID:          uuid.NewString(),
		Number:      c.Number,
		Type:        model.Type(c.Type),
		Status:      model.StatusAvailable,
		Price:       c.Price.Round(2),
		Capacity:    capacity,
		Floor:       c.Floor,
		Amenities:   pq.StringArray(amenities),
		Description: c.Description,
		Active:      active,
		Metadata:    gModel.NewMetadata(user, now),
	}
}

// UpdateRoomRequest changes descriptive fields only. Status changes go through the status endpoint.
type UpdateRoomRequest struct {
	Number      string           `db:"number"      json:"number"      validate:"omitempty,max=20"`
	Type        string           `db:"type"        json:"type"        validate:"omitempty,oneof=single double suite deluxe presidential"`
	Price       *decimal.Decimal `db:"price"       json:"price"       validate:"omitempty,money"`
	Capacity    *int             `db:"capacity"    json:"capacity"    validate:"omitempty,min=1,max=20"`
	Floor       *int             `db:"floor"       json:"floor"       validate:"omitempty,min=0"`
	Amenities   pq.StringArray   `db:"amenities"   json:"amenities"   validate:"omitempty,dive,max=50"`
	Description *string          `db:"description" json:"description" validate:"omitempty,max=500"`
	Active      *bool            `db:"active"      json:"active"      validate:"omitempty"`
}

// PriceChanged reports whether the request carries a new nightly price.
func (u *UpdateRoomRequest) PriceChanged() bool {
	return u.Price != nil
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance reserved"`
	Force  bool   `json:"force"`
	Reason string `json:"reason" validate:"required_if=Force true,max=255"`
}

type RoomResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	Price       decimal.Decimal `json:"price"`
	Capacity    int             `json:"capacity"`
	Floor       int             `json:"floor"`
	Amenities   []string        `json:"amenities"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = string(model.Type)
	r.Status = string(model.Status)
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Floor = model.Floor
	r.Amenities = []string(model.Amenities)
	r.Description = model.Description
	r.Active = model.Active
	r.Metadata = gDto.MetadataOf(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type StatusChangeResponse struct {
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Forced     bool   `json:"forced"`
	Reason     string `json:"reason,omitempty"`
	ChangedAt  string `json:"changed_at"`
	ChangedBy  string `json:"changed_by"`
}

func (s *StatusChangeResponse) FromModel(change model.StatusChange) {
	s.FromStatus = string(change.FromStatus)
	s.ToStatus = string(change.ToStatus)
	s.Forced = change.Forced
	s.Reason = change.Reason
	s.ChangedAt = timezone.Format(change.ChangedAt, constant.DateFormat)
	s.ChangedBy = change.ChangedBy
}

func FromStatusChanges(changes []model.StatusChange) []StatusChangeResponse {
	res := make([]StatusChangeResponse, len(changes))
	for i, change := range changes {
		res[i].FromModel(change)
	}

	return res
}

// RoomFilter narrows room listings. Empty fields are ignored.
type RoomFilter struct {
	Status string
	Type   string
	Floor  *int
	Active *bool
}

func (f RoomFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	if f.Type != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldType, Value: f.Type, Operator: gDto.FilterOperatorEq})
	}

	if f.Floor != nil {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldFloor, Value: *f.Floor, Operator: gDto.FilterOperatorEq})
	}

	if f.Active != nil {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldActive, Value: *f.Active, Operator: gDto.FilterOperatorEq})
	}

	return group
}

// CacheKey identifies the filter inside list cache keys.
func (f RoomFilter) CacheKey() string {
	floor, active := "-", "-"
	if f.Floor != nil {
		floor = strconv.Itoa(*f.Floor)
	}

	if f.Active != nil {
		active = strconv.FormatBool(*f.Active)
	}

	return strings.Join([]string{f.Status, f.Type, floor, active}, ",")
}
