package dto

import (
	"strings"
	"suitespot/internal/domains/booking/model"
	guestDto "suitespot/internal/domains/guest/model/dto"
	roomModel "suitespot/internal/domains/room/model"
	roomDto "suitespot/internal/domains/room/model/dto"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"
	gModel "suitespot/shared/model"
	"suitespot/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestID         string `json:"guest_id"         validate:"required,uuid"`
	RoomID          string `json:"room_id"          validate:"required,uuid"`
	CheckInDate     string `json:"check_in_date"    validate:"required,date"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,date"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=1000"`
}

func (c *CreateBookingRequest) Stay() (model.Stay, error) {
	return parseStay(c.CheckInDate, c.CheckOutDate)
}

// ToModel builds a pending booking for room over stay, priced at the room's nightly rate.
func (c *CreateBookingRequest) ToModel(user string, stay model.Stay, room roomModel.Room) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         c.GuestID,
		RoomID:          room.ID,
		CheckInDate:     stay.CheckIn,
		CheckOutDate:    stay.CheckOut,
		Status:          model.StatusPending,
		TotalAmount:     model.TotalFor(room.Price, stay.Nights()),
		SpecialRequests: c.SpecialRequests,
		Metadata:        gModel.NewMetadata(user, now),
	}
}

// UpdateBookingRequest changes a booking that has not been checked out or cancelled.
// Nil fields are left untouched.
type UpdateBookingRequest struct {
	GuestID         *string          `json:"guest_id"         validate:"omitempty,uuid"`
	RoomID          *string          `json:"room_id"          validate:"omitempty,uuid"`
	CheckInDate     *string          `json:"check_in_date"    validate:"omitempty,date"`
	CheckOutDate    *string          `json:"check_out_date"   validate:"omitempty,date"`
	Status          *string          `json:"status"           validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
	SpecialRequests *string          `json:"special_requests" validate:"omitempty,max=1000"`
	Discount        *decimal.Decimal `json:"discount"         validate:"omitempty,money"`
}

// RepricingNeeded reports whether the change touches the room or the dates.
func (u *UpdateBookingRequest) RepricingNeeded() bool {
	return u.RoomID != nil || u.CheckInDate != nil || u.CheckOutDate != nil
}

// Stay merges the requested dates over current.
func (u *UpdateBookingRequest) Stay(current model.Stay) (model.Stay, error) {
	checkIn := current.CheckIn.Format(constant.DateOnlyFormat)
	if u.CheckInDate != nil {
		checkIn = *u.CheckInDate
	}

	checkOut := current.CheckOut.Format(constant.DateOnlyFormat)
	if u.CheckOutDate != nil {
		checkOut = *u.CheckOutDate
	}

	return parseStay(checkIn, checkOut)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

type AvailabilityRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"required,date"`
	CheckOutDate string `json:"check_out_date" validate:"required,date"`
	RoomType     string `json:"room_type"      validate:"omitempty,oneof=single double suite deluxe presidential"`
}

// Stay parses the requested range. An inverted range is returned as is so callers can
// answer it with an empty result.
func (a *AvailabilityRequest) Stay() (model.Stay, error) {
	checkIn, err := timezone.ParseDate(a.CheckInDate)
	if err != nil {
		return model.Stay{}, failure.BadRequestFromString("check_in_date must be a YYYY-MM-DD date") // nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(a.CheckOutDate)
	if err != nil {
		return model.Stay{}, failure.BadRequestFromString("check_out_date must be a YYYY-MM-DD date") // nolint:wrapcheck
	}

	return model.Stay{CheckIn: checkIn, CheckOut: checkOut}, nil
}

type SearchRequest struct {
	Query    string   `json:"query"     validate:"omitempty,max=100"`
	FromDate string   `json:"from_date" validate:"omitempty,date"`
	ToDate   string   `json:"to_date"   validate:"omitempty,date"`
	Statuses []string `json:"statuses"  validate:"omitempty,dive,oneof=pending confirmed checked_in checked_out cancelled"`
}

// Window returns the parsed date bounds, zero when absent.
func (s *SearchRequest) Window() (from, to time.Time) {
	if s.FromDate != constant.Empty {
		from, _ = timezone.ParseDate(s.FromDate)
	}

	if s.ToDate != constant.Empty {
		to, _ = timezone.ParseDate(s.ToDate)
	}

	return from, to
}

func (s *SearchRequest) BookingStatuses() []model.Status {
	statuses := make([]model.Status, 0, len(s.Statuses))
	for _, status := range s.Statuses {
		statuses = append(statuses, model.Status(strings.ToLower(status)))
	}

	return statuses
}

type BookingResponse struct {
	ID              string           `json:"id"`
	GuestID         string           `json:"guest_id"`
	RoomID          string           `json:"room_id"`
	CheckInDate     string           `json:"check_in_date"`
	CheckOutDate    string           `json:"check_out_date"`
	Nights          int              `json:"nights"`
	Status          string           `json:"status"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Discount        *decimal.Decimal `json:"discount,omitempty"`
	SpecialRequests string           `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Nights = model.Nights()
	r.Status = string(model.Status)
	r.TotalAmount = model.TotalAmount
	r.SpecialRequests = model.SpecialRequests
	r.Metadata = gDto.MetadataOf(model.Metadata)

	if model.Discount.Valid {
		discount := model.Discount.Decimal
		r.Discount = &discount
	}
}

type BookingDetailResponse struct {
	BookingResponse
	Guest *guestDto.GuestResponse `json:"guest"`
	Room  *roomDto.RoomResponse   `json:"room"`
}

func (r *BookingDetailResponse) FromModel(detail model.BookingDetail) {
	r.BookingResponse.FromModel(detail.Booking)

	if detail.HasGuest() {
		r.Guest = &guestDto.GuestResponse{}
		r.Guest.FromModel(detail.Guest)
	}

	if detail.HasRoom() {
		r.Room = &roomDto.RoomResponse{}
		r.Room.FromModel(detail.Room)
	}
}

func FromDetails(details []model.BookingDetail) []BookingDetailResponse {
	res := make([]BookingDetailResponse, len(details))
	for i, detail := range details {
		res[i].FromModel(detail)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailableRoomsResponse struct {
	CheckInDate  string                 `json:"check_in_date"`
	CheckOutDate string                 `json:"check_out_date"`
	Nights       int                    `json:"nights"`
	Rooms        []roomDto.RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(stay model.Stay, rooms []roomModel.Room) {
	r.CheckInDate = stay.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOutDate = stay.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = max(stay.Nights(), 0)

	r.Rooms = make([]roomDto.RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

// BookingFilter narrows booking listings. Empty fields are ignored.
type BookingFilter struct {
	Status  string
	GuestID string
	RoomID  string
}

func (f BookingFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Status != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	if f.GuestID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldGuestID, Value: f.GuestID, Operator: gDto.FilterOperatorEq})
	}

	if f.RoomID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldRoomID, Value: f.RoomID, Operator: gDto.FilterOperatorEq})
	}

	return group
}

func (f BookingFilter) CacheKey() string {
	return strings.Join([]string{f.Status, f.GuestID, f.RoomID}, ",")
}

func parseStay(checkInValue, checkOutValue string) (model.Stay, error) {
	checkIn, err := timezone.ParseDate(checkInValue)
	if err != nil {
		return model.Stay{}, failure.BadRequestFromString("check_in_date must be a YYYY-MM-DD date") // nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(checkOutValue)
	if err != nil {
		return model.Stay{}, failure.BadRequestFromString("check_out_date must be a YYYY-MM-DD date") // nolint:wrapcheck
	}

	return model.NewStay(checkIn, checkOut) //nolint:wrapcheck
}
