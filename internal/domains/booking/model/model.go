package model

import (
	"fmt"
	"slices"
	"strings"
	guestModel "suitespot/internal/domains/guest/model"
	roomModel "suitespot/internal/domains/room/model"
	"suitespot/shared/failure"
	"suitespot/shared/model"
	"suitespot/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldStatus          = "status"
	FieldTotalAmount     = "total_amount"
	FieldDiscount        = "discount"
	FieldSpecialRequests = "special_requests"
	FieldCreatedAt       = "created_at"
)

const hoursPerDay = 24

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCheckedIn, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

func Statuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}
}

// CheckInStatuses are the statuses a booking can be found in at the front desk for check-in.
func CheckInStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn}
}

func ParseStatus(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", value)) // nolint:wrapcheck
	}

	return status, nil
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

func (s Status) TransitionTo(target Status) (Status, error) {
	if !target.Valid() {
		return s, failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", target)) // nolint:wrapcheck
	}

	if !s.CanTransitionTo(target) {
		return s, failure.InvalidStatus(fmt.Sprintf("booking cannot move from %s to %s", s, target)) // nolint:wrapcheck
	}

	return target, nil
}

// Stay is the half-open date range [CheckIn, CheckOut).
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	stay := Stay{CheckIn: timezone.DateOf(checkIn), CheckOut: timezone.DateOf(checkOut)}

	if !stay.CheckOut.After(stay.CheckIn) {
		return stay, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	return stay, nil
}

func (s Stay) Valid() bool {
	return s.CheckOut.After(s.CheckIn)
}

// Nights is the number of whole days between check-in and check-out.
func (s Stay) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / hoursPerDay)
}

// Overlaps reports whether two stays conflict. Touching ranges do not.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && s.CheckOut.After(other.CheckIn)
}

// TotalFor is the nightly price times nights, rounded to cents.
func TotalFor(price decimal.Decimal, nights int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(nights))).Round(2)
}

type Booking struct {
	ID              string              `db:"id"`
	GuestID         string              `db:"guest_id"`
	RoomID          string              `db:"room_id"`
	CheckInDate     time.Time           `db:"check_in_date"`
	CheckOutDate    time.Time           `db:"check_out_date"`
	Status          Status              `db:"status"`
	TotalAmount     decimal.Decimal     `db:"total_amount"`
	Discount        decimal.NullDecimal `db:"discount"`
	SpecialRequests string              `db:"special_requests"`
	model.Metadata
}

func (b Booking) Stay() Stay {
	return Stay{CheckIn: timezone.DateOf(b.CheckInDate), CheckOut: timezone.DateOf(b.CheckOutDate)}
}

func (b Booking) Nights() int {
	return b.Stay().Nights()
}

// DiscountAmount is the booking discount, zero when none was granted.
func (b Booking) DiscountAmount() decimal.Decimal {
	if !b.Discount.Valid {
		return decimal.Zero
	}

	return b.Discount.Decimal
}

// BookingDetail is a booking with its guest and room loaded. Guest or Room carry an
// empty ID when the referenced row is missing.
type BookingDetail struct {
	Booking
	Guest guestModel.Guest `db:"guest"`
	Room  roomModel.Room   `db:"room"`
}

func (d BookingDetail) HasGuest() bool {
	return d.Guest.ID != ""
}

func (d BookingDetail) HasRoom() bool {
	return d.Room.ID != ""
}

// Matches reports whether query identifies this booking by id, guest, room or identity
// number (case-insensitive substring), or by the guest's name.
func (d BookingDetail) Matches(query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return false
	}

	candidates := []string{d.ID, d.GuestID, d.RoomID, d.Room.Number, d.Guest.IDNumber, d.Guest.FullName()}
	for _, candidate := range candidates {
		if candidate != "" && strings.Contains(strings.ToLower(candidate), needle) {
			return true
		}
	}

	return d.Guest.MatchesName(needle)
}

// MatchesContact extends Matches with the guest's email and phone.
func (d BookingDetail) MatchesContact(query string) bool {
	if d.Matches(query) {
		return true
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return false
	}

	return (d.Guest.Email != "" && strings.Contains(strings.ToLower(d.Guest.Email), needle)) ||
		(d.Guest.Phone != "" && strings.Contains(d.Guest.Phone, needle))
}
