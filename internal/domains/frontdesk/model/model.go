package model

import (
	"fmt"
	"strings"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/shared/failure"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventCheckedIn  = "booking.checked_in"
	EventCheckedOut = "booking.checked_out"

	// RecentBookingsLimit is how many bookings the dashboard lists.
	RecentBookingsLimit = 5
)

// StayEvent is published after a check-in or check-out commits.
type StayEvent struct {
	Type       string           `json:"type"`
	BookingID  string           `json:"booking_id"`
	GuestID    string           `json:"guest_id"`
	RoomID     string           `json:"room_id"`
	RoomNumber string           `json:"room_number"`
	RoomForced bool             `json:"room_forced"`
	BillID     string           `json:"bill_id,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	Operator   string           `json:"operator"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Search keeps the bookings that query identifies.
func Search(details []bookingModel.BookingDetail, query string) []bookingModel.BookingDetail {
	matched := make([]bookingModel.BookingDetail, 0, len(details))

	for _, detail := range details {
		if detail.Matches(query) {
			matched = append(matched, detail)
		}
	}

	return matched
}

// Resolve picks the single booking query identifies among details.
func Resolve(details []bookingModel.BookingDetail, query string) (bookingModel.BookingDetail, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return bookingModel.BookingDetail{}, failure.BadRequestFromString("a booking id or a search query is required") // nolint:wrapcheck
	}

	matched := Search(details, query)

	switch len(matched) {
	case 0:
		return bookingModel.BookingDetail{}, failure.BadRequestFromString( // nolint:wrapcheck
			fmt.Sprintf("no booking matches %q, search by booking id, room number, identity number or guest name", query))
	case 1:
		return matched[0], nil
	default:
		return bookingModel.BookingDetail{}, failure.BadRequestFromString( // nolint:wrapcheck
			fmt.Sprintf("%d bookings match %q, pick one by booking id", len(matched), query))
	}
}
