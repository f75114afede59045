package model_test

import (
	"errors"
	"testing"
	"time"

	guestModel "suitespot/internal/domains/guest/model"
	"suitespot/internal/domains/booking/model"
	roomModel "suitespot/internal/domains/room/model"
	"suitespot/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return d
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusPending:   {model.StatusConfirmed, model.StatusCheckedIn, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusCheckedIn, model.StatusCancelled},
		model.StatusCheckedIn: {model.StatusCheckedOut, model.StatusCancelled},
	}

	for _, from := range model.Statuses() {
		for _, to := range model.Statuses() {
			want := false

			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}

			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				got, err := from.TransitionTo(to)
				if want {
					require.NoError(t, err)
					assert.Equal(t, to, got)

					return
				}

				assert.True(t, errors.Is(err, failure.ErrInvalidStatus))
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, model.StatusCheckedOut.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusCheckedIn.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := model.ParseStatus("CHECKED_IN")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedIn, status)

	_, err = model.ParseStatus("no_show")
	assert.True(t, errors.Is(err, failure.ErrInvalidArgument))
}

func TestNewStay(t *testing.T) {
	stay, err := model.NewStay(date("2024-03-10"), date("2024-03-12"))
	require.NoError(t, err)
	assert.Equal(t, 2, stay.Nights())

	_, err = model.NewStay(date("2024-03-10"), date("2024-03-10"))
	assert.True(t, errors.Is(err, failure.ErrInvalidArgument))

	_, err = model.NewStay(date("2024-03-12"), date("2024-03-10"))
	assert.True(t, errors.Is(err, failure.ErrInvalidArgument))
}

func TestStay_Overlaps(t *testing.T) {
	existing := model.Stay{CheckIn: date("2024-03-10"), CheckOut: date("2024-03-12")}

	tests := []struct {
		name string
		stay model.Stay
		want bool
	}{
		{name: "ends on existing start", stay: model.Stay{CheckIn: date("2024-03-08"), CheckOut: date("2024-03-10")}, want: false},
		{name: "starts on existing end", stay: model.Stay{CheckIn: date("2024-03-12"), CheckOut: date("2024-03-14")}, want: false},
		{name: "entirely before", stay: model.Stay{CheckIn: date("2024-03-01"), CheckOut: date("2024-03-03")}, want: false},
		{name: "overlaps start", stay: model.Stay{CheckIn: date("2024-03-09"), CheckOut: date("2024-03-11")}, want: true},
		{name: "overlaps end", stay: model.Stay{CheckIn: date("2024-03-11"), CheckOut: date("2024-03-13")}, want: true},
		{name: "contains existing", stay: model.Stay{CheckIn: date("2024-03-09"), CheckOut: date("2024-03-13")}, want: true},
		{name: "same range", stay: existing, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stay.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(tt.stay))
		})
	}
}

func TestTotalFor(t *testing.T) {
	assert.True(t, model.TotalFor(decimal.NewFromInt(100), 2).Equal(decimal.NewFromInt(200)))
	assert.True(t, model.TotalFor(decimal.RequireFromString("99.99"), 3).Equal(decimal.RequireFromString("299.97")))
	assert.True(t, model.TotalFor(decimal.NewFromInt(100), 0).IsZero())
}

func TestBooking_DiscountAmount(t *testing.T) {
	assert.True(t, model.Booking{}.DiscountAmount().IsZero())

	discounted := model.Booking{Discount: decimal.NewNullDecimal(decimal.NewFromInt(15))}
	assert.True(t, discounted.DiscountAmount().Equal(decimal.NewFromInt(15)))
}

func TestBookingDetail_Matches(t *testing.T) {
	detail := model.BookingDetail{
		Booking: model.Booking{ID: "7f1c-booking", GuestID: "g-42", RoomID: "r-9"},
		Guest:   guestModel.Guest{ID: "g-42", FirstName: "Ada", LastName: "Lovelace", IDNumber: "AB123"},
		Room:    roomModel.Room{ID: "r-9", Number: "101"},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{query: "7F1C", want: true},
		{query: "g-42", want: true},
		{query: "r-9", want: true},
		{query: "101", want: true},
		{query: "ab12", want: true},
		{query: "ada lovelace", want: true},
		{query: "lovelace ada", want: true},
		{query: "grace", want: false},
		{query: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, detail.Matches(tt.query))
		})
	}

	assert.True(t, detail.HasGuest())
	assert.False(t, model.BookingDetail{}.HasRoom())
}

func TestBookingDetail_MatchesContact(t *testing.T) {
	detail := model.BookingDetail{
		Booking: model.Booking{ID: "b-1"},
		Guest:   guestModel.Guest{ID: "g-1", FirstName: "Ada", Email: "ada@example.com", Phone: "+44 20 7946"},
	}

	assert.True(t, detail.MatchesContact("EXAMPLE.com"))
	assert.True(t, detail.MatchesContact("7946"))
	assert.True(t, detail.MatchesContact("ada"))
	assert.False(t, detail.MatchesContact("grace@example.org"))
	assert.False(t, detail.MatchesContact(" "))
}
