package dto_test

import (
	"testing"
	"time"

	"suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/booking/model/dto"
	"suitespot/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBookingRequest_Stay(t *testing.T) {
	current := model.Stay{
		CheckIn:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
	}

	checkIn := "2026-02-27"
	req := dto.UpdateBookingRequest{CheckInDate: &checkIn}

	assert.True(t, req.RepricingNeeded())

	stay, err := req.Stay(current)
	require.NoError(t, err)
	assert.Equal(t, 4, stay.Nights())

	late := "2026-03-04"
	req = dto.UpdateBookingRequest{CheckInDate: &late}

	_, err = req.Stay(current)
	assert.ErrorIs(t, err, failure.ErrInvalidArgument)

	assert.False(t, (&dto.UpdateBookingRequest{}).RepricingNeeded())
}

func TestCreateBookingRequest_Stay(t *testing.T) {
	req := dto.CreateBookingRequest{CheckInDate: "2026-03-01", CheckOutDate: "not-a-date"}

	_, err := req.Stay()
	assert.ErrorIs(t, err, failure.ErrInvalidArgument)
}

func TestBookingFilter(t *testing.T) {
	group := dto.BookingFilter{Status: "confirmed", RoomID: "room-1"}.ToFilterGroup()
	assert.Len(t, group.Filters, 2)

	assert.Empty(t, dto.BookingFilter{}.ToFilterGroup().Filters)
	assert.Equal(t, "confirmed,,room-1", dto.BookingFilter{Status: "confirmed", RoomID: "room-1"}.CacheKey())
}

func TestBookingDetailResponse_MissingRelations(t *testing.T) {
	var res dto.BookingDetailResponse

	res.FromModel(model.BookingDetail{Booking: model.Booking{ID: "b-1", Status: model.StatusPending}})

	assert.Equal(t, "b-1", res.ID)
	assert.Nil(t, res.Guest)
	assert.Nil(t, res.Room)
}
