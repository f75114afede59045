package model_test

import (
	"testing"

	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/frontdesk/model"
	guestModel "suitespot/internal/domains/guest/model"
	roomModel "suitespot/internal/domains/room/model"
	"suitespot/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details() []bookingModel.BookingDetail {
	return []bookingModel.BookingDetail{
		{
			Booking: bookingModel.Booking{ID: "b-1", Status: bookingModel.StatusConfirmed},
			Guest:   guestModel.Guest{ID: "g-1", FirstName: "John", LastName: "Doe", IDNumber: "P123"},
			Room:    roomModel.Room{ID: "r-1", Number: "101"},
		},
		{
			Booking: bookingModel.Booking{ID: "b-2", Status: bookingModel.StatusPending},
			Guest:   guestModel.Guest{ID: "g-2", FirstName: "Jane", LastName: "Doe", IDNumber: "P456"},
			Room:    roomModel.Room{ID: "r-2", Number: "202"},
		},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantID  string
		wantErr bool
	}{
		{name: "room number", query: "101", wantID: "b-1"},
		{name: "identity number", query: "p456", wantID: "b-2"},
		{name: "full name", query: "jane doe", wantID: "b-2"},
		{name: "ambiguous surname", query: "doe", wantErr: true},
		{name: "no match", query: "smith", wantErr: true},
		{name: "blank", query: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Resolve(details(), tt.query)
			if tt.wantErr {
				assert.ErrorIs(t, err, failure.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestSearch(t *testing.T) {
	assert.Len(t, model.Search(details(), "doe"), 2)
	assert.Empty(t, model.Search(details(), "303"))
}
