package dto

import (
	billDto "suitespot/internal/domains/billing/model/dto"
	bookingModel "suitespot/internal/domains/booking/model"
	bookingDto "suitespot/internal/domains/booking/model/dto"
	roomModel "suitespot/internal/domains/room/model"
)

// CheckInRequest names the booking directly or through a search query. IdentityNumber,
// when given, must match the guest's document.
type CheckInRequest struct {
	BookingID      string `json:"booking_id"      validate:"omitempty,uuid"`
	Query          string `json:"query"           validate:"omitempty,max=100"`
	IdentityNumber string `json:"identity_number" validate:"omitempty,max=50"`
}

type CheckOutRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type SearchRequest struct {
	Query string `json:"query" validate:"required,max=100"`
}

type StayResponse struct {
	Booking    bookingDto.BookingDetailResponse `json:"booking"`
	Bill       *billDto.BillResponse            `json:"bill,omitempty"`
	RoomForced bool                             `json:"room_forced"`
}

type DashboardResponse struct {
	TotalRooms     int                                `json:"total_rooms"`
	OccupiedRooms  int                                `json:"occupied_rooms"`
	AvailableRooms int                                `json:"available_rooms"`
	CurrentGuests  int                                `json:"current_guests"`
	RoomsByStatus  map[string]int                     `json:"rooms_by_status"`
	RecentBookings []bookingDto.BookingDetailResponse `json:"recent_bookings"`
}

func (r *DashboardResponse) FromModels(counts map[roomModel.Status]int, recent []bookingModel.BookingDetail) {
	r.RoomsByStatus = make(map[string]int, len(roomModel.Statuses()))

	for _, status := range roomModel.Statuses() {
		r.RoomsByStatus[string(status)] = counts[status]
		r.TotalRooms += counts[status]
	}

	r.OccupiedRooms = counts[roomModel.StatusOccupied]
	r.AvailableRooms = counts[roomModel.StatusAvailable]
	r.CurrentGuests = r.OccupiedRooms
	r.RecentBookings = bookingDto.FromDetails(recent)
}
