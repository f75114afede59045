package service_test

import (
	"context"
	"errors"
	"testing"

	"suitespot/config"
	"suitespot/infras/kafka"
	kafkaMocks "suitespot/infras/kafka/mocks"
	otelMocks "suitespot/infras/otel/mocks"
	pgMocks "suitespot/infras/postgres/mocks"
	billingMocks "suitespot/internal/domains/billing/mocks"
	billingModel "suitespot/internal/domains/billing/model"
	bookingMocks "suitespot/internal/domains/booking/mocks"
	bookingModel "suitespot/internal/domains/booking/model"
	bookingRepo "suitespot/internal/domains/booking/repository"
	frontdeskModel "suitespot/internal/domains/frontdesk/model"
	"suitespot/internal/domains/frontdesk/model/dto"
	"suitespot/internal/domains/frontdesk/service"
	guestModel "suitespot/internal/domains/guest/model"
	roomMocks "suitespot/internal/domains/room/mocks"
	roomModel "suitespot/internal/domains/room/model"
	"suitespot/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const stayTopic = "suitespot.stay"

type fixture struct {
	t           *testing.T
	bookingRepo *bookingMocks.MockBooking
	bookings    *bookingMocks.MockBookingService
	roomRepo    *roomMocks.MockRoom
	rooms       *roomMocks.MockRoomService
	billing     *billingMocks.MockBillingService
	publisher   *kafkaMocks.MockClient
	transactor  pgMocks.Transactor
	svc         service.FrontDesk
}

func newFixture(t *testing.T, force bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Hotel.ForceRoomOnConflict = force
	cfg.Kafka.Topics.Stay = stayTopic

	f := fixture{
		t:           t,
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		bookings:    bookingMocks.NewMockBookingService(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		rooms:       roomMocks.NewMockRoomService(ctrl),
		billing:     billingMocks.NewMockBillingService(ctrl),
		publisher:   kafkaMocks.NewMockClient(ctrl),
		transactor:  pgMocks.NewTransactor(),
	}

	f.svc = service.New(f.bookingRepo, f.bookings, f.roomRepo, f.rooms, f.billing, f.transactor, f.publisher, cfg, otelMocks.NewOtel())

	return f
}

func room101(status roomModel.Status) roomModel.Room {
	return roomModel.Room{ID: "room-101", Number: "101", Type: roomModel.TypeDouble, Price: decimal.NewFromInt(100), Status: status, Active: true}
}

func johnDoe() guestModel.Guest {
	return guestModel.Guest{ID: "guest-1", FirstName: "John", LastName: "Doe", Email: "john@example.com", IDNumber: "P123"}
}

func bookingFor(status bookingModel.Status) bookingModel.Booking {
	return bookingModel.Booking{
		ID:          "booking-1",
		GuestID:     "guest-1",
		RoomID:      "room-101",
		Status:      status,
		TotalAmount: decimal.NewFromInt(200),
	}
}

func detailFor(booking bookingModel.Booking, room roomModel.Room) bookingModel.BookingDetail {
	return bookingModel.BookingDetail{Booking: booking, Guest: johnDoe(), Room: room}
}

// expectLock wires the booking lock, detail load and room lock for booking-1.
func (f fixture) expectLock(booking bookingModel.Booking, room roomModel.Room) {
	f.bookingRepo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(booking, nil)
	f.bookingRepo.EXPECT().GetDetail(gomock.Any(), booking.ID).Return(detailFor(booking, room), nil)
	f.roomRepo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(room, nil)
}

func (f fixture) expectSetStatus(from, to bookingModel.Status) {
	f.bookings.EXPECT().SetStatus(gomock.Any(), gomock.Any(), to).
		DoAndReturn(func(_ context.Context, booking bookingModel.Booking, status bookingModel.Status) (bookingModel.Booking, error) {
			assert.Equal(f.t, from, booking.Status)
			booking.Status = status

			return booking, nil
		})
}

func (f fixture) expectRoomCacheDropped() {
	f.rooms.EXPECT().InvalidateCache(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rooms ...roomModel.Room) {
			require.Len(f.t, rooms, 1)
			assert.Equal(f.t, "room-101", rooms[0].ID)
			assert.Equal(f.t, "101", rooms[0].Number)
		})
}

func (f fixture) expectCommitted(eventType string) {
	f.bookings.EXPECT().InvalidateCache(gomock.Any(), "booking-1")
	f.expectRoomCacheDropped()
	f.publisher.EXPECT().SendMessages(gomock.Any(), stayTopic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(f.t, messages, 1)
			assert.Equal(f.t, "booking-1", messages[0].Key)

			event, ok := messages[0].Value.(frontdeskModel.StayEvent)
			require.True(f.t, ok)
			assert.Equal(f.t, eventType, event.Type)
			assert.Equal(f.t, "101", event.RoomNumber)

			return nil
		})
}

func TestFrontDesk_Room101Stay(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	// check in by room number with the guest's passport
	candidates := []bookingModel.BookingDetail{detailFor(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusAvailable))}
	f.bookingRepo.EXPECT().GetDetails(gomock.Any(), bookingRepo.DetailQuery{Statuses: bookingModel.CheckInStatuses()}).Return(candidates, nil)
	f.expectLock(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusAvailable))
	f.expectSetStatus(bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)
	f.rooms.EXPECT().Transition(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).Return(room101(roomModel.StatusOccupied), nil)
	f.expectCommitted(frontdeskModel.EventCheckedIn)

	in, err := f.svc.CheckIn(ctx, dto.CheckInRequest{Query: "101", IdentityNumber: "p123"})
	require.NoError(t, err)
	assert.Equal(t, "checked_in", in.Booking.Status)
	require.NotNil(t, in.Booking.Room)
	assert.Equal(t, "occupied", in.Booking.Room.Status)
	assert.False(t, in.RoomForced)
	assert.Nil(t, in.Bill)

	// check out bills the stay and frees the room
	f.expectLock(bookingFor(bookingModel.StatusCheckedIn), room101(roomModel.StatusOccupied))
	f.billing.EXPECT().GenerateFor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, detail bookingModel.BookingDetail) (billingModel.Bill, error) {
			bill := billingModel.Calculate(detail.ID, detail.TotalAmount, decimal.Zero, billingModel.DefaultRates())
			bill.ID = "bill-1"

			return bill, nil
		})
	f.expectSetStatus(bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut)
	f.rooms.EXPECT().Transition(gomock.Any(), gomock.Any(), roomModel.StatusAvailable).Return(room101(roomModel.StatusAvailable), nil)
	f.expectCommitted(frontdeskModel.EventCheckedOut)

	out, err := f.svc.CheckOut(ctx, dto.CheckOutRequest{BookingID: "booking-1"})
	require.NoError(t, err)
	assert.Equal(t, "checked_out", out.Booking.Status)
	assert.Equal(t, "available", out.Booking.Room.Status)
	require.NotNil(t, out.Bill)
	assert.Equal(t, "231", out.Bill.TotalAmount.String())
	assert.Equal(t, 2, f.transactor.Calls())
}

func TestFrontDesk_CheckIn(t *testing.T) {
	t.Run("identity mismatch changes nothing", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusAvailable))

		_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1", IdentityNumber: "X999"})
		assert.ErrorIs(t, err, failure.ErrIdentityMismatch)
	})

	t.Run("pending booking is confirmed first", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusPending), room101(roomModel.StatusReserved))
		gomock.InOrder(
			f.bookings.EXPECT().SetStatus(gomock.Any(), gomock.Any(), bookingModel.StatusConfirmed).
				DoAndReturn(func(_ context.Context, booking bookingModel.Booking, status bookingModel.Status) (bookingModel.Booking, error) {
					booking.Status = status

					return booking, nil
				}),
			f.bookings.EXPECT().SetStatus(gomock.Any(), gomock.Any(), bookingModel.StatusCheckedIn).
				DoAndReturn(func(_ context.Context, booking bookingModel.Booking, status bookingModel.Status) (bookingModel.Booking, error) {
					assert.Equal(t, bookingModel.StatusConfirmed, booking.Status)
					booking.Status = status

					return booking, nil
				}),
		)
		f.rooms.EXPECT().Transition(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).Return(room101(roomModel.StatusOccupied), nil)
		f.expectCommitted(frontdeskModel.EventCheckedIn)

		res, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1"})
		require.NoError(t, err)
		assert.Equal(t, "checked_in", res.Booking.Status)
	})

	t.Run("room already occupied is left alone", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusOccupied))
		f.expectSetStatus(bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)
		f.expectCommitted(frontdeskModel.EventCheckedIn)

		res, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1"})
		require.NoError(t, err)
		assert.False(t, res.RoomForced)
		assert.Equal(t, "occupied", res.Booking.Room.Status)
	})

	t.Run("rejected room move is forced", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusMaintenance))
		f.expectSetStatus(bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)
		f.rooms.EXPECT().Transition(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).
			Return(room101(roomModel.StatusMaintenance), failure.InvalidTransition("cannot change room status from maintenance to occupied"))
		f.rooms.EXPECT().ForceTransition(gomock.Any(), gomock.Any(), roomModel.StatusOccupied, "check-in fallback from maintenance").
			Return(room101(roomModel.StatusOccupied), nil)
		f.expectCommitted(frontdeskModel.EventCheckedIn)

		res, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1"})
		require.NoError(t, err)
		assert.True(t, res.RoomForced)
		assert.Equal(t, "occupied", res.Booking.Room.Status)
	})

	t.Run("rejected room move fails without the fallback", func(t *testing.T) {
		f := newFixture(t, false)

		f.expectLock(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusMaintenance))
		f.expectSetStatus(bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)
		f.rooms.EXPECT().Transition(gomock.Any(), gomock.Any(), roomModel.StatusOccupied).
			Return(room101(roomModel.StatusMaintenance), failure.InvalidTransition("cannot change room status from maintenance to occupied"))

		_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1"})
		assert.ErrorIs(t, err, failure.ErrInvalidTransition)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusCancelled), room101(roomModel.StatusAvailable))

		_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1"})
		assert.ErrorIs(t, err, failure.ErrInvalidStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t, true)

		f.bookingRepo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)

		_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-404"})
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})

	t.Run("guest removed from under the booking", func(t *testing.T) {
		f := newFixture(t, true)

		booking := bookingFor(bookingModel.StatusConfirmed)
		f.bookingRepo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.bookingRepo.EXPECT().GetDetail(gomock.Any(), booking.ID).
			Return(bookingModel.BookingDetail{Booking: booking, Room: room101(roomModel.StatusAvailable)}, nil)

		_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{BookingID: "booking-1"})
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})

	t.Run("ambiguous query", func(t *testing.T) {
		f := newFixture(t, true)

		other := bookingFor(bookingModel.StatusPending)
		other.ID = "booking-2"
		f.bookingRepo.EXPECT().GetDetails(gomock.Any(), gomock.Any()).Return([]bookingModel.BookingDetail{
			detailFor(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusAvailable)),
			detailFor(other, roomModel.Room{ID: "room-202", Number: "202"}),
		}, nil)

		_, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{Query: "doe"})
		assert.ErrorIs(t, err, failure.ErrInvalidArgument)
	})
}

func TestFrontDesk_CheckOut(t *testing.T) {
	t.Run("booking not checked in", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusConfirmed), room101(roomModel.StatusAvailable))

		_, err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{BookingID: "booking-1"})
		assert.ErrorIs(t, err, failure.ErrInvalidStatus)
	})

	t.Run("billing failure aborts", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusCheckedIn), room101(roomModel.StatusOccupied))
		f.billing.EXPECT().GenerateFor(gomock.Any(), gomock.Any()).
			Return(billingModel.Bill{}, failure.MissingChargeBasis("booking has no room to charge"))

		_, err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{BookingID: "booking-1"})
		assert.ErrorIs(t, err, failure.ErrMissingChargeBasis)
	})

	t.Run("publish failure does not fail the stay", func(t *testing.T) {
		f := newFixture(t, true)

		f.expectLock(bookingFor(bookingModel.StatusCheckedIn), room101(roomModel.StatusOccupied))
		f.billing.EXPECT().GenerateFor(gomock.Any(), gomock.Any()).Return(billingModel.Bill{ID: "bill-1"}, nil)
		f.expectSetStatus(bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut)
		f.rooms.EXPECT().Transition(gomock.Any(), gomock.Any(), roomModel.StatusAvailable).Return(room101(roomModel.StatusAvailable), nil)
		f.bookings.EXPECT().InvalidateCache(gomock.Any(), "booking-1")
		f.expectRoomCacheDropped()
		f.publisher.EXPECT().SendMessages(gomock.Any(), stayTopic, gomock.Any()).Return(errors.New("broker down"))

		res, err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{BookingID: "booking-1"})
		require.NoError(t, err)
		assert.Equal(t, "bill-1", res.Bill.ID)
	})
}

func TestFrontDesk_SearchForCheckOut(t *testing.T) {
	f := newFixture(t, true)

	f.bookingRepo.EXPECT().GetDetails(gomock.Any(), bookingRepo.DetailQuery{Statuses: []bookingModel.Status{bookingModel.StatusCheckedIn}}).
		Return([]bookingModel.BookingDetail{detailFor(bookingFor(bookingModel.StatusCheckedIn), room101(roomModel.StatusOccupied))}, nil)

	res, err := f.svc.SearchForCheckOut(context.Background(), "john")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "booking-1", res[0].ID)
}

func TestFrontDesk_Dashboard(t *testing.T) {
	f := newFixture(t, true)

	f.roomRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[roomModel.Status]int{
		roomModel.StatusAvailable:   3,
		roomModel.StatusOccupied:    2,
		roomModel.StatusMaintenance: 1,
	}, nil)
	f.bookingRepo.EXPECT().GetDetails(gomock.Any(), bookingRepo.DetailQuery{Limit: frontdeskModel.RecentBookingsLimit}).
		Return([]bookingModel.BookingDetail{detailFor(bookingFor(bookingModel.StatusCheckedIn), room101(roomModel.StatusOccupied))}, nil)

	res, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, res.TotalRooms)
	assert.Equal(t, 2, res.OccupiedRooms)
	assert.Equal(t, 3, res.AvailableRooms)
	assert.Equal(t, 0, res.RoomsByStatus["reserved"])
	assert.Len(t, res.RecentBookings, 1)
}
