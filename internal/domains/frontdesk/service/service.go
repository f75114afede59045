package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=FrontDesk=MockFrontDeskService

import (
	"context"
	"errors"
	"fmt"
	"suitespot/config"
	"suitespot/infras/kafka"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	billingModel "suitespot/internal/domains/billing/model"
	billDto "suitespot/internal/domains/billing/model/dto"
	billingService "suitespot/internal/domains/billing/service"
	bookingModel "suitespot/internal/domains/booking/model"
	bookingDto "suitespot/internal/domains/booking/model/dto"
	bookingRepo "suitespot/internal/domains/booking/repository"
	bookingService "suitespot/internal/domains/booking/service"
	"suitespot/internal/domains/frontdesk/model"
	"suitespot/internal/domains/frontdesk/model/dto"
	roomModel "suitespot/internal/domains/room/model"
	roomRepo "suitespot/internal/domains/room/repository"
	roomService "suitespot/internal/domains/room/service"
	"suitespot/shared"
	"suitespot/shared/constant"
	"suitespot/shared/failure"
	"suitespot/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	reasonCheckIn  = "check-in fallback"
	reasonCheckOut = "check-out fallback"
)

type FrontDesk interface {
	SearchForCheckIn(ctx context.Context, query string) ([]bookingDto.BookingDetailResponse, error)
	SearchForCheckOut(ctx context.Context, query string) ([]bookingDto.BookingDetailResponse, error)
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.StayResponse, error)
	CheckOut(ctx context.Context, req dto.CheckOutRequest) (dto.StayResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	bookings    bookingService.Booking
	roomRepo    roomRepo.Room
	rooms       roomService.Room
	billing     billingService.Billing
	transactor  postgres.Transactor
	publisher   kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	bookings bookingService.Booking,
	roomRepo roomRepo.Room,
	rooms roomService.Room,
	billing billingService.Billing,
	transactor postgres.Transactor,
	publisher kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) FrontDesk {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		bookings:    bookings,
		roomRepo:    roomRepo,
		rooms:       rooms,
		billing:     billing,
		transactor:  transactor,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// stay is the state a check-in or check-out leaves behind.
type stay struct {
	detail bookingModel.BookingDetail
	bill   *billingModel.Bill
	forced bool
}

func (s *serviceImpl) SearchForCheckIn(ctx context.Context, query string) (res []bookingDto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.SearchForCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.search(ctx, query, bookingModel.CheckInStatuses()...)
}

func (s *serviceImpl) SearchForCheckOut(ctx context.Context, query string) (res []bookingDto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.SearchForCheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.search(ctx, query, bookingModel.StatusCheckedIn)
}

// CheckIn moves a Pending or Confirmed booking to CheckedIn and occupies its room in one transaction.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	var outcome stay

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		bookingID, err := s.resolve(ctx, req)
		if err != nil {
			return err
		}

		booking, detail, room, err := s.lock(ctx, bookingID)
		if err != nil {
			return err
		}

		if req.IdentityNumber != constant.Empty && !detail.Guest.MatchesIdentity(req.IdentityNumber) {
			log.Warn().Str("booking_id", booking.ID).Msg("identity number does not match the booked guest")

			return failure.IdentityMismatch("identity number does not match the booked guest") // nolint:wrapcheck
		}

		switch booking.Status {
		case bookingModel.StatusPending:
			if booking, err = s.bookings.SetStatus(ctx, booking, bookingModel.StatusConfirmed); err != nil {
				return fmt.Errorf("failed to confirm booking: %w", err)
			}
		case bookingModel.StatusConfirmed:
			// ready
		default:
			return failure.InvalidStatus(fmt.Sprintf("booking is %s and cannot be checked in", booking.Status)) // nolint:wrapcheck
		}

		if booking, err = s.bookings.SetStatus(ctx, booking, bookingModel.StatusCheckedIn); err != nil {
			return fmt.Errorf("failed to check in booking: %w", err)
		}

		room, forced, err := s.moveRoom(ctx, room, roomModel.StatusOccupied, reasonCheckIn)
		if err != nil {
			return err
		}

		detail.Booking = booking
		detail.Room = room
		outcome = stay{detail: detail, forced: forced}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.afterCommit(ctx, model.EventCheckedIn, outcome)

	return outcome.response(), nil
}

// CheckOut bills a CheckedIn booking, closes it and frees its room in one transaction.
func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	var outcome stay

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		booking, detail, room, err := s.lock(ctx, req.BookingID)
		if err != nil {
			return err
		}

		if booking.Status != bookingModel.StatusCheckedIn {
			return failure.InvalidStatus(fmt.Sprintf("booking is %s and cannot be checked out", booking.Status)) // nolint:wrapcheck
		}

		detail.Booking = booking
		detail.Room = room

		bill, err := s.billing.GenerateFor(ctx, detail)
		if err != nil {
			return fmt.Errorf("failed to generate bill: %w", err)
		}

		if booking, err = s.bookings.SetStatus(ctx, booking, bookingModel.StatusCheckedOut); err != nil {
			return fmt.Errorf("failed to check out booking: %w", err)
		}

		room, forced, err := s.moveRoom(ctx, room, roomModel.StatusAvailable, reasonCheckOut)
		if err != nil {
			return err
		}

		detail.Booking = booking
		detail.Room = room
		outcome = stay{detail: detail, bill: &bill, forced: forced}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.afterCommit(ctx, model.EventCheckedOut, outcome)

	return outcome.response(), nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".frontdesk.Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err := s.roomRepo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms by status")

		return res, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	recent, err := s.bookingRepo.GetDetails(ctx, bookingRepo.DetailQuery{Limit: model.RecentBookingsLimit})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.FromModels(counts, recent)

	return res, nil
}

func (s *serviceImpl) search(ctx context.Context, query string, statuses ...bookingModel.Status) ([]bookingDto.BookingDetailResponse, error) {
	details, err := s.bookingRepo.GetDetails(ctx, bookingRepo.DetailQuery{Statuses: statuses})
	if err != nil {
		log.Error().Err(err).Msg("failed to search bookings")

		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}

	return bookingDto.FromDetails(model.Search(details, query)), nil
}

// resolve returns the requested booking id, or the id of the single check-in candidate
// the query matches.
func (s *serviceImpl) resolve(ctx context.Context, req dto.CheckInRequest) (string, error) {
	if req.BookingID != constant.Empty {
		return req.BookingID, nil
	}

	details, err := s.bookingRepo.GetDetails(ctx, bookingRepo.DetailQuery{Statuses: bookingModel.CheckInStatuses()})
	if err != nil {
		log.Error().Err(err).Msg("failed to search bookings")

		return constant.Empty, fmt.Errorf("failed to search bookings: %w", err)
	}

	match, err := model.Resolve(details, req.Query)
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	return match.ID, nil
}

// lock takes the booking row and then its room row FOR UPDATE and loads the guest.
func (s *serviceImpl) lock(ctx context.Context, bookingID string) (bookingModel.Booking, bookingModel.BookingDetail, roomModel.Room, error) {
	var (
		detail bookingModel.BookingDetail
		room   roomModel.Room
	)

	booking, err := s.bookingRepo.GetForUpdate(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to lock booking")

		return booking, detail, room, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, detail, room, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	detail, err = s.bookingRepo.GetDetail(ctx, booking.ID)
	if err != nil {
		return booking, detail, room, fmt.Errorf("failed to get booking detail: %w", err)
	}

	if !detail.HasGuest() {
		return booking, detail, room, failure.NotFound(fmt.Sprintf("guest %s of booking %s no longer exists", booking.GuestID, booking.ID)) // nolint:wrapcheck
	}

	if !detail.HasRoom() {
		return booking, detail, room, failure.NotFound(fmt.Sprintf("room %s of booking %s no longer exists", booking.RoomID, booking.ID)) // nolint:wrapcheck
	}

	room, err = s.roomRepo.GetForUpdate(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", booking.RoomID).Msg("failed to lock room")

		return booking, detail, room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return booking, detail, room, failure.NotFound(fmt.Sprintf("room %s of booking %s no longer exists", booking.RoomID, booking.ID)) // nolint:wrapcheck
	}

	return booking, detail, room, nil
}

// moveRoom puts room in target. A room already there is left alone. A transition the
// table rejects is forced when the fallback is enabled.
func (s *serviceImpl) moveRoom(ctx context.Context, room roomModel.Room, target roomModel.Status, reason string) (roomModel.Room, bool, error) {
	if room.Status == target {
		log.Info().Str("room_id", room.ID).Str("status", string(target)).Msg("room already in target status")

		return room, false, nil
	}

	updated, err := s.rooms.Transition(ctx, room, target)
	if err == nil {
		return updated, false, nil
	}

	if !errors.Is(err, failure.ErrInvalidTransition) || !s.cfg.Hotel.ForceRoomOnConflict {
		return room, false, err //nolint:wrapcheck
	}

	updated, err = s.rooms.ForceTransition(ctx, room, target, fmt.Sprintf("%s from %s", reason, room.Status))
	if err != nil {
		return room, false, err //nolint:wrapcheck
	}

	return updated, true, nil
}

// afterCommit refreshes caches and publishes the stay event. Both are best effort.
func (s *serviceImpl) afterCommit(ctx context.Context, eventType string, outcome stay) {
	s.bookings.InvalidateCache(ctx, outcome.detail.ID)
	s.rooms.InvalidateCache(ctx, outcome.detail.Room)

	event := model.StayEvent{
		Type:       eventType,
		BookingID:  outcome.detail.ID,
		GuestID:    outcome.detail.GuestID,
		RoomID:     outcome.detail.Room.ID,
		RoomNumber: outcome.detail.Room.Number,
		RoomForced: outcome.forced,
		Operator:   shared.Operator(ctx),
		OccurredAt: timezone.Now(),
	}

	if outcome.bill != nil {
		total := outcome.bill.TotalAmount
		event.BillID = outcome.bill.ID
		event.Total = &total
	}

	message := kafka.Message{Key: outcome.detail.ID, Value: event}

	if err := s.publisher.SendMessages(ctx, s.cfg.Kafka.Topics.Stay, message); err != nil {
		log.Warn().Err(err).Str("booking_id", outcome.detail.ID).Str("event", eventType).Msg("failed to publish stay event")
	}
}

func (o stay) response() dto.StayResponse {
	res := dto.StayResponse{RoomForced: o.forced}
	res.Booking.FromModel(o.detail)

	if o.bill != nil {
		res.Bill = &billDto.BillResponse{}
		res.Bill.FromModel(*o.bill)
	}

	return res
}
