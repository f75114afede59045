package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"strings"
	"suitespot/config"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/booking/model/dto"
	"suitespot/internal/domains/booking/repository"
	guestModel "suitespot/internal/domains/guest/model"
	guestRepo "suitespot/internal/domains/guest/repository"
	roomModel "suitespot/internal/domains/room/model"
	roomRepo "suitespot/internal/domains/room/repository"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"
	"suitespot/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking   = "booking:get"
	cacheCountBooking = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetWithRelations(ctx context.Context, id string) (dto.BookingDetailResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, filter dto.BookingFilter) (int, error)
	GetByStatuses(ctx context.Context, statuses ...model.Status) ([]dto.BookingDetailResponse, error)
	GetByGuest(ctx context.Context, guestID string) ([]dto.BookingDetailResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (dto.BookingResponse, error)
	SetStatus(ctx context.Context, booking model.Booking, status model.Status) (model.Booking, error)
	Delete(ctx context.Context, id string) error
	SearchAvailableRooms(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailableRoomsResponse, error)
	Search(ctx context.Context, req dto.SearchRequest) ([]dto.BookingDetailResponse, error)
	InvalidateCache(ctx context.Context, ids ...string)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	guestRepo  guestRepo.Guest
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		guestRepo:  guestRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := req.Stay()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		if err := s.requireGuest(ctx, req.GuestID); err != nil {
			return err
		}

		room, err := s.lockRoom(ctx, req.RoomID)
		if err != nil {
			return err
		}

		if err := requireActive(room); err != nil {
			return err
		}

		if err := s.requireFree(ctx, room, stay, constant.Empty); err != nil {
			return err
		}

		booking = req.ToModel(shared.Operator(ctx), stay, room)

		if err := s.repo.Insert(ctx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.InvalidateCache(ctx)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetWithRelations(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetWithRelations")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking detail")

		return res, fmt.Errorf("failed to get booking detail: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.EntityName, params, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter dto.BookingFilter) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCountBooking, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save booking count to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetByStatuses(ctx context.Context, statuses ...model.Status) (res []dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByStatuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	details, err := s.repo.GetDetails(ctx, repository.DetailQuery{Statuses: statuses})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings by status")

		return nil, fmt.Errorf("failed to get bookings by status: %w", err)
	}

	return dto.FromDetails(details), nil
}

func (s *serviceImpl) GetByGuest(ctx context.Context, guestID string) (res []dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireGuest(ctx, guestID); err != nil {
		return nil, err
	}

	details, err := s.repo.GetDetails(ctx, repository.DetailQuery{GuestID: guestID})
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest bookings")

		return nil, fmt.Errorf("failed to get guest bookings: %w", err)
	}

	return dto.FromDetails(details), nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusConfirmed)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.transition(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.lock(ctx, id)
		if err != nil {
			return err
		}

		if current.Status.IsTerminal() {
			return failure.InvalidStatus(fmt.Sprintf("booking is %s and can no longer be changed", current.Status)) // nolint:wrapcheck
		}

		fields, updated, err := s.changes(ctx, req, current)
		if err != nil {
			return err
		}

		if _, err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		booking = updated

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.InvalidateCache(ctx, id)

	res.FromModel(booking)

	return res, nil
}

// UpdateStatus writes status on the booking without consulting the lifecycle table.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", status)) // nolint:wrapcheck
	}

	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.lock(ctx, id)
		if err != nil {
			return err
		}

		booking, err = s.SetStatus(ctx, current, status)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.InvalidateCache(ctx, id)

	res.FromModel(booking)

	return res, nil
}

// SetStatus persists status for a booking the caller already holds. Callers are expected
// to have checked the transition.
func (s *serviceImpl) SetStatus(ctx context.Context, booking model.Booking, status model.Status) (model.Booking, error) {
	if booking.Status == status {
		return booking, nil
	}

	operator := shared.Operator(ctx)
	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: operator,
	}

	affected, err := s.repo.Update(ctx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking status")

		return booking, fmt.Errorf("failed to update booking status: %w", err)
	}

	if affected == 0 {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	log.Info().
		Str("booking_id", booking.ID).
		Str("from", string(booking.Status)).
		Str("to", string(status)).
		Str("operator", operator).
		Msg("booking status changed")

	booking.Status = status
	booking.Touch(operator, now)

	return booking, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	billed, err := s.repo.HasBill(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check booking bill: %w", err)
	}

	if billed {
		return failure.InvalidStatus("booking has a bill and cannot be deleted") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.InvalidateCache(ctx, id)

	return nil
}

// SearchAvailableRooms lists bookable rooms for the requested stay. An inverted or empty
// range yields no rooms.
func (s *serviceImpl) SearchAvailableRooms(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SearchAvailableRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	stay, err := req.Stay()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !stay.Valid() {
		res.FromModels(stay, nil)

		return res, nil
	}

	var roomType roomModel.Type

	if req.RoomType != constant.Empty {
		if roomType, err = roomModel.ParseType(req.RoomType); err != nil {
			return res, err //nolint:wrapcheck
		}
	}

	rooms, err := s.repo.AvailableRooms(ctx, stay, roomType)
	if err != nil {
		log.Error().Err(err).Msg("failed to search available rooms")

		return res, fmt.Errorf("failed to search available rooms: %w", err)
	}

	res.FromModels(stay, rooms)

	return res, nil
}

// Search returns bookings matching free text on the booking, its guest (including contact
// details) or its room, restricted to stays inside the requested window.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res []dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	from, to := req.Window()

	details, err := s.repo.GetDetails(ctx, repository.DetailQuery{
		Statuses:    req.BookingStatuses(),
		CheckInFrom: from,
		CheckOutTo:  to,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to search bookings")

		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}

	if strings.TrimSpace(req.Query) == constant.Empty {
		return dto.FromDetails(details), nil
	}

	matched := make([]model.BookingDetail, 0, len(details))

	for _, detail := range details {
		if detail.MatchesContact(req.Query) {
			matched = append(matched, detail)
		}
	}

	return dto.FromDetails(matched), nil
}

// InvalidateCache drops cached reads of the given bookings and every booking listing.
func (s *serviceImpl) InvalidateCache(ctx context.Context, ids ...string) {
	keys := []string{
		shared.BuildCacheKey(model.EntityName, "list", constant.Asterix),
		shared.BuildCacheKey(cacheCountBooking, constant.Asterix),
	}

	for _, id := range ids {
		keys = append(keys, shared.BuildCacheKey(cacheGetBooking, id))
	}

	shared.InvalidateCaches(ctx, s.cache, keys...)
}

func (s *serviceImpl) transition(ctx context.Context, id string, status model.Status) (res dto.BookingResponse, err error) {
	var booking model.Booking

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.lock(ctx, id)
		if err != nil {
			return err
		}

		if _, err := current.Status.TransitionTo(status); err != nil {
			return err //nolint:wrapcheck
		}

		booking, err = s.SetStatus(ctx, current, status)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.InvalidateCache(ctx, id)

	res.FromModel(booking)

	return res, nil
}

// changes turns req into an update of current, repricing the stay when the room or the
// dates move.
func (s *serviceImpl) changes(ctx context.Context, req dto.UpdateBookingRequest, current model.Booking) (map[string]any, model.Booking, error) {
	updated := current
	fields := map[string]any{}

	if req.GuestID != nil && *req.GuestID != current.GuestID {
		if err := s.requireGuest(ctx, *req.GuestID); err != nil {
			return nil, current, err
		}

		updated.GuestID = *req.GuestID
		fields[model.FieldGuestID] = updated.GuestID
	}

	if req.RepricingNeeded() {
		stay, err := req.Stay(current.Stay())
		if err != nil {
			return nil, current, err //nolint:wrapcheck
		}

		roomID := current.RoomID
		if req.RoomID != nil {
			roomID = *req.RoomID
		}

		room, err := s.lockRoom(ctx, roomID)
		if err != nil {
			return nil, current, err
		}

		// The booked room may have been retired since; only a move needs an active room.
		if roomID != current.RoomID {
			if err := requireActive(room); err != nil {
				return nil, current, err
			}
		}

		if err := s.requireFree(ctx, room, stay, current.ID); err != nil {
			return nil, current, err
		}

		updated.RoomID = room.ID
		updated.CheckInDate = stay.CheckIn
		updated.CheckOutDate = stay.CheckOut
		updated.TotalAmount = model.TotalFor(room.Price, stay.Nights())

		fields[model.FieldRoomID] = updated.RoomID
		fields[model.FieldCheckInDate] = updated.CheckInDate
		fields[model.FieldCheckOutDate] = updated.CheckOutDate
		fields[model.FieldTotalAmount] = updated.TotalAmount
	}

	if req.Status != nil {
		status, err := model.ParseStatus(*req.Status)
		if err != nil {
			return nil, current, err //nolint:wrapcheck
		}

		if status != current.Status {
			if _, err := current.Status.TransitionTo(status); err != nil {
				return nil, current, err //nolint:wrapcheck
			}

			updated.Status = status
			fields[model.FieldStatus] = status
		}
	}

	if req.SpecialRequests != nil {
		updated.SpecialRequests = *req.SpecialRequests
		fields[model.FieldSpecialRequests] = updated.SpecialRequests
	}

	if req.Discount != nil {
		updated.Discount = decimal.NewNullDecimal(req.Discount.Round(2))
		fields[model.FieldDiscount] = updated.Discount
	}

	updated.Touch(shared.Operator(ctx), timezone.Now())
	fields[constant.FieldModifiedAt] = updated.ModifiedAt
	fields[constant.FieldModifiedBy] = updated.ModifiedBy

	return fields, updated, nil
}

func (s *serviceImpl) requireGuest(ctx context.Context, guestID string) error {
	exist, err := s.guestRepo.Exist(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return nil
}

// lockRoom loads the room FOR UPDATE so overlapping bookings on it serialize.
func (s *serviceImpl) lockRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.GetForUpdate(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to lock room")

		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func requireActive(room roomModel.Room) error {
	if !room.Active {
		return failure.InvalidStatus(fmt.Sprintf("room %s is not active", room.Number)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) requireFree(ctx context.Context, room roomModel.Room, stay model.Stay, excludeID string) error {
	overlap, err := s.repo.HasOverlap(ctx, room.ID, stay, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if overlap {
		return failure.Conflict(fmt.Sprintf("room %s is already booked for the requested dates", room.Number)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) lock(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdate(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) cacheTTL() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return constant.CacheDuration
}
