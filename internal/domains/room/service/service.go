package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"suitespot/config"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/internal/domains/room/model"
	"suitespot/internal/domains/room/model/dto"
	"suitespot/internal/domains/room/repository"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"
	"suitespot/shared/logger"
	"suitespot/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom      = "room:get"
	cacheGetRoomByNum = "room:number"
	cacheCountRoom    = "room:count"

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	auditRoomStatus = "room.status_changed"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.RoomFilter) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, filter dto.RoomFilter) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	GetByNumber(ctx context.Context, number string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status model.Status) (dto.RoomResponse, error)
	ForceUpdateStatus(ctx context.Context, id string, status model.Status, reason string) (dto.RoomResponse, error)
	StatusHistory(ctx context.Context, id string, limit int) ([]dto.StatusChangeResponse, error)
	Transition(ctx context.Context, room model.Room, status model.Status) (model.Room, error)
	ForceTransition(ctx context.Context, room model.Room, status model.Status, reason string) (model.Room, error)
	InvalidateCache(ctx context.Context, rooms ...model.Room)
}

type serviceImpl struct {
	repo       repository.Room
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Room, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := req.ToModel(shared.Operator(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("room number %s already exists", room.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, s.listCacheKeys()...)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.RoomFilter) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.EntityName, params, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save rooms to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter dto.RoomFilter) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCountRoom, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save room count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save room to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetByNumber(ctx context.Context, number string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoomByNum, number)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(number, model.FieldNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room by number")

		return res, fmt.Errorf("failed to get room by number: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("room %s not found", number)) // nolint:wrapcheck
	}

	res.FromModel(room)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save room to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, shared.Operator(ctx))
	if req.Price != nil {
		fields[model.FieldPrice] = req.Price.Round(2)
	}

	if _, err = s.repo.Update(ctx, fields, filter); err != nil {
		if postgres.IsUniqueViolation(err) {
			return failure.Conflict(fmt.Sprintf("room number %s already exists", req.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.InvalidateCache(ctx, current)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	referenced, err := s.repo.HasBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check room bookings: %w", err)
	}

	if referenced {
		return failure.InvalidStatus(fmt.Sprintf("room %s has bookings and cannot be deleted", room.Number)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.InvalidateCache(ctx, room)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	var room model.Room

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, id)
		if err != nil {
			return err
		}

		room, err = s.Transition(ctx, locked, status)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.InvalidateCache(ctx, room)
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) ForceUpdateStatus(ctx context.Context, id string, status model.Status, reason string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.ForceUpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	var room model.Room

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, id)
		if err != nil {
			return err
		}

		room, err = s.ForceTransition(ctx, locked, status, reason)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.InvalidateCache(ctx, room)
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) StatusHistory(ctx context.Context, id string, limit int) (res []dto.StatusChangeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.StatusHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return nil, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return nil, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	changes, err := s.repo.GetStatusChanges(ctx, id, min(limit, maxHistoryLimit))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room status history")

		return nil, fmt.Errorf("failed to get room status history: %w", err)
	}

	return dto.FromStatusChanges(changes), nil
}

// Transition applies a validated status change to a room the caller already holds.
// Staying in the current status succeeds without writing anything.
func (s *serviceImpl) Transition(ctx context.Context, room model.Room, status model.Status) (model.Room, error) {
	next, err := room.Status.TransitionTo(status)
	if err != nil {
		return room, err //nolint:wrapcheck
	}

	if next == room.Status {
		return room, nil
	}

	return s.apply(ctx, room, next, false, constant.Empty)
}

// ForceTransition writes status without consulting the transition table.
func (s *serviceImpl) ForceTransition(ctx context.Context, room model.Room, status model.Status, reason string) (model.Room, error) {
	if !status.Valid() {
		return room, failure.BadRequestFromString(fmt.Sprintf("unknown room status %q", status)) // nolint:wrapcheck
	}

	return s.apply(ctx, room, status, true, reason)
}

// InvalidateCache drops cached reads of the given rooms, by id and by number, and every room listing.
func (s *serviceImpl) InvalidateCache(ctx context.Context, rooms ...model.Room) {
	keys := s.listCacheKeys()
	for _, room := range rooms {
		keys = append(keys, shared.BuildCacheKey(cacheGetRoom, room.ID))
		if room.Number != constant.Empty {
			keys = append(keys, shared.BuildCacheKey(cacheGetRoomByNum, room.Number))
		}
	}

	shared.InvalidateCaches(ctx, s.cache, keys...)
}

func (s *serviceImpl) apply(ctx context.Context, room model.Room, status model.Status, forced bool, reason string) (model.Room, error) {
	operator := shared.Operator(ctx)
	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: operator,
	}

	affected, err := s.repo.Update(ctx, fields, shared.FilterByID(room.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to update room status")

		return room, fmt.Errorf("failed to update room status: %w", err)
	}

	if affected == 0 {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	change := model.StatusChange{
		ID:         uuid.NewString(),
		RoomID:     room.ID,
		FromStatus: room.Status,
		ToStatus:   status,
		Forced:     forced,
		Reason:     reason,
		ChangedAt:  now,
		ChangedBy:  operator,
	}

	if err = s.repo.InsertStatusChange(ctx, change); err != nil {
		log.Error().Err(err).Str("room_id", room.ID).Msg("failed to record room status change")

		return room, fmt.Errorf("failed to record room status change: %w", err)
	}

	logger.Audit(auditRoomStatus, forced).
		Str("room_id", room.ID).
		Str("room_number", room.Number).
		Str("from", string(room.Status)).
		Str("to", string(status)).
		Str("reason", reason).
		Str("operator", operator).
		Msg("room status changed")

	room.Status = status
	room.Touch(operator, now)

	return room, nil
}

func (s *serviceImpl) lock(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.GetForUpdate(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to lock room")

		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) listCacheKeys() []string {
	return []string{
		shared.BuildCacheKey(model.EntityName, "list", constant.Asterix),
		shared.BuildCacheKey(cacheCountRoom, constant.Asterix),
	}
}

func (s *serviceImpl) cacheTTL() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return constant.CacheDuration
}
