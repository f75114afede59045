package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"fmt"
	"strings"
	"suitespot/config"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/internal/domains/guest/model"
	"suitespot/internal/domains/guest/model/dto"
	"suitespot/internal/domains/guest/repository"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest   = "guest:get"
	cacheCountGuest = "guest:count"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.GuestFilter) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, filter dto.GuestFilter) (int, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	SearchByIDNumber(ctx context.Context, idNumber string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest := req.ToModel(shared.Operator(ctx))

	if err = s.repo.Insert(ctx, guest); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("guest with email %s already exists", guest.Email)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, s.listCacheKeys()...)

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.GuestFilter) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.EntityName, params, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save guests to cache")
	}

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter dto.GuestFilter) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCountGuest, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save guest count to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save guest to cache")
	}

	return res, nil
}

func (s *serviceImpl) SearchByIDNumber(ctx context.Context, idNumber string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.SearchByIDNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	idNumber = strings.TrimSpace(idNumber)
	if idNumber == constant.Empty {
		return res, failure.BadRequestFromString("identity number is required") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: "UPPER(" + model.FieldIDNumber + ")", ArgName: model.FieldIDNumber, Value: strings.ToUpper(idNumber), Operator: gDto.FilterOperatorEq},
		},
	}

	guest, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search guest by identity number")

		return res, fmt.Errorf("failed to search guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("no guest holds this identity number") // nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	req.Normalize()

	if _, err = s.repo.Update(ctx, shared.TransformFields(req, shared.Operator(ctx)), filter); err != nil {
		if postgres.IsUniqueViolation(err) {
			return failure.Conflict(fmt.Sprintf("guest with email %s already exists", req.Email)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, append(s.listCacheKeys(), shared.BuildCacheKey(cacheGetGuest, id))...)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	bookings, err := s.repo.CountBookings(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count guest bookings: %w", err)
	}

	if bookings > 0 {
		return failure.InvalidStatus(fmt.Sprintf("guest has %d booking(s) and cannot be deleted", bookings)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, append(s.listCacheKeys(), shared.BuildCacheKey(cacheGetGuest, id))...)

	return nil
}

func (s *serviceImpl) listCacheKeys() []string {
	return []string{
		shared.BuildCacheKey(model.EntityName, "list", constant.Asterix),
		shared.BuildCacheKey(cacheCountGuest, constant.Asterix),
	}
}

func (s *serviceImpl) cacheTTL() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return constant.CacheDuration
}
