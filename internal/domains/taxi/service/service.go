package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Taxi=MockTaxiService

import (
	"context"
	"fmt"
	"suitespot/config"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/taxi/model"
	"suitespot/internal/domains/taxi/model/dto"
	"suitespot/internal/domains/taxi/repository"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"
	"suitespot/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTaxi   = "taxi:get"
	cacheCountTaxi = "taxi:count"
)

type Taxi interface {
	Create(ctx context.Context, req dto.CreateTaxiRequest) (dto.TaxiResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.TaxiFilter) (dto.GetTaxiRequestsResponse, error)
	Get(ctx context.Context, id string) (dto.TaxiResponse, error)
	Confirm(ctx context.Context, id string, req dto.ConfirmTaxiRequest) (dto.TaxiResponse, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (dto.TaxiResponse, error)
	Cancel(ctx context.Context, id string) (dto.TaxiResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.TaxiRequest
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.TaxiRequest, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Taxi {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaxiRequest) (res dto.TaxiResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".taxi.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	status, err := s.repo.BookingStatus(ctx, req.BookingID)
	if err != nil {
		return res, fmt.Errorf("failed to check booking: %w", err)
	}

	switch status {
	case constant.Empty:
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	case bookingModel.StatusCancelled:
		return res, failure.InvalidStatus("booking is cancelled and cannot request a taxi") // nolint:wrapcheck
	}

	request := req.ToModel(shared.Operator(ctx), timezone.Now())

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create taxi request")

		return res, fmt.Errorf("failed to create taxi request: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, s.listCacheKeys()...)

	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.TaxiFilter) (res dto.GetTaxiRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".taxi.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.EntityName, params, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for taxi requests")

		return res, nil
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get taxi requests")

		return res, fmt.Errorf("failed to get taxi requests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save taxi requests to cache")
	}

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, filter dto.TaxiFilter) (int, error) {
	cacheKey := shared.BuildCacheKey(cacheCountTaxi, filter.CacheKey())

	var total int
	if err := s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err := s.repo.Count(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to count taxi requests")

		return 0, fmt.Errorf("failed to count taxi requests: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, total, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save taxi request count to cache")
	}

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaxiResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".taxi.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTaxi, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for taxi request")

		return res, nil
	}

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get taxi request")

		return res, fmt.Errorf("failed to get taxi request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("taxi request not found") // nolint:wrapcheck
	}

	res.FromModel(request)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save taxi request to cache")
	}

	return res, nil
}

// Confirm assigns a driver to a pending request.
func (s *serviceImpl) Confirm(ctx context.Context, id string, req dto.ConfirmTaxiRequest) (res dto.TaxiResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".taxi.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(request model.TaxiRequest) (model.TaxiRequest, error) {
		return request.Confirm(req.Driver(), timezone.Now())
	})
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) (res dto.TaxiResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".taxi.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(request model.TaxiRequest) (model.TaxiRequest, error) {
		return request.MoveTo(status, timezone.Now())
	})
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.TaxiResponse, error) {
	return s.UpdateStatus(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".taxi.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	request, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if taxi request exists")

		return fmt.Errorf("failed to check if taxi request exists: %w", err)
	}

	if request.ID == constant.Empty {
		return failure.NotFound("taxi request not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete taxi request")

		return fmt.Errorf("failed to delete taxi request: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// change applies fn to the locked request and writes its dispatch columns back.
func (s *serviceImpl) change(ctx context.Context, id string, fn func(model.TaxiRequest) (model.TaxiRequest, error)) (res dto.TaxiResponse, err error) {
	var request model.TaxiRequest

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		current, err := s.repo.GetForUpdate(ctx, filter)
		if err != nil {
			log.Error().Err(err).Str("taxi_id", id).Msg("failed to lock taxi request")

			return fmt.Errorf("failed to lock taxi request: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("taxi request not found") // nolint:wrapcheck
		}

		request, err = fn(current)
		if err != nil {
			return err
		}

		request.Touch(shared.Operator(ctx), timezone.Now())

		fields := request.Fields()
		fields[constant.FieldModifiedAt] = request.ModifiedAt
		fields[constant.FieldModifiedBy] = request.ModifiedBy

		if _, err := s.repo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Str("taxi_id", id).Msg("failed to update taxi request")

			return fmt.Errorf("failed to update taxi request: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)
	res.FromModel(request)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.InvalidateCaches(ctx, s.cache, append(s.listCacheKeys(), shared.BuildCacheKey(cacheGetTaxi, id))...)
}

func (s *serviceImpl) listCacheKeys() []string {
	return []string{
		shared.BuildCacheKey(model.EntityName, "list", constant.Asterix),
		shared.BuildCacheKey(cacheCountTaxi, constant.Asterix),
	}
}

func (s *serviceImpl) cacheTTL() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return constant.CacheDuration
}
