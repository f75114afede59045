package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Settings=MockSettingsService

import (
	"context"
	"fmt"
	"suitespot/config"
	"suitespot/infras/otel"
	billingModel "suitespot/internal/domains/billing/model"
	"suitespot/internal/domains/settings/model"
	"suitespot/internal/domains/settings/model/dto"
	"suitespot/internal/domains/settings/repository"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	"suitespot/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const cacheSettings = "settings:current"

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
	Reset(ctx context.Context) (dto.SettingsResponse, error)
	Rates(ctx context.Context) (billingModel.Rates, error)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	res.FromModel(settings)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	settings := req.Apply(current)
	settings.Touch(shared.Operator(ctx), timezone.Now())

	if err = s.save(ctx, settings); err != nil {
		return res, err
	}

	res.FromModel(settings)

	return res, nil
}

// Reset overwrites the stored settings with the configured defaults.
func (s *serviceImpl) Reset(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Reset")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings := s.defaults()
	settings.CreatedBy = shared.Operator(ctx)
	settings.ModifiedBy = settings.CreatedBy

	if err = s.save(ctx, settings); err != nil {
		return res, err
	}

	log.Info().Str("operator", settings.ModifiedBy).Msg("settings reset to defaults")

	res.FromModel(settings)

	return res, nil
}

// Rates returns the current tax and service-charge rates as fractions.
func (s *serviceImpl) Rates(ctx context.Context) (res billingModel.Rates, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".settings.Rates")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.current(ctx)
	if err != nil {
		return res, err
	}

	return settings.Rates(), nil
}

func (s *serviceImpl) current(ctx context.Context) (settings model.Settings, err error) {
	cacheKey := shared.BuildCacheKey(cacheSettings)

	if err = s.cache.Get(ctx, cacheKey, &settings); err == nil {
		return settings, nil
	}

	settings, err = s.repo.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return settings, fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.ID == constant.Empty {
		settings = s.defaults()
	}

	if err := s.cache.Save(ctx, cacheKey, settings, constant.CacheDurationLong); err != nil {
		log.Warn().Err(err).Msg("failed to save settings to cache")
	}

	return settings, nil
}

func (s *serviceImpl) save(ctx context.Context, settings model.Settings) error {
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = timezone.Now()
	}

	if settings.ModifiedAt.IsZero() {
		settings.ModifiedAt = settings.CreatedAt
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to save settings")

		return fmt.Errorf("failed to save settings: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheSettings))

	return nil
}

// defaults builds settings from the HOTEL_* configuration.
func (s *serviceImpl) defaults() model.Settings {
	hotel := s.cfg.Hotel

	return model.Settings{
		ID:                model.SingletonID,
		HotelName:         hotel.Name,
		TaxRate:           decimal.NewFromFloat(hotel.TaxRatePercent),
		ServiceChargeRate: decimal.NewFromFloat(hotel.ServiceRatePercent),
		Currency:          hotel.Currency,
		CheckInTime:       hotel.CheckInTime,
		CheckOutTime:      hotel.CheckOutTime,
	}
}
