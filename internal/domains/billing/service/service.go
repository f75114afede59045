package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Billing=MockBillingService

import (
	"context"
	"fmt"
	"suitespot/config"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/internal/domains/billing/model"
	"suitespot/internal/domains/billing/model/dto"
	"suitespot/internal/domains/billing/repository"
	bookingModel "suitespot/internal/domains/booking/model"
	bookingRepo "suitespot/internal/domains/booking/repository"
	settingsService "suitespot/internal/domains/settings/service"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"
	sharedModel "suitespot/shared/model"
	"suitespot/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBill     = "bill:get"
	cacheGetBillByBk = "bill:booking"
)

type Billing interface {
	Generate(ctx context.Context, bookingID string) (dto.BillResponse, error)
	GenerateFor(ctx context.Context, detail bookingModel.BookingDetail) (model.Bill, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (dto.BillResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BillFilter) (dto.GetBillsResponse, error)
	ApplyDiscount(ctx context.Context, id string, amount decimal.Decimal) (dto.BillResponse, error)
	MarkAsPaid(ctx context.Context, id string) (dto.BillResponse, error)
	MarkAsPartialPaid(ctx context.Context, id string) (dto.BillResponse, error)
	IsEligibleForDiscount(ctx context.Context, bookingID string, amount decimal.Decimal) (bool, error)
}

type serviceImpl struct {
	repo        repository.Bill
	bookingRepo bookingRepo.Booking
	settings    settingsService.Settings
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Bill,
	bookingRepo bookingRepo.Booking,
	settings settingsService.Settings,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Billing {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		settings:    settings,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Generate bills the booking, or returns its existing bill unchanged.
func (s *serviceImpl) Generate(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if bookingID == constant.Empty {
		return res, failure.BadRequestFromString("booking is required to generate a bill") // nolint:wrapcheck
	}

	var bill model.Bill

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		detail, err := s.bookingRepo.GetDetail(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if detail.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		bill, err = s.GenerateFor(ctx, detail)

		return err
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(bill)

	return res, nil
}

// GenerateFor bills a booking the caller already loaded. It joins the caller's transaction
// when ctx carries one.
func (s *serviceImpl) GenerateFor(ctx context.Context, detail bookingModel.BookingDetail) (bill model.Bill, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.GenerateFor")
	defer scope.End()
	defer scope.TraceIfError(err)

	if detail.ID == constant.Empty {
		return bill, failure.BadRequestFromString("booking is required to generate a bill") // nolint:wrapcheck
	}

	existing, err := s.repo.GetByBooking(ctx, detail.ID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("failed to get bill")

		return bill, fmt.Errorf("failed to get bill: %w", err)
	}

	if existing.ID != constant.Empty {
		return existing, nil
	}

	roomCharges, err := model.RoomCharges(detail.Booking, detail.Room.ID, detail.Room.Price)
	if err != nil {
		return bill, err //nolint:wrapcheck
	}

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return bill, fmt.Errorf("failed to get billing rates: %w", err)
	}

	now := timezone.Now()
	operator := shared.Operator(ctx)

	bill = model.Calculate(detail.ID, roomCharges, detail.DiscountAmount(), rates)
	bill.ID = uuid.NewString()
	bill.GeneratedAt = now
	bill.Metadata = sharedModel.NewMetadata(operator, now)

	stored, created, err := s.repo.InsertIfAbsent(ctx, bill)
	if err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("failed to store bill")

		return bill, fmt.Errorf("failed to store bill: %w", err)
	}

	if created {
		log.Info().
			Str("bill_id", stored.ID).
			Str("booking_id", detail.ID).
			Str("total", stored.TotalAmount.StringFixed(2)).
			Msg("bill generated")
	}

	s.invalidate(ctx, stored)

	return stored, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cached(ctx, shared.BuildCacheKey(cacheGetBill, id), func() (model.Bill, error) {
		return s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	})
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.cached(ctx, shared.BuildCacheKey(cacheGetBillByBk, bookingID), func() (model.Bill, error) {
		return s.repo.GetByBooking(ctx, bookingID)
	})
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BillFilter) (res dto.GetBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(model.EntityName, params, filter.CacheKey())

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to count bills")

		return res, fmt.Errorf("failed to count bills: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter.ToFilterGroup())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return res, fmt.Errorf("failed to get bills: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save bills to cache")
	}

	return res, nil
}

func (s *serviceImpl) ApplyDiscount(ctx context.Context, id string, amount decimal.Decimal) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.ApplyDiscount")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(bill model.Bill) (model.Bill, map[string]any, error) {
		if !amount.IsPositive() {
			return bill, nil, nil
		}

		updated := bill.ApplyDiscount(amount)

		return updated, map[string]any{
			model.FieldDiscount:    updated.Discount,
			model.FieldTotalAmount: updated.TotalAmount,
		}, nil
	})
}

func (s *serviceImpl) MarkAsPaid(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.MarkAsPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(bill model.Bill) (model.Bill, map[string]any, error) {
		updated, err := bill.MarkAsPaid(timezone.Now())
		if err != nil {
			return bill, nil, err //nolint:wrapcheck
		}

		return updated, map[string]any{
			model.FieldPaymentStatus: string(updated.PaymentStatus),
			model.FieldPaidAt:        updated.PaidAt,
		}, nil
	})
}

func (s *serviceImpl) MarkAsPartialPaid(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.MarkAsPartialPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(bill model.Bill) (model.Bill, map[string]any, error) {
		updated, err := bill.MarkAsPartialPaid()
		if err != nil {
			return bill, nil, err //nolint:wrapcheck
		}

		return updated, map[string]any{
			model.FieldPaymentStatus: string(updated.PaymentStatus),
		}, nil
	})
}

func (s *serviceImpl) IsEligibleForDiscount(ctx context.Context, bookingID string, amount decimal.Decimal) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.IsEligibleForDiscount")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return false, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return false, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return model.IsEligibleForDiscount(booking, amount), nil
}

// change locks the bill, applies fn and persists the fields fn reports. No fields means
// nothing changed.
func (s *serviceImpl) change(ctx context.Context, id string, fn func(model.Bill) (model.Bill, map[string]any, error)) (res dto.BillResponse, err error) {
	var bill model.Bill

	err = s.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetForUpdate(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("bill_id", id).Msg("failed to lock bill")

			return fmt.Errorf("failed to lock bill: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("bill not found") // nolint:wrapcheck
		}

		updated, fields, err := fn(current)
		if err != nil {
			return err
		}

		bill = updated

		if len(fields) == 0 {
			return nil
		}

		bill.Touch(shared.Operator(ctx), timezone.Now())
		fields[constant.FieldModifiedAt] = bill.ModifiedAt
		fields[constant.FieldModifiedBy] = bill.ModifiedBy

		if _, err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("bill_id", id).Msg("failed to update bill")

			return fmt.Errorf("failed to update bill: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx, bill)

	res.FromModel(bill)

	return res, nil
}

func (s *serviceImpl) cached(ctx context.Context, cacheKey string, load func() (model.Bill, error)) (res dto.BillResponse, err error) {
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bill")

		return res, nil
	}

	bill, err := load()
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return res, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return res, failure.NotFound("bill not found") // nolint:wrapcheck
	}

	res.FromModel(bill)

	if err := s.cache.Save(ctx, cacheKey, res, s.cacheTTL()); err != nil {
		log.Warn().Err(err).Msg("failed to save bill to cache")
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, bill model.Bill) {
	shared.InvalidateCaches(ctx, s.cache,
		shared.BuildCacheKey(cacheGetBill, bill.ID),
		shared.BuildCacheKey(cacheGetBillByBk, bill.BookingID),
		shared.BuildCacheKey(model.EntityName, "list", constant.Asterix),
	)
}

func (s *serviceImpl) cacheTTL() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return constant.CacheDuration
}
