package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/taxi/model"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/logger"
	gRepo "suitespot/shared/repository"

	"github.com/doug-martin/goqu/v9"
)

type TaxiRequest interface {
	Insert(ctx context.Context, request model.TaxiRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TaxiRequest, error)
	GetForUpdate(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TaxiRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TaxiRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	BookingStatus(ctx context.Context, bookingID string) (bookingModel.Status, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.TaxiRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) TaxiRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.TaxiRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BookingStatus returns the status of the booking, or an empty status when no such booking exists.
func (r *repositoryImpl) BookingStatus(ctx context.Context, bookingID string) (bookingModel.Status, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".taxi.BookingStatus")
	defer scope.End()

	ds := postgres.Builder.From(bookingModel.TableName).
		Select(goqu.C(bookingModel.FieldStatus)).
		Where(goqu.C(bookingModel.FieldID).Eq(bookingID))

	var status bookingModel.Status

	found, query, err := r.db.GetOne(ctx, &status, ds)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to get booking status: %w", err)
	}

	if !found {
		return constant.Empty, nil
	}

	return status, nil
}
