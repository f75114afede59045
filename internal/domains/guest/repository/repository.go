package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/guest/model"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/logger"
	gRepo "suitespot/shared/repository"

	"github.com/doug-martin/goqu/v9"
)

type Guest interface {
	Insert(ctx context.Context, guest model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CountBookings(ctx context.Context, guestID string) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) CountBookings(ctx context.Context, guestID string) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.CountBookings")
	defer scope.End()

	ds := postgres.Builder.From(bookingModel.TableName).
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C(bookingModel.FieldGuestID).Eq(guestID))

	var total int

	_, query, err := r.db.GetOne(ctx, &total, ds)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count guest bookings: %w", err)
	}

	return total, nil
}
