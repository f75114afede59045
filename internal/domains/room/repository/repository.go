package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	bookingModel "suitespot/internal/domains/booking/model"
	"suitespot/internal/domains/room/model"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/logger"
	gRepo "suitespot/shared/repository"

	"github.com/doug-martin/goqu/v9"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetForUpdate(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	HasBookings(ctx context.Context, roomID string) (bool, error)
	CountByStatus(ctx context.Context) (map[model.Status]int, error)
	InsertStatusChange(ctx context.Context, change model.StatusChange) error
	GetStatusChanges(ctx context.Context, roomID string, limit int) ([]model.StatusChange, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	changes gRepo.Repository[model.StatusChange]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		changes:    gRepo.NewRepository[model.StatusChange](model.StatusChangeEntityName, model.StatusChangeTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) HasBookings(ctx context.Context, roomID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.HasBookings")
	defer scope.End()

	ds := postgres.Builder.Select(goqu.L("EXISTS ?",
		postgres.Builder.From(bookingModel.TableName).
			Select(goqu.L("1")).
			Where(goqu.C(bookingModel.FieldRoomID).Eq(roomID)),
	))

	var exists bool

	_, query, err := r.db.GetOne(ctx, &exists, ds)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room bookings: %w", err)
	}

	return exists, nil
}

type statusCount struct {
	Status model.Status `db:"status"`
	Total  int          `db:"total"`
}

func (r *repositoryImpl) CountByStatus(ctx context.Context) (map[model.Status]int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountByStatus")
	defer scope.End()

	ds := postgres.Builder.From(model.TableName).
		Select(goqu.C(model.FieldStatus), goqu.COUNT(goqu.Star()).As("total")).
		Where(goqu.C(model.FieldActive).IsTrue()).
		GroupBy(goqu.C(model.FieldStatus))

	var rows []statusCount

	query, err := r.db.Select(ctx, &rows, ds)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	counts := make(map[model.Status]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}

	return counts, nil
}

func (r *repositoryImpl) InsertStatusChange(ctx context.Context, change model.StatusChange) error {
	return r.changes.Insert(ctx, change) //nolint:wrapcheck
}

func (r *repositoryImpl) GetStatusChanges(ctx context.Context, roomID string, limit int) ([]model.StatusChange, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldStatusChangeChangedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldStatusChangeRoomID, Value: roomID, Operator: gDto.FilterOperatorEq},
		},
	}

	return r.changes.GetAll(ctx, params, filter) //nolint:wrapcheck
}
