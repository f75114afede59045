package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	billingModel "suitespot/internal/domains/billing/model"
	"suitespot/internal/domains/booking/model"
	guestModel "suitespot/internal/domains/guest/model"
	roomModel "suitespot/internal/domains/room/model"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/logger"
	gRepo "suitespot/shared/repository"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	aliasBooking = "b"
	aliasGuest   = "g"
	aliasRoom    = "r"

	prefixGuest = "guest"
	prefixRoom  = "room"
)

// DetailQuery selects bookings together with their guest and room. Zero fields are ignored.
type DetailQuery struct {
	Statuses []model.Status
	GuestID  string
	RoomID   string
	// CheckInFrom and CheckOutTo keep stays that start on or after CheckInFrom and end on or before CheckOutTo.
	CheckInFrom time.Time
	CheckOutTo  time.Time
	Limit       uint
}

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetForUpdate(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetDetail(ctx context.Context, id string) (model.BookingDetail, error)
	GetDetails(ctx context.Context, query DetailQuery) ([]model.BookingDetail, error)
	HasOverlap(ctx context.Context, roomID string, stay model.Stay, excludeID string) (bool, error)
	AvailableRooms(ctx context.Context, stay model.Stay, roomType roomModel.Type) ([]roomModel.Room, error)
	HasBill(ctx context.Context, bookingID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// detailDataset joins bookings with guests and rooms, aliasing the relation columns so
// sqlx fills the nested Guest and Room of BookingDetail.
func detailDataset() *goqu.SelectDataset {
	selected := postgres.QualifiedColumns(aliasBooking, gRepo.Columns[model.Booking]())
	selected = append(selected, postgres.AliasColumns(aliasGuest, prefixGuest, gRepo.Columns[guestModel.Guest]())...)
	selected = append(selected, postgres.AliasColumns(aliasRoom, prefixRoom, gRepo.Columns[roomModel.Room]())...)

	return postgres.Builder.
		From(goqu.T(model.TableName).As(aliasBooking)).
		InnerJoin(goqu.T(guestModel.TableName).As(aliasGuest),
			goqu.On(goqu.I(aliasGuest+"."+guestModel.FieldID).Eq(goqu.I(aliasBooking+"."+model.FieldGuestID)))).
		InnerJoin(goqu.T(roomModel.TableName).As(aliasRoom),
			goqu.On(goqu.I(aliasRoom+"."+roomModel.FieldID).Eq(goqu.I(aliasBooking+"."+model.FieldRoomID)))).
		Select(selected...)
}

func bookingColumn(name string) exp.IdentifierExpression {
	return goqu.I(aliasBooking + "." + name)
}

func statusValues(statuses []model.Status) []string {
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}

	return values
}

// GetDetail loads one booking with its relations. A booking whose guest or room row is
// gone comes back with that relation empty so callers can report the broken reference.
func (r *repositoryImpl) GetDetail(ctx context.Context, id string) (model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetail")
	defer scope.End()

	var detail model.BookingDetail

	found, query, err := r.db.GetOne(ctx, &detail, detailDataset().Where(bookingColumn(model.FieldID).Eq(id)))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return detail, fmt.Errorf("failed to get booking detail: %w", err)
	}

	if found {
		return detail, nil
	}

	booking, err := r.Get(ctx, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}})
	if err != nil {
		return detail, fmt.Errorf("failed to get booking: %w", err)
	}

	return model.BookingDetail{Booking: booking}, nil
}

func (r *repositoryImpl) GetDetails(ctx context.Context, query DetailQuery) ([]model.BookingDetail, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetDetails")
	defer scope.End()

	ds := detailDataset()

	if len(query.Statuses) > 0 {
		ds = ds.Where(bookingColumn(model.FieldStatus).In(statusValues(query.Statuses)))
	}

	if query.GuestID != "" {
		ds = ds.Where(bookingColumn(model.FieldGuestID).Eq(query.GuestID))
	}

	if query.RoomID != "" {
		ds = ds.Where(bookingColumn(model.FieldRoomID).Eq(query.RoomID))
	}

	if !query.CheckInFrom.IsZero() {
		ds = ds.Where(bookingColumn(model.FieldCheckInDate).Gte(query.CheckInFrom))
	}

	if !query.CheckOutTo.IsZero() {
		ds = ds.Where(bookingColumn(model.FieldCheckOutDate).Lte(query.CheckOutTo))
	}

	ds = ds.Order(bookingColumn(model.FieldCreatedAt).Desc())

	if query.Limit > 0 {
		ds = ds.Limit(query.Limit)
	}

	details := []model.BookingDetail{}

	sqlQuery, err := r.db.Select(ctx, &details, ds)
	scope.SetAttribute(constant.OtelQueryAttributeKey, sqlQuery)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get booking details: %w", err)
	}

	return details, nil
}

// conflictCondition matches non-cancelled bookings whose stay overlaps stay. Stays that
// only touch at a boundary date do not conflict.
func conflictCondition(stay model.Stay) exp.ExpressionList {
	return goqu.And(
		bookingColumn(model.FieldStatus).Neq(string(model.StatusCancelled)),
		bookingColumn(model.FieldCheckInDate).Lt(stay.CheckOut),
		bookingColumn(model.FieldCheckOutDate).Gt(stay.CheckIn),
	)
}

func (r *repositoryImpl) HasOverlap(ctx context.Context, roomID string, stay model.Stay, excludeID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasOverlap")
	defer scope.End()

	conflicts := postgres.Builder.From(goqu.T(model.TableName).As(aliasBooking)).
		Select(goqu.L("1")).
		Where(bookingColumn(model.FieldRoomID).Eq(roomID), conflictCondition(stay))

	if excludeID != "" {
		conflicts = conflicts.Where(bookingColumn(model.FieldID).Neq(excludeID))
	}

	var exists bool

	_, query, err := r.db.GetOne(ctx, &exists, postgres.Builder.Select(goqu.L("EXISTS ?", conflicts)))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return exists, nil
}

// AvailableRooms returns active Available rooms of roomType (any type when empty) with no
// conflicting booking for stay.
func (r *repositoryImpl) AvailableRooms(ctx context.Context, stay model.Stay, roomType roomModel.Type) ([]roomModel.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.AvailableRooms")
	defer scope.End()

	conflicts := postgres.Builder.From(goqu.T(model.TableName).As(aliasBooking)).
		Select(goqu.L("1")).
		Where(bookingColumn(model.FieldRoomID).Eq(goqu.I(aliasRoom+"."+roomModel.FieldID)), conflictCondition(stay))

	ds := postgres.Builder.From(goqu.T(roomModel.TableName).As(aliasRoom)).
		Select(postgres.QualifiedColumns(aliasRoom, gRepo.Columns[roomModel.Room]())...).
		Where(
			goqu.I(aliasRoom+"."+roomModel.FieldStatus).Eq(string(roomModel.StatusAvailable)),
			goqu.I(aliasRoom+"."+roomModel.FieldActive).IsTrue(),
			goqu.L("NOT EXISTS ?", conflicts),
		).
		Order(goqu.I(aliasRoom + "." + roomModel.FieldNumber).Asc())

	if roomType != "" {
		ds = ds.Where(goqu.I(aliasRoom + "." + roomModel.FieldType).Eq(string(roomType)))
	}

	rooms := []roomModel.Room{}

	query, err := r.db.Select(ctx, &rooms, ds)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to search available rooms: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) HasBill(ctx context.Context, bookingID string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasBill")
	defer scope.End()

	bills := postgres.Builder.From(billingModel.TableName).
		Select(goqu.L("1")).
		Where(goqu.C(billingModel.FieldBookingID).Eq(bookingID))

	var exists bool

	_, query, err := r.db.GetOne(ctx, &exists, postgres.Builder.Select(goqu.L("EXISTS ?", bills)))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check booking bill: %w", err)
	}

	return exists, nil
}
