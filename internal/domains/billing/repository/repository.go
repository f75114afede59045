package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/internal/domains/billing/model"
	"suitespot/shared"
	"suitespot/shared/constant"
	gDto "suitespot/shared/dto"
	"suitespot/shared/logger"
	gRepo "suitespot/shared/repository"

	"github.com/doug-martin/goqu/v9"
)

type Bill interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bill, error)
	GetForUpdate(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bill, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Bill, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetByBooking(ctx context.Context, bookingID string) (model.Bill, error)
	InsertIfAbsent(ctx context.Context, bill model.Bill) (model.Bill, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Bill]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Bill {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bill](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByBooking(ctx context.Context, bookingID string) (model.Bill, error) {
	return r.Get(ctx, shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)) //nolint:wrapcheck
}

// InsertIfAbsent stores bill unless the booking already has one, and returns the bill
// that is stored afterwards. created is false when an existing bill won.
func (r *repositoryImpl) InsertIfAbsent(ctx context.Context, bill model.Bill) (stored model.Bill, created bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".bill.InsertIfAbsent")
	defer scope.End()

	affected, query, err := r.db.Exec(ctx, insertIfAbsent(bill))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return stored, false, fmt.Errorf("failed to insert bill: %w", err)
	}

	if affected > 0 {
		return bill, true, nil
	}

	stored, err = r.GetByBooking(ctx, bill.BookingID)
	if err != nil {
		return stored, false, fmt.Errorf("failed to reload bill: %w", err)
	}

	return stored, false, nil
}

func insertIfAbsent(bill model.Bill) *goqu.InsertDataset {
	return postgres.Builder.Insert(model.TableName).
		Rows(goqu.Record{
			model.FieldID:             bill.ID,
			model.FieldBookingID:      bill.BookingID,
			model.FieldRoomCharges:    bill.RoomCharges,
			model.FieldServiceCharges: bill.ServiceCharges,
			model.FieldTaxes:          bill.Taxes,
			model.FieldDiscount:       bill.Discount,
			model.FieldTotalAmount:    bill.TotalAmount,
			model.FieldPaymentStatus:  string(bill.PaymentStatus),
			model.FieldGeneratedAt:    bill.GeneratedAt,
			model.FieldPaidAt:         bill.PaidAt,
			constant.FieldCreatedAt:   bill.CreatedAt,
			constant.FieldCreatedBy:   bill.CreatedBy,
			constant.FieldModifiedAt:  bill.ModifiedAt,
			constant.FieldModifiedBy:  bill.ModifiedBy,
		}).
		OnConflict(goqu.DoNothing())
}
