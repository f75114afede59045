package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"suitespot/infras/otel"
	"suitespot/infras/postgres"
	"suitespot/internal/domains/settings/model"
	"suitespot/shared"
	"suitespot/shared/constant"
	"suitespot/shared/logger"
	gRepo "suitespot/shared/repository"

	"github.com/doug-martin/goqu/v9"
)

type Settings interface {
	Current(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Settings]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Settings](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Current returns the stored settings row, zero when none was saved yet.
func (r *repositoryImpl) Current(ctx context.Context) (model.Settings, error) {
	return r.Get(ctx, shared.FilterByID(model.SingletonID, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// Save upserts the singleton row.
func (r *repositoryImpl) Save(ctx context.Context, settings model.Settings) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".settings.Save")
	defer scope.End()

	settings.ID = model.SingletonID

	_, query, err := r.db.Exec(ctx, upsert(settings))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func upsert(settings model.Settings) *goqu.InsertDataset {
	values := goqu.Record{
		model.FieldHotelName:          settings.HotelName,
		model.FieldHotelEmail:         settings.HotelEmail,
		model.FieldHotelPhone:         settings.HotelPhone,
		model.FieldHotelAddress:       settings.HotelAddress,
		model.FieldTaxRate:            settings.TaxRate,
		model.FieldServiceChargeRate:  settings.ServiceChargeRate,
		model.FieldCurrency:           settings.Currency,
		model.FieldCheckInTime:        settings.CheckInTime,
		model.FieldCheckOutTime:       settings.CheckOutTime,
		model.FieldCancellationPolicy: settings.CancellationPolicy,
		constant.FieldModifiedAt:      settings.ModifiedAt,
		constant.FieldModifiedBy:      settings.ModifiedBy,
	}

	row := goqu.Record{
		model.FieldID:           settings.ID,
		constant.FieldCreatedAt: settings.CreatedAt,
		constant.FieldCreatedBy: settings.CreatedBy,
	}
	for column, value := range values {
		row[column] = value
	}

	return postgres.Builder.Insert(model.TableName).
		Rows(row).
		OnConflict(goqu.DoUpdate(model.FieldID, values))
}
