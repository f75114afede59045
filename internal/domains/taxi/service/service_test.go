package service_test

import (
	"context"
	"errors"
	"testing"

	"suitespot/config"
	otelMocks "suitespot/infras/otel/mocks"
	pgMocks "suitespot/infras/postgres/mocks"
	bookingModel "suitespot/internal/domains/booking/model"
	taxiMocks "suitespot/internal/domains/taxi/mocks"
	"suitespot/internal/domains/taxi/model"
	"suitespot/internal/domains/taxi/model/dto"
	"suitespot/internal/domains/taxi/service"
	cacheMocks "suitespot/shared/cache/mocks"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo       *taxiMocks.MockTaxiRequest
	cache      *cacheMocks.MockRedisCache
	transactor pgMocks.Transactor
	svc        service.Taxi
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:       taxiMocks.NewMockTaxiRequest(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		transactor: pgMocks.NewTransactor(),
	}

	f.svc = service.New(f.repo, f.transactor, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func taxi(status model.Status) model.TaxiRequest {
	return model.TaxiRequest{
		ID:             "taxi-1",
		BookingID:      "booking-1",
		PickupLocation: model.DefaultPickup,
		Destination:    "Airport",
		Status:         status,
	}
}

func TestTaxiService_Create(t *testing.T) {
	tests := []struct {
		name    string
		booking bookingModel.Status
		wantErr error
	}{
		{name: "pending request for a confirmed booking", booking: bookingModel.StatusConfirmed},
		{name: "checked out guests may still ride", booking: bookingModel.StatusCheckedOut},
		{name: "missing booking", wantErr: failure.ErrNotFound},
		{name: "cancelled booking", booking: bookingModel.StatusCancelled, wantErr: failure.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().BookingStatus(gomock.Any(), "booking-1").Return(tt.booking, nil)

			if tt.wantErr == nil {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.TaxiRequest) error {
						assert.Equal(t, model.StatusPending, request.Status)
						assert.Equal(t, "Hotel", request.PickupLocation)
						assert.False(t, request.RequestedAt.IsZero())

						return nil
					})
			}

			res, err := f.svc.Create(context.Background(), dto.CreateTaxiRequest{BookingID: "booking-1", Destination: "Airport"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "pending", res.Status)
			assert.Equal(t, "Airport", res.Destination)
		})
	}
}

func TestTaxiService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "desc"}

	f.cache.EXPECT().Get(gomock.Any(), "suitespot:taxi:list:p1:l10:created_at:desc:pending,", gomock.Any()).Return(errors.New("miss"))
	f.cache.EXPECT().Get(gomock.Any(), "suitespot:taxi:count:pending,", gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.TaxiRequest, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, model.StatusPending, args["status"])

			return []model.TaxiRequest{taxi(model.StatusPending)}, nil
		})
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).Times(2)

	res, err := f.svc.GetAll(context.Background(), params, dto.TaxiFilter{Status: model.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.TaxiRequests, 1)
	assert.Equal(t, "taxi-1", res.TaxiRequests[0].ID)
}

func TestTaxiService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "suitespot:taxi:get:taxi-404", gomock.Any()).Return(errors.New("miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TaxiRequest{}, nil)

	_, err := f.svc.Get(context.Background(), "taxi-404")
	assert.ErrorIs(t, err, failure.ErrNotFound)
}

func TestTaxiService_Confirm(t *testing.T) {
	t.Run("driver is assigned", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(taxi(model.StatusPending), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
				assert.Equal(t, "Budi", fields[model.FieldDriverName])
				assert.NotNil(t, fields[model.FieldEstimatedETA])
				assert.Contains(t, fields, "modified_at")

				return 1, nil
			})

		res, err := f.svc.Confirm(context.Background(), "taxi-1", dto.ConfirmTaxiRequest{
			DriverName:    "Budi",
			VehicleNumber: "B 1234 XY",
			PhoneNumber:   "+62811",
			EstimatedCost: decimal.NewFromInt(75),
		})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", res.Status)
		assert.Equal(t, "75", res.EstimatedCost.String())
		assert.Equal(t, 1, f.transactor.Calls())
	})

	t.Run("already dispatched request writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(taxi(model.StatusOnTheWay), nil)

		_, err := f.svc.Confirm(context.Background(), "taxi-1", dto.ConfirmTaxiRequest{DriverName: "Budi"})
		assert.ErrorIs(t, err, failure.ErrInvalidTransition)
	})

	t.Run("missing request", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(model.TaxiRequest{}, nil)

		_, err := f.svc.Confirm(context.Background(), "taxi-404", dto.ConfirmTaxiRequest{})
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})
}

func TestTaxiService_UpdateStatus(t *testing.T) {
	t.Run("completion is stamped", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(taxi(model.StatusOnTheWay), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		res, err := f.svc.UpdateStatus(context.Background(), "taxi-1", model.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, "completed", res.Status)
		assert.NotNil(t, res.CompletedAt)
	})

	t.Run("completed request cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(taxi(model.StatusCompleted), nil)

		_, err := f.svc.Cancel(context.Background(), "taxi-1")
		assert.ErrorIs(t, err, failure.ErrInvalidTransition)
	})

	t.Run("lock failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(model.TaxiRequest{}, errors.New("database error"))

		_, err := f.svc.UpdateStatus(context.Background(), "taxi-1", model.StatusOnTheWay)
		assert.ErrorContains(t, err, "failed to lock taxi request")
	})
}

func TestTaxiService_Cancel(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(taxi(model.StatusConfirmed), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

			return 1, nil
		})

	res, err := f.svc.Cancel(context.Background(), "taxi-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", res.Status)
}

func TestTaxiService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(taxi(model.StatusCancelled), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "taxi-1"))
	})

	t.Run("missing request", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), model.FieldID).Return(model.TaxiRequest{}, nil)

		assert.ErrorIs(t, f.svc.Delete(context.Background(), "taxi-404"), failure.ErrNotFound)
	})
}
