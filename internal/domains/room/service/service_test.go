package service_test

import (
	"context"
	"errors"
	"testing"

	"suitespot/config"
	otelMocks "suitespot/infras/otel/mocks"
	pgMocks "suitespot/infras/postgres/mocks"
	roomMocks "suitespot/internal/domains/room/mocks"
	"suitespot/internal/domains/room/model"
	"suitespot/internal/domains/room/model/dto"
	"suitespot/internal/domains/room/service"
	cacheMocks "suitespot/shared/cache/mocks"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDatabase = errors.New("database error")

type fixture struct {
	repo       *roomMocks.MockRoom
	cache      *cacheMocks.MockRedisCache
	transactor pgMocks.Transactor
	svc        service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		repo:       roomMocks.NewMockRoom(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		transactor: pgMocks.NewTransactor(),
	}

	f.svc = service.New(f.repo, f.transactor, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func room(status model.Status) model.Room {
	return model.Room{
		ID:     "room-1",
		Number: "101",
		Type:   model.TypeDouble,
		Status: status,
		Price:  decimal.NewFromInt(100),
		Active: true,
	}
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		insertErr error
		wantErr   error
	}{
		{name: "created"},
		{name: "duplicate number", insertErr: &pq.Error{Code: "23505"}, wantErr: errors.New("room number 101 already exists")},
		{name: "database error", insertErr: errDatabase, wantErr: errDatabase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r model.Room) error {
					assert.Equal(t, model.StatusAvailable, r.Status)
					assert.True(t, r.Price.Equal(decimal.RequireFromString("120.50")))

					return tt.insertErr
				})

			res, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{
				Number: "101",
				Type:   "double",
				Price:  decimal.RequireFromString("120.5"),
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "101", res.Number)
			assert.Equal(t, "available", res.Status)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "suitespot:room:get:room-1", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(model.StatusAvailable), nil)
		f.cache.EXPECT().Save(gomock.Any(), "suitespot:room:get:room-1", gomock.Any(), 60).Return(nil)

		res, err := f.svc.Get(context.Background(), "room-1")
		require.NoError(t, err)
		assert.Equal(t, "101", res.Number)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "room-404")
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{room(model.StatusAvailable)}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, dto.RoomFilter{Type: "double"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		found      bool
		referenced bool
		wantErr    error
	}{
		{name: "deleted", found: true},
		{name: "referenced by bookings", found: true, referenced: true, wantErr: failure.ErrInvalidStatus},
		{name: "missing", wantErr: failure.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			existing := model.Room{}
			if tt.found {
				existing = room(model.StatusAvailable)
			}

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)

			if tt.found {
				f.repo.EXPECT().HasBookings(gomock.Any(), "room-1").Return(tt.referenced, nil)
			}

			if tt.wantErr == nil {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := f.svc.Delete(context.Background(), "room-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_UpdateStatus(t *testing.T) {
	t.Run("allowed transition is persisted and audited", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(room(model.StatusAvailable), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])

				return 1, nil
			})
		f.repo.EXPECT().InsertStatusChange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, change model.StatusChange) error {
				assert.Equal(t, model.StatusAvailable, change.FromStatus)
				assert.Equal(t, model.StatusMaintenance, change.ToStatus)
				assert.False(t, change.Forced)

				return nil
			})

		res, err := f.svc.UpdateStatus(context.Background(), "room-1", model.StatusMaintenance)
		require.NoError(t, err)
		assert.Equal(t, "maintenance", res.Status)
		assert.Equal(t, 1, f.transactor.Calls())
	})

	t.Run("disallowed transition writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(room(model.StatusMaintenance), nil)

		_, err := f.svc.UpdateStatus(context.Background(), "room-1", model.StatusOccupied)
		assert.ErrorIs(t, err, failure.ErrInvalidTransition)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(room(model.StatusOccupied), nil)

		res, err := f.svc.UpdateStatus(context.Background(), "room-1", model.StatusOccupied)
		require.NoError(t, err)
		assert.Equal(t, "occupied", res.Status)
	})

	t.Run("missing room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.UpdateStatus(context.Background(), "room-1", model.StatusOccupied)
		assert.ErrorIs(t, err, failure.ErrNotFound)
	})
}

func TestRoomService_UpdateStatus_DropsCachedLookups(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	repo := roomMocks.NewMockRoom(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(repo, pgMocks.NewTransactor(), cfg, cache, otelMocks.NewOtel())

	var dropped []string

	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) error {
			dropped = append(dropped, key)

			return nil
		}).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(room(model.StatusAvailable), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().InsertStatusChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.UpdateStatus(context.Background(), "room-1", model.StatusOccupied)
	require.NoError(t, err)

	assert.Contains(t, dropped, "suitespot:room:get:room-1")
	assert.Contains(t, dropped, "suitespot:room:number:101")
}

func TestRoomService_ForceUpdateStatus(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).Return(room(model.StatusMaintenance), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.repo.EXPECT().InsertStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change model.StatusChange) error {
			assert.True(t, change.Forced)
			assert.Equal(t, "guest already in room", change.Reason)

			return nil
		})

	res, err := f.svc.ForceUpdateStatus(context.Background(), "room-1", model.StatusOccupied, "guest already in room")
	require.NoError(t, err)
	assert.Equal(t, "occupied", res.Status)
}

func TestRoomService_ForceTransition_UnknownStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ForceTransition(context.Background(), room(model.StatusAvailable), model.Status("flooded"), "")
	assert.ErrorIs(t, err, failure.ErrInvalidArgument)
}

func TestRoomService_StatusHistory(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().GetStatusChanges(gomock.Any(), "room-1", 100).
		Return([]model.StatusChange{{FromStatus: model.StatusAvailable, ToStatus: model.StatusOccupied}}, nil)

	res, err := f.svc.StatusHistory(context.Background(), "room-1", 500)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "occupied", res[0].ToStatus)
}
