package service_test

import (
	"context"
	"errors"
	"testing"

	"suitespot/config"
	otelMocks "suitespot/infras/otel/mocks"
	guestMocks "suitespot/internal/domains/guest/mocks"
	"suitespot/internal/domains/guest/model"
	"suitespot/internal/domains/guest/model/dto"
	"suitespot/internal/domains/guest/service"
	cacheMocks "suitespot/shared/cache/mocks"
	gDto "suitespot/shared/dto"
	"suitespot/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*guestMocks.MockGuest, *cacheMocks.MockRedisCache, service.Guest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := guestMocks.NewMockGuest(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return repo, redisCache, service.New(repo, cfg, redisCache, otelMocks.NewOtel())
}

func TestGuestService_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := svc.Create(context.Background(), dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", res.FullName)
		assert.True(t, res.Active)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, _, svc := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

		_, err := svc.Create(context.Background(), dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestGuestService_Get(t *testing.T) {
	repo, redisCache, svc := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), "suitespot:guest:get:g-1", gomock.Any()).Return(errors.New("miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	_, err := svc.Get(context.Background(), "g-1")
	assert.ErrorIs(t, err, failure.ErrNotFound)
}

func TestGuestService_SearchByIDNumber(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Guest, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "UPPER(id_number) = :id_number")
			assert.Equal(t, "AB123", args["id_number"])

			return model.Guest{ID: "g-1", FirstName: "Ada", IDNumber: "AB123"}, nil
		})

	res, err := svc.SearchByIDNumber(context.Background(), " ab123 ")
	require.NoError(t, err)
	assert.Equal(t, "g-1", res.ID)

	_, err = svc.SearchByIDNumber(context.Background(), "  ")
	assert.ErrorIs(t, err, failure.ErrInvalidArgument)
}

func TestGuestService_Update(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, "grace@example.com", fields[model.FieldEmail])

			return 1, nil
		})

	err := svc.Update(context.Background(), dto.UpdateGuestRequest{Email: "Grace@Example.com"}, "g-1")
	assert.NoError(t, err)
}

func TestGuestService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		exist    bool
		bookings int
		wantErr  error
	}{
		{name: "guest without bookings is deleted", exist: true},
		{name: "guest with bookings is kept", exist: true, bookings: 1, wantErr: failure.ErrInvalidStatus},
		{name: "missing guest", wantErr: failure.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := newService(t)

			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exist, nil)

			if tt.exist {
				repo.EXPECT().CountBookings(gomock.Any(), "g-1").Return(tt.bookings, nil)
			}

			if tt.wantErr == nil {
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(context.Background(), "g-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}
