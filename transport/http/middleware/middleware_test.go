package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"suitespot/config"
	otelMocks "suitespot/infras/otel/mocks"
	"suitespot/shared"
	"suitespot/shared/cache"
	cacheMocks "suitespot/shared/cache/mocks"
	"suitespot/shared/constant"
	"suitespot/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newMiddleware(t *testing.T, enable bool) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))

	return middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache), redisCache
}

func TestRequestContext(t *testing.T) {
	mw, _ := newMiddleware(t, false)

	var operator, requestID string

	handler := mw.RequestContext(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		operator = shared.Operator(r.Context())
		requestID, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("operator header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
		req.Header.Set(constant.RequestHeaderOperator, "front-desk-1")
		req.Header.Set(constant.RequestHeaderRequestID, "req-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "front-desk-1", operator)
		assert.Equal(t, "req-1", requestID)
		assert.Equal(t, "req-1", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("defaults", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

		assert.Equal(t, constant.SystemUser, operator)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("disabled", func(t *testing.T) {
		mw, _ := newMiddleware(t, false)
		rec := httptest.NewRecorder()

		mw.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("first request opens a window", func(t *testing.T) {
		mw, redisCache := newMiddleware(t, true)
		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		mw.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		mw, redisCache := newMiddleware(t, true)
		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, value any) error {
				count, _ := value.(*int)
				*count = 2

				return nil
			})

		rec := httptest.NewRecorder()
		mw.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		mw, redisCache := newMiddleware(t, true)
		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		rec := httptest.NewRecorder()
		mw.RateLimit()(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
