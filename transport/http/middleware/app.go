package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"suitespot/config"
	"suitespot/infras/otel"
	"suitespot/shared"
	"suitespot/shared/cache"
	"suitespot/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RequestContext(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// statusRecorder keeps the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": recorder.status,
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)
	})
}

// RequestContext stores the request id and the acting operator in the request context.
// A missing request id is generated and echoed back.
func (a *appMiddleware) RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRequestID))
		if requestID == constant.Empty {
			requestID = uuid.NewString()
		}

		w.Header().Set(constant.RequestHeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), constant.ContextKeyRequestID, requestID)

		if operator := strings.TrimSpace(r.Header.Get(constant.RequestHeaderOperator)); operator != constant.Empty {
			ctx = shared.WithOperator(ctx, operator)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
