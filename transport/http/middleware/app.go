package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/cors"

	"reserva/config"
	"reserva/infras/otel"
	"reserva/shared/cache"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
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

// statusRecorder captures the status code written by downstream handlers so
// the tracing span can record it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
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

		scope.SetAttributes(map[string]any{
			"http.status_code": recorder.status,
		})
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	corsConfig := a.config.App.CORS
	if !corsConfig.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowCredentials: corsConfig.AllowCredentials,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedOrigins:   corsConfig.AllowedOrigins,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})(next)
}
