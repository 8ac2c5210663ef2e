package middlewares

import (
	"net/http"
	"strconv"

	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/rate"
)

// WithRateLimit limita por IP del cliente usando el limiter dado.
// Si el backend del limiter falla, deja pasar (fail-open): un Redis caído
// no debe tirar el formulario de contacto.
func WithRateLimit(limiter rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				logger.From(r.Context()).Warn("rate limiter unavailable", logger.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			if !res.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
				helpers.WriteError(w, helpers.ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
