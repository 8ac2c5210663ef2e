package middlewares

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dropDatabas3/folio/internal/observability/logger"
)

// =================================================================================
// STATUS RECORDER
// =================================================================================

// statusRecorder captura el status code y bytes escritos de la respuesta.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.wroteHeader {
		return // Evitar llamadas múltiples
	}
	s.status = code
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.status = http.StatusOK
		s.wroteHeader = true
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// =================================================================================
// LOGGING MIDDLEWARE
// =================================================================================

// WithLogging registra cada request usando el logger singleton con campos
// estructurados e inyecta un logger "scoped" en el contexto con
// request_id, method, path y tenant.
//
// Nivel según status: >=500 error, >=400 warn, resto info.
func WithLogging() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Obtener request ID (ya debería estar en header por WithRequestID)
			requestID := w.Header().Get("X-Request-ID")
			if requestID == "" {
				requestID = GetRequestID(r.Context())
			}

			// Crear logger scoped para este request
			reqLog := logger.L().With(
				logger.RequestID(requestID),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Tenant(GetTenant(r.Context()).String()),
			)

			// Inyectar logger en contexto para uso en controllers/services
			ctx := logger.ToContext(r.Context(), reqLog)

			// Capturar respuesta
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			dur := time.Since(start)

			switch {
			case rec.status >= 500:
				reqLog.Error("request failed",
					logger.Status(rec.status),
					logger.Bytes(rec.bytes),
					logger.DurationMs(dur.Milliseconds()),
				)
			case rec.status >= 400:
				reqLog.Warn("request completed with client error",
					logger.Status(rec.status),
					logger.Bytes(rec.bytes),
					logger.DurationMs(dur.Milliseconds()),
				)
			default:
				reqLog.Info("request completed",
					logger.Status(rec.status),
					logger.Bytes(rec.bytes),
					logger.DurationMs(dur.Milliseconds()),
				)
			}
		})
	}
}

// clientIP extrae la IP real del cliente considerando proxies.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return strings.TrimSpace(rip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
