package http

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricsOnce sync.Once
	metricsErr  error

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInflight        *prometheus.GaugeVec

	// Domain metrics
	crossTenantCopiesTotal *prometheus.CounterVec
	contactMessagesTotal   *prometheus.CounterVec
)

// MetricsConfig agrupa dependencias para exponer /metrics.
type MetricsConfig struct {
	Registry prometheus.Registerer
	Pool     func() *pgxpool.Pool
}

// RegisterMetrics inicializa las métricas HTTP y de dominio y, si hay pool,
// registra un collector de conexiones. Devuelve el handler para /metrics.
func RegisterMetrics(cfg MetricsConfig) (http.Handler, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	metricsOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Número total de requests procesadas",
		}, []string{"method", "path", "status"})

		httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de los requests HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"})

		httpInflight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests en vuelo por método y ruta",
		}, []string{"method", "path"})

		crossTenantCopiesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cross_tenant_copies_total",
			Help: "Copias cross-tenant aplicadas por tipo de entidad y resolución",
		}, []string{"entity_type", "resolution"})

		contactMessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Mensajes de contacto por resultado",
		}, []string{"result"}) // result: sent|rejected|failed

		for _, col := range []prometheus.Collector{
			httpRequestsTotal,
			httpRequestDuration,
			httpInflight,
			crossTenantCopiesTotal,
			contactMessagesTotal,
		} {
			if err := registerCollector(registry, col); err != nil {
				metricsErr = err
				return
			}
		}
	})
	if metricsErr != nil {
		return nil, metricsErr
	}

	if cfg.Pool != nil {
		if err := registerCollector(registry, newDBPoolCollector(cfg.Pool)); err != nil {
			return nil, err
		}
	}

	// Usamos el gatherer global por compatibilidad, ya que las métricas se registran allí.
	return promhttp.Handler(), nil
}

// WithMetrics instrumenta requests HTTP con métricas Prometheus.
func WithMetrics(next http.Handler) http.Handler {
	if next == nil {
		return nil
	}
	if httpRequestsTotal == nil || httpRequestDuration == nil || httpInflight == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := strings.ToUpper(r.Method)
		pathLabel := normalizePath(r.URL.Path)

		httpInflight.WithLabelValues(method, pathLabel).Inc()
		start := time.Now()

		rec := &metricsRecorder{ResponseWriter: w}
		defer func() {
			httpInflight.WithLabelValues(method, pathLabel).Dec()
			duration := time.Since(start).Seconds()
			httpRequestDuration.WithLabelValues(method, pathLabel).Observe(duration)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			httpRequestsTotal.WithLabelValues(method, pathLabel, strconv.Itoa(status)).Inc()
		}()

		next.ServeHTTP(rec, r)
	})
}

type metricsRecorder struct {
	http.ResponseWriter
	status int
}

func (m *metricsRecorder) WriteHeader(code int) {
	if m.status == 0 {
		m.status = code
	}
	m.ResponseWriter.WriteHeader(code)
}

func (m *metricsRecorder) Write(b []byte) (int, error) {
	if m.status == 0 {
		m.status = http.StatusOK
	}
	return m.ResponseWriter.Write(b)
}

// RecordCrossTenantCopy registra una copia cross-tenant aplicada.
func RecordCrossTenantCopy(entityType, resolution string) {
	if crossTenantCopiesTotal != nil {
		crossTenantCopiesTotal.WithLabelValues(entityType, resolution).Inc()
	}
}

// RecordContactMessage registra el resultado de un mensaje de contacto.
func RecordContactMessage(result string) {
	if contactMessagesTotal != nil {
		contactMessagesTotal.WithLabelValues(result).Inc()
	}
}

// registerCollector registra el collector en el registry indicado, ignorando duplicados.
func registerCollector(reg prometheus.Registerer, collector prometheus.Collector) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

// normalizePath colapsa IDs numéricos para no explotar la cardinalidad.
func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	clean := strings.SplitN(p, "?", 2)[0]
	segments := strings.Split(clean, "/")
	var out []string
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if _, err := strconv.Atoi(seg); err == nil {
			out = append(out, ":id")
		} else {
			out = append(out, seg)
		}
	}
	if len(out) == 0 {
		return "/"
	}
	return "/" + strings.Join(out, "/")
}

// dbPoolCollector expone gauges del pool de Postgres.
type dbPoolCollector struct {
	pool func() *pgxpool.Pool

	acquiredDesc *prometheus.Desc
	idleDesc     *prometheus.Desc
	totalDesc    *prometheus.Desc
}

func newDBPoolCollector(pool func() *pgxpool.Pool) *dbPoolCollector {
	return &dbPoolCollector{
		pool:         pool,
		acquiredDesc: prometheus.NewDesc("pg_pool_acquired", "Conexiones adquiridas", nil, nil),
		idleDesc:     prometheus.NewDesc("pg_pool_idle", "Conexiones inactivas", nil, nil),
		totalDesc:    prometheus.NewDesc("pg_pool_total", "Conexiones totales", nil, nil),
	}
}

func (c *dbPoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquiredDesc
	ch <- c.idleDesc
	ch <- c.totalDesc
}

func (c *dbPoolCollector) Collect(ch chan<- prometheus.Metric) {
	pool := c.pool()
	if pool == nil {
		return
	}
	stat := pool.Stat()
	if stat == nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.acquiredDesc, prometheus.GaugeValue, float64(stat.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idleDesc, prometheus.GaugeValue, float64(stat.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.totalDesc, prometheus.GaugeValue, float64(stat.TotalConns()))
}
