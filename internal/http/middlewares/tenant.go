package middlewares

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/tenant"
)

// TenantConfig configura el middleware de tenant.
type TenantConfig struct {
	Resolver *tenant.Resolver

	// AdminBaseURL: base absoluta del panel de admin (dominio del tenant
	// interno). Los paths /admin pedidos desde un host externo redirigen acá.
	AdminBaseURL string
}

// WithTenant resuelve el tenant del request y lo deja en el contexto y en el
// header de respuesta X-Tenant (el frontend lo usa para elegir branding).
//
// Si un host externo pide un path de admin, redirige 308 al panel en el
// dominio interno preservando path y query. El panel existe una sola vez.
func WithTenant(cfg TenantConfig) Middleware {
	base := strings.TrimRight(cfg.AdminBaseURL, "/")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t := cfg.Resolver.Resolve(r.Host, r.URL.Query().Get(tenant.QueryOverride))

			if t != tenant.Internal && isAdminPath(r.URL.Path) && base != "" {
				target := base + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				logger.From(r.Context()).Info("redirecting admin path to internal host",
					logger.Host(r.Host),
					logger.Path(r.URL.Path),
					logger.Tenant(t.String()),
				)
				// 308 preserva método y body
				http.Redirect(w, r, target, http.StatusPermanentRedirect)
				return
			}

			w.Header().Set(tenant.HeaderTenant, t.String())
			ctx := setTenant(r.Context(), t)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isAdminPath(p string) bool {
	return p == "/admin" || strings.HasPrefix(p, "/admin/") ||
		p == "/api/admin" || strings.HasPrefix(p, "/api/admin/")
}
