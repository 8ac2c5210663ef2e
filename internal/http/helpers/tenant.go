package helpers

import (
	"net/http"

	"github.com/dropDatabas3/folio/internal/tenant"
)

// AdminTenant resuelve sobre qué tenant opera un request del panel de admin.
// Prioridad:
//  1. Header X-Admin-Tenant (clientes API / CLI)
//  2. Cookie adminSelectedTenant (selector del panel)
//  3. Tenant del hostname
//
// Valores inválidos en header o cookie se ignoran y se sigue al siguiente nivel.
func AdminTenant(r *http.Request, res *tenant.Resolver) tenant.Tenant {
	if t, ok := tenant.Parse(r.Header.Get(tenant.HeaderAdminTenant)); ok {
		return t
	}
	if c, err := r.Cookie(tenant.CookieAdminTenant); err == nil {
		if t, ok := tenant.Parse(c.Value); ok {
			return t
		}
	}
	return res.FromHost(r.Host)
}
