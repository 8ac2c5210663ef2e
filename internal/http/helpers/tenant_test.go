package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dropDatabas3/folio/internal/tenant"
)

func adminResolver(t *testing.T) *tenant.Resolver {
	t.Helper()
	r, err := tenant.NewResolver(map[tenant.Tenant]tenant.Brand{
		tenant.Internal: {Hosts: []string{"briantpm.com"}, Label: "briantpm.com"},
		tenant.External: {Hosts: []string{"brianthomastpm.com"}, Label: "brianthomastpm.com"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestAdminTenantPriority(t *testing.T) {
	res := adminResolver(t)

	// Header gana sobre cookie y host.
	req := httptest.NewRequest("GET", "http://briantpm.com/api/admin/content/projects", nil)
	req.Header.Set(tenant.HeaderAdminTenant, "external")
	req.AddCookie(&http.Cookie{Name: tenant.CookieAdminTenant, Value: "internal"})
	if got := AdminTenant(req, res); got != tenant.External {
		t.Fatalf("header debe ganar, got %s", got)
	}

	// Cookie gana sobre host.
	req = httptest.NewRequest("GET", "http://briantpm.com/api/admin/content/projects", nil)
	req.AddCookie(&http.Cookie{Name: tenant.CookieAdminTenant, Value: "external"})
	if got := AdminTenant(req, res); got != tenant.External {
		t.Fatalf("cookie debe ganar sobre host, got %s", got)
	}

	// Sin header ni cookie: host.
	req = httptest.NewRequest("GET", "http://brianthomastpm.com/api/admin/content/projects", nil)
	if got := AdminTenant(req, res); got != tenant.External {
		t.Fatalf("fallback a host, got %s", got)
	}
}

func TestAdminTenantIgnoresInvalidValues(t *testing.T) {
	res := adminResolver(t)

	// Header inválido cae a la cookie.
	req := httptest.NewRequest("GET", "http://briantpm.com/x", nil)
	req.Header.Set(tenant.HeaderAdminTenant, "both")
	req.AddCookie(&http.Cookie{Name: tenant.CookieAdminTenant, Value: "external"})
	if got := AdminTenant(req, res); got != tenant.External {
		t.Fatalf("header inválido debe ignorarse, got %s", got)
	}

	// Header y cookie inválidos caen al host.
	req = httptest.NewRequest("GET", "http://briantpm.com/x", nil)
	req.Header.Set(tenant.HeaderAdminTenant, "nope")
	req.AddCookie(&http.Cookie{Name: tenant.CookieAdminTenant, Value: "garbage"})
	if got := AdminTenant(req, res); got != tenant.Internal {
		t.Fatalf("fallback final a host, got %s", got)
	}
}
