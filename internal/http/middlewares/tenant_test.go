package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dropDatabas3/folio/internal/tenant"
)

func testResolver(t *testing.T) *tenant.Resolver {
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

func tenantHandler(t *testing.T, cfg TenantConfig) (http.Handler, *tenant.Tenant) {
	t.Helper()
	var seen tenant.Tenant
	h := WithTenant(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetTenant(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestWithTenantStampsHeaderAndContext(t *testing.T) {
	cfg := TenantConfig{Resolver: testResolver(t), AdminBaseURL: "https://briantpm.com"}
	h, seen := tenantHandler(t, cfg)

	req := httptest.NewRequest("GET", "http://brianthomastpm.com/api/content/projects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if got := rec.Header().Get(tenant.HeaderTenant); got != "external" {
		t.Fatalf("X-Tenant=%q, want external", got)
	}
	if *seen != tenant.External {
		t.Fatalf("context tenant=%s, want external", *seen)
	}
}

func TestWithTenantUnknownHostDefaultsInternal(t *testing.T) {
	cfg := TenantConfig{Resolver: testResolver(t)}
	h, seen := tenantHandler(t, cfg)

	req := httptest.NewRequest("GET", "http://localhost:8080/api/content/projects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *seen != tenant.Internal {
		t.Fatalf("tenant=%s, want internal", *seen)
	}
	if got := rec.Header().Get(tenant.HeaderTenant); got != "internal" {
		t.Fatalf("X-Tenant=%q, want internal", got)
	}
}

func TestWithTenantRedirectsExternalAdmin(t *testing.T) {
	cfg := TenantConfig{Resolver: testResolver(t), AdminBaseURL: "https://briantpm.com"}
	h, _ := tenantHandler(t, cfg)

	for _, path := range []string{"/admin", "/admin/projects", "/api/admin/content/projects"} {
		req := httptest.NewRequest("GET", "http://brianthomastpm.com"+path+"?x=1", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusPermanentRedirect {
			t.Fatalf("%s: status=%d, want 308", path, rec.Code)
		}
		want := "https://briantpm.com" + path + "?x=1"
		if got := rec.Header().Get("Location"); got != want {
			t.Fatalf("%s: Location=%q, want %q", path, got, want)
		}
	}
}

func TestWithTenantInternalAdminNotRedirected(t *testing.T) {
	cfg := TenantConfig{Resolver: testResolver(t), AdminBaseURL: "https://briantpm.com"}
	h, _ := tenantHandler(t, cfg)

	req := httptest.NewRequest("GET", "http://briantpm.com/admin/projects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
}

func TestWithTenantNonAdminPathNotRedirected(t *testing.T) {
	cfg := TenantConfig{Resolver: testResolver(t), AdminBaseURL: "https://briantpm.com"}
	h, _ := tenantHandler(t, cfg)

	// "/administrator" no es un path de admin: prefijo con barra, no substring.
	req := httptest.NewRequest("GET", "http://brianthomastpm.com/administrator", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
}

func TestWithTenantQueryOverride(t *testing.T) {
	res := testResolver(t)
	res.AllowQueryOverride = true
	h, seen := tenantHandler(t, TenantConfig{Resolver: res})

	req := httptest.NewRequest("GET", "http://briantpm.com/api/content/projects?tenant=external", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *seen != tenant.External {
		t.Fatalf("tenant=%s, want external (override)", *seen)
	}

	// Deshabilitado (prod): el override se ignora.
	res.AllowQueryOverride = false
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if *seen != tenant.Internal {
		t.Fatalf("tenant=%s, want internal (override off)", *seen)
	}
}
