package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/folio/internal/cache"
	admincontentctrl "github.com/dropDatabas3/folio/internal/http/controllers/admincontent"
	authctrl "github.com/dropDatabas3/folio/internal/http/controllers/auth"
	contactctrl "github.com/dropDatabas3/folio/internal/http/controllers/contact"
	contentctrl "github.com/dropDatabas3/folio/internal/http/controllers/content"
	crosstenantctrl "github.com/dropDatabas3/folio/internal/http/controllers/crosstenant"
	healthctrl "github.com/dropDatabas3/folio/internal/http/controllers/health"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/http/middlewares"
	authsvc "github.com/dropDatabas3/folio/internal/http/services/auth"
	contactsvc "github.com/dropDatabas3/folio/internal/http/services/contact"
	contentsvc "github.com/dropDatabas3/folio/internal/http/services/content"
	crosstenantsvc "github.com/dropDatabas3/folio/internal/http/services/crosstenant"
	updatessvc "github.com/dropDatabas3/folio/internal/http/services/updates"
	"github.com/dropDatabas3/folio/internal/security/password"
	"github.com/dropDatabas3/folio/internal/security/session"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/store/memory"
	"github.com/dropDatabas3/folio/internal/tenant"
)

// app levanta el stack completo (router + middlewares globales) sobre el
// store en memoria, como lo arma cmd/folio pero sin listener.
type app struct {
	handler http.Handler
	repo    *memory.Store
	issuer  *session.Issuer
}

func newApp(t *testing.T) *app {
	t.Helper()

	repo := memory.New()
	resolver, err := tenant.NewResolver(map[tenant.Tenant]tenant.Brand{
		tenant.Internal: {Hosts: []string{"briantpm.com"}, Label: "briantpm.com"},
		tenant.External: {Hosts: []string{"brianthomastpm.com"}, Label: "brianthomastpm.com"},
	})
	require.NoError(t, err)

	issuer := session.NewIssuer("router-test-secret", time.Hour)
	cookieOpts := helpers.SessionCookieOpts{Name: "folio_session", SameSite: http.SameSiteLaxMode, TTL: time.Hour}

	content := contentsvc.New(repo, cache.NewMemory(time.Minute), time.Minute)
	updates := updatessvc.New(repo)
	crossTenant := crosstenantsvc.New(repo, nil)
	auth := authsvc.New(repo, issuer)
	contact := contactsvc.New(nil, "hola@briantpm.com")

	api := New(Deps{
		Content:      contentctrl.NewController(content, updates),
		AdminContent: admincontentctrl.NewController(content, resolver),
		CrossTenant:  crosstenantctrl.NewController(crossTenant, resolver),
		Auth:         authctrl.NewController(auth, resolver, cookieOpts),
		Contact:      contactctrl.NewController(contact, resolver),
		Health:       healthctrl.NewController(repo, "test"),
		RequireAdmin: middlewares.RequireAdmin(middlewares.AuthConfig{
			Issuer:     issuer,
			CookieName: cookieOpts.Name,
		}),
	})

	handler := middlewares.Chain(api,
		middlewares.WithRequestID(),
		middlewares.WithTenant(middlewares.TenantConfig{
			Resolver:     resolver,
			AdminBaseURL: "https://briantpm.com",
		}),
	)

	return &app{handler: handler, repo: repo, issuer: issuer}
}

func (a *app) do(t *testing.T, method, url string, body any, mod func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if mod != nil {
		mod(req)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *app) loginToken(t *testing.T) string {
	t.Helper()
	hash, err := password.Hash(password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}, "Sup3r-Secreta!")
	require.NoError(t, err)
	_, err = a.repo.CreateAdminUser(nil, &core.AdminUser{Email: "admin@briantpm.com", PasswordHash: hash})
	require.NoError(t, err)

	rec := a.do(t, "POST", "http://briantpm.com/api/admin/auth/login", map[string]string{
		"email":    "admin@briantpm.com",
		"password": "Sup3r-Secreta!",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthz(t *testing.T) {
	a := newApp(t)
	rec := a.do(t, "GET", "http://briantpm.com/healthz", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicContentIsTenantScoped(t *testing.T) {
	a := newApp(t)
	_, err := a.repo.CreateProject(nil, tenant.External, &core.Project{Title: "ext only"})
	require.NoError(t, err)

	// Host externo ve su proyecto.
	rec := a.do(t, "GET", "http://brianthomastpm.com/api/content/projects", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "external", rec.Header().Get(tenant.HeaderTenant))
	require.Contains(t, rec.Body.String(), "ext only")

	// Host interno no.
	rec = a.do(t, "GET", "http://briantpm.com/api/content/projects", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "internal", rec.Header().Get(tenant.HeaderTenant))
	require.NotContains(t, rec.Body.String(), "ext only")
}

func TestPublicContentRejectsUnknownType(t *testing.T) {
	a := newApp(t)
	rec := a.do(t, "GET", "http://briantpm.com/api/content/users", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRequiresSession(t *testing.T) {
	a := newApp(t)
	rec := a.do(t, "GET", "http://briantpm.com/api/admin/content/projects", nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExternalHostAdminRedirects(t *testing.T) {
	a := newApp(t)
	rec := a.do(t, "GET", "http://brianthomastpm.com/api/admin/content/projects", nil, nil)
	require.Equal(t, http.StatusPermanentRedirect, rec.Code)
	require.Equal(t, "https://briantpm.com/api/admin/content/projects", rec.Header().Get("Location"))
}

func TestAdminCRUDAndCrossTenantFlow(t *testing.T) {
	a := newApp(t)
	tok := a.loginToken(t)
	asAdmin := func(adminTenant string) func(*http.Request) {
		return func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+tok)
			if adminTenant != "" {
				r.Header.Set(tenant.HeaderAdminTenant, adminTenant)
			}
		}
	}

	// Crear un proyecto en external vía header X-Admin-Tenant (el host es interno).
	rec := a.do(t, "POST", "http://briantpm.com/api/admin/content/projects", map[string]any{
		"title": "Shared", "description": "remote",
	}, asAdmin("external"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Trabajando sobre internal, el fetch cross-tenant lo trae.
	rec = a.do(t, "GET", "http://briantpm.com/api/admin/cross-tenant/projects", nil, asAdmin("internal"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"sourceTenant":"external"`)
	require.Contains(t, rec.Body.String(), "Shared")

	// Resolve create: copia a internal con identidad propia.
	rec = a.do(t, "POST", "http://briantpm.com/api/admin/cross-tenant/resolve", map[string]any{
		"entityType": "projects", "sourceId": created.ID, "resolution": "skip",
	}, asAdmin("internal"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"applied":true`)

	// El público de internal ahora lo ve.
	rec = a.do(t, "GET", "http://briantpm.com/api/content/projects", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Shared")
}

func TestAdminSeesZeroRowsAsNotFound(t *testing.T) {
	a := newApp(t)
	tok := a.loginToken(t)

	// El proyecto existe en external; pedirlo operando sobre internal es 404.
	id, err := a.repo.CreateProject(nil, tenant.External, &core.Project{Title: "hidden"})
	require.NoError(t, err)

	url := "http://briantpm.com/api/admin/content/projects/" + strconv.FormatInt(id, 10)
	rec := a.do(t, "GET", url, nil, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tok)
		r.Header.Set(tenant.HeaderAdminTenant, "internal")
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectTenantPersistsCookie(t *testing.T) {
	a := newApp(t)
	tok := a.loginToken(t)

	rec := a.do(t, "POST", "http://briantpm.com/api/admin/tenant/select", map[string]string{
		"tenant": "external",
	}, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) })
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == tenant.CookieAdminTenant {
			found = c
		}
	}
	require.NotNil(t, found, "falta la cookie de selección")
	require.Equal(t, "external", found.Value)

	// Rechaza valores fuera del dominio.
	rec = a.do(t, "POST", "http://briantpm.com/api/admin/tenant/select", map[string]string{
		"tenant": "both",
	}, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+tok) })
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
