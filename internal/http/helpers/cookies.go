package helpers

import (
	"net/http"
	"time"

	"github.com/dropDatabas3/folio/internal/tenant"
)

// SessionCookieOpts parametriza la cookie de sesión del admin.
type SessionCookieOpts struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	TTL      time.Duration
}

func SetSessionCookie(w http.ResponseWriter, opts SessionCookieOpts, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    token,
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

func ClearSessionCookie(w http.ResponseWriter, opts SessionCookieOpts) {
	http.SetCookie(w, &http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// SetAdminTenantCookie persiste la selección de tenant del panel por un año.
// No es HttpOnly: el frontend la lee para pintar el selector.
func SetAdminTenantCookie(w http.ResponseWriter, t tenant.Tenant, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     tenant.CookieAdminTenant,
		Value:    t.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
