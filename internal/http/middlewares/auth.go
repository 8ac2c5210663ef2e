package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/security/session"
)

// =================================================================================
// AUTHENTICATION MIDDLEWARES
// =================================================================================

// AuthConfig configura el gate de autenticación del panel.
type AuthConfig struct {
	Issuer     *session.Issuer
	CookieName string
	// SignInPath: adónde mandar requests de página sin sesión (ej: /admin/sign-in)
	SignInPath string
}

// RequireAdmin valida la sesión de admin. El token puede venir en la cookie
// de sesión o como Authorization: Bearer (CLI). Sin sesión válida:
//   - paths de API responden 401 JSON
//   - paths de página redirigen 307 al sign-in con ?next=<path original>
func RequireAdmin(cfg AuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				if c, err := r.Cookie(cfg.CookieName); err == nil {
					raw = c.Value
				}
			}

			if raw == "" {
				deny(w, r, cfg, "missing session")
				return
			}

			claims, err := cfg.Issuer.Verify(raw)
			if err != nil {
				logger.From(r.Context()).Warn("invalid admin session",
					logger.Err(err),
					logger.Path(r.URL.Path),
				)
				deny(w, r, cfg, err.Error())
				return
			}

			ctx := setSession(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
		return ""
	}
	return strings.TrimSpace(ah[len("Bearer "):])
}

func deny(w http.ResponseWriter, r *http.Request, cfg AuthConfig, detail string) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
		helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail(detail))
		return
	}
	target := cfg.SignInPath
	if target == "" {
		target = "/admin/sign-in"
	}
	target += "?next=" + url.QueryEscape(r.URL.Path)
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
