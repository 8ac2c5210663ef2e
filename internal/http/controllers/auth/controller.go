// Package auth contiene login/logout del panel y el selector de tenant.
package auth

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/http/middlewares"
	authsvc "github.com/dropDatabas3/folio/internal/http/services/auth"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/tenant"
	"github.com/dropDatabas3/folio/internal/validation"
)

type Controller struct {
	auth     *authsvc.Service
	resolver *tenant.Resolver
	cookie   helpers.SessionCookieOpts
}

func NewController(auth *authsvc.Service, resolver *tenant.Resolver, cookie helpers.SessionCookieOpts) *Controller {
	return &Controller{auth: auth, resolver: resolver, cookie: cookie}
}

// Login maneja POST /api/admin/auth/login
func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.LoginRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	if !validation.ValidEmail(req.Email) || req.Password == "" {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("email and password are required"))
		return
	}

	tok, user, err := c.auth.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err == authsvc.ErrBadCredentials {
		helpers.WriteError(w, helpers.ErrUnauthorized.WithDetail("invalid credentials"))
		return
	}
	if err != nil {
		logger.From(ctx).Error("login failed", logger.Layer("controller"), logger.Op("auth.Login"), logger.Err(err))
		helpers.WriteError(w, helpers.ErrInternalServerError)
		return
	}

	helpers.SetSessionCookie(w, c.cookie, tok)
	helpers.WriteJSON(w, http.StatusOK, dto.LoginResponse{
		Token:     tok,
		ExpiresIn: int64(c.cookie.TTL.Seconds()),
		Email:     user.Email,
	})
}

// Logout maneja POST /api/admin/auth/logout
func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	helpers.ClearSessionCookie(w, c.cookie)
	w.WriteHeader(http.StatusNoContent)
}

// Me maneja GET /api/admin/auth/me — devuelve la sesión y el tenant activo.
func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	claims := middlewares.GetSession(r.Context())
	if claims == nil {
		helpers.WriteError(w, helpers.ErrUnauthorized)
		return
	}
	active := helpers.AdminTenant(r, c.resolver)
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"email":  claims.Email,
		"tenant": active.String(),
		"label":  c.resolver.Label(active),
	})
}

// ActiveTenant maneja GET /api/admin/tenant — tenant activo del panel más
// las dos marcas, para poblar el selector.
func (c *Controller) ActiveTenant(w http.ResponseWriter, r *http.Request) {
	active := helpers.AdminTenant(r, c.resolver)
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"tenant": active.String(),
		"brands": map[string]string{
			tenant.Internal.String(): c.resolver.Label(tenant.Internal),
			tenant.External.String(): c.resolver.Label(tenant.External),
		},
	})
}

// SelectTenant maneja POST /api/admin/tenant/select — persiste la selección
// en la cookie del panel por un año.
func (c *Controller) SelectTenant(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectTenantRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	t, ok := tenant.Parse(req.Tenant)
	if !ok {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("tenant must be internal or external"))
		return
	}

	helpers.SetAdminTenantCookie(w, t, c.cookie.Secure)
	logger.From(r.Context()).Info("admin tenant selected", logger.Tenant(t.String()))
	helpers.WriteJSON(w, http.StatusOK, dto.SelectTenantResponse{
		Tenant: t.String(),
		Label:  c.resolver.Label(t),
	})
}
