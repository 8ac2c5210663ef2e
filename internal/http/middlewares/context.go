package middlewares

import (
	"context"

	"github.com/dropDatabas3/folio/internal/security/session"
	"github.com/dropDatabas3/folio/internal/tenant"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyTenant
	ctxKeySession
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, rid)
}

// GetRequestID devuelve el request ID del contexto ("" si no hay).
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

func setTenant(ctx context.Context, t tenant.Tenant) context.Context {
	return context.WithValue(ctx, ctxKeyTenant, t)
}

// GetTenant devuelve el tenant resuelto para el request.
// Si el middleware de tenant no corrió, devuelve el default.
func GetTenant(ctx context.Context) tenant.Tenant {
	if t, ok := ctx.Value(ctxKeyTenant).(tenant.Tenant); ok {
		return t
	}
	return tenant.Internal
}

func setSession(ctx context.Context, c *session.Claims) context.Context {
	return context.WithValue(ctx, ctxKeySession, c)
}

// GetSession devuelve las claims de la sesión de admin (nil si anónimo).
func GetSession(ctx context.Context) *session.Claims {
	v, _ := ctx.Value(ctxKeySession).(*session.Claims)
	return v
}
