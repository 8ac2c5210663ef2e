// Package tenant define las dos identidades de marca que comparten la base
// de datos y las reglas para resolver cuál atiende cada request.
package tenant

// Tenant es el discriminador de marca. Exactamente dos valores válidos.
type Tenant string

const (
	// Internal es la marca principal (default para hosts desconocidos).
	Internal Tenant = "internal"
	// External es la marca secundaria.
	External Tenant = "external"
)

// Headers y cookie del contrato HTTP.
const (
	HeaderTenant      = "X-Tenant"
	HeaderAdminTenant = "X-Admin-Tenant"
	CookieAdminTenant = "adminSelectedTenant"
	QueryOverride     = "tenant"
)

// Parse valida un literal de tenant. Solo acepta match exacto.
func Parse(s string) (Tenant, bool) {
	switch Tenant(s) {
	case Internal:
		return Internal, true
	case External:
		return External, true
	}
	return "", false
}

// Valid indica si t es uno de los dos valores permitidos.
func (t Tenant) Valid() bool {
	return t == Internal || t == External
}

// Opposite es la involución internal ↔ external. Total: nunca falla.
func (t Tenant) Opposite() Tenant {
	if t == External {
		return Internal
	}
	return External
}

func (t Tenant) String() string { return string(t) }
