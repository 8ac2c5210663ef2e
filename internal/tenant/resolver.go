package tenant

import (
	"fmt"
	"net"
	"strings"
)

// Brand agrupa lo que el resolver necesita saber de una marca: sus hosts
// exactos y la etiqueta visible en el panel de admin.
type Brand struct {
	Hosts []string
	Label string
}

// Resolver mapea hostnames a tenants con una tabla explícita host → tenant.
// Se valida al construir: una config rota debe fallar en el arranque, no
// degradar silenciosamente en producción.
type Resolver struct {
	hosts  map[string]Tenant
	labels map[Tenant]string
	// AllowQueryOverride habilita ?tenant= (solo entornos no-prod).
	AllowQueryOverride bool
}

// NewResolver construye el resolver y valida el mapa de hosts.
// Reglas:
//   - cada tenant necesita al menos un host
//   - un host no puede pertenecer a los dos tenants
func NewResolver(brands map[Tenant]Brand) (*Resolver, error) {
	r := &Resolver{
		hosts:  make(map[string]Tenant),
		labels: make(map[Tenant]string),
	}
	for _, t := range []Tenant{Internal, External} {
		b, ok := brands[t]
		if !ok || len(b.Hosts) == 0 {
			return nil, fmt.Errorf("tenant %q: no hosts configured", t)
		}
		r.labels[t] = b.Label
		for _, h := range b.Hosts {
			h = normalizeHost(h)
			if h == "" {
				return nil, fmt.Errorf("tenant %q: empty host", t)
			}
			if prev, dup := r.hosts[h]; dup && prev != t {
				return nil, fmt.Errorf("host %q mapped to both %q and %q", h, prev, t)
			}
			r.hosts[h] = t
		}
	}
	return r, nil
}

// FromHost resuelve el tenant para un hostname.
// Política fail-open: localhost, loopback y cualquier host no mapeado caen en
// Internal — el sitio público nunca deja de renderizar por un host inesperado.
func (r *Resolver) FromHost(host string) Tenant {
	h := normalizeHost(host)
	if t, ok := r.hosts[h]; ok {
		return t
	}
	return Internal
}

// Resolve aplica FromHost más el override por query param cuando está
// habilitado. Un valor que no sea un literal válido se ignora en silencio.
func (r *Resolver) Resolve(host, queryOverride string) Tenant {
	t := r.FromHost(host)
	if r.AllowQueryOverride && queryOverride != "" {
		if o, ok := Parse(queryOverride); ok {
			return o
		}
	}
	return t
}

// Label devuelve la etiqueta visible de la marca (ej: "briantpm.com").
func (r *Resolver) Label(t Tenant) string {
	if l, ok := r.labels[t]; ok && l != "" {
		return l
	}
	return string(t)
}

// normalizeHost baja a minúsculas y descarta el puerto si viene en host:port.
func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
