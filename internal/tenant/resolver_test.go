package tenant

import "testing"

func testResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(map[Tenant]Brand{
		Internal: {Hosts: []string{"briantpm.com", "www.briantpm.com", "localhost"}, Label: "briantpm.com"},
		External: {Hosts: []string{"brianthomastpm.com", "www.brianthomastpm.com"}, Label: "brianthomastpm.com"},
	})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestFromHost(t *testing.T) {
	r := testResolver(t)
	cases := map[string]Tenant{
		"brianthomastpm.com":      External,
		"www.brianthomastpm.com":  External,
		"BRIANTHOMASTPM.com":      External, // case-insensitive
		"brianthomastpm.com:3000": External, // puerto descartado
		"briantpm.com":            Internal,
		"localhost":               Internal,
		"localhost:8080":          Internal,
		"127.0.0.1":               Internal, // no mapeado → fail-open
		"example.org":             Internal, // no mapeado → fail-open
		"":                        Internal,
	}
	for host, want := range cases {
		if got := r.FromHost(host); got != want {
			t.Fatalf("FromHost(%q) = %s, want %s", host, got, want)
		}
	}
}

func TestResolveQueryOverride(t *testing.T) {
	r := testResolver(t)

	// override deshabilitado (prod): se ignora siempre
	if got := r.Resolve("briantpm.com", "external"); got != Internal {
		t.Fatalf("override deshabilitado, got %s", got)
	}

	r.AllowQueryOverride = true
	if got := r.Resolve("briantpm.com", "external"); got != External {
		t.Fatalf("override válido debe aplicar, got %s", got)
	}
	// literal inválido se ignora en silencio
	if got := r.Resolve("briantpm.com", "bogus"); got != Internal {
		t.Fatalf("override inválido debe ignorarse, got %s", got)
	}
	if got := r.Resolve("brianthomastpm.com", ""); got != External {
		t.Fatalf("sin override manda el host, got %s", got)
	}
}

func TestNewResolverValidation(t *testing.T) {
	// tenant sin hosts → error en el arranque
	_, err := NewResolver(map[Tenant]Brand{
		Internal: {Hosts: []string{"a.com"}},
	})
	if err == nil {
		t.Fatal("external sin hosts debe fallar")
	}

	// host duplicado entre tenants → error
	_, err = NewResolver(map[Tenant]Brand{
		Internal: {Hosts: []string{"same.com"}},
		External: {Hosts: []string{"same.com"}},
	})
	if err == nil {
		t.Fatal("host compartido entre tenants debe fallar")
	}
}
