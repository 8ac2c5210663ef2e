package tenant

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]bool{
		"internal": true,
		"external": true,
		"":         false,
		"invalid":  false,
		"Internal": false, // match exacto, sin case folding
		"both":     false,
	}
	for in, want := range cases {
		if _, ok := Parse(in); ok != want {
			t.Fatalf("Parse(%q) ok=%v, want %v", in, ok, want)
		}
	}
}

func TestOppositeInvolution(t *testing.T) {
	for _, tn := range []Tenant{Internal, External} {
		if tn.Opposite() == tn {
			t.Fatalf("Opposite(%s) must differ from input", tn)
		}
		if got := tn.Opposite().Opposite(); got != tn {
			t.Fatalf("Opposite(Opposite(%s)) = %s, want %s", tn, got, tn)
		}
	}
}

func TestSelectionPriority(t *testing.T) {
	// cookie válida gana sobre el valor local
	if got := Selection("internal", "external"); got != Internal {
		t.Fatalf("cookie debe tener prioridad, got %s", got)
	}
	if got := Selection("external", "internal"); got != External {
		t.Fatalf("cookie debe tener prioridad, got %s", got)
	}
	// cookie inválida cae al valor local
	if got := Selection("invalid", "external"); got != External {
		t.Fatalf("fallback a local, got %s", got)
	}
	// ambos inválidos → internal
	if got := Selection("", ""); got != Internal {
		t.Fatalf("default internal, got %s", got)
	}
	if got := Selection("invalid", "nope"); got != Internal {
		t.Fatalf("default internal, got %s", got)
	}
}
