package validation

import (
	"strings"
	"testing"
)

func TestValidEntityType(t *testing.T) {
	for _, e := range EntityTypes {
		if !ValidEntityType(e) {
			t.Fatalf("expected valid: %q", e)
		}
	}
	invalids := []string{"", "Projects", "PROJECTS", "project", "users", "tech_stack"}
	for _, e := range invalids {
		if ValidEntityType(e) {
			t.Fatalf("expected invalid: %q", e)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valids := []string{
		"a@b.co",
		"hola@briantpm.com",
		"  spaced@briantpm.com  ", // se trimea
		"first.last+tag@sub.domain.com",
	}
	for _, v := range valids {
		if !ValidEmail(v) {
			t.Fatalf("expected valid: %q", v)
		}
	}
	invalids := []string{
		"",
		"no-at",
		"two@@at.com",
		"space in@local.com",
		"@lead.com",
		"trail@",
		"nodot@domain",
		strings.Repeat("a", 250) + "@b.co", // > 254
	}
	for _, v := range invalids {
		if ValidEmail(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}

func TestValidContactMessage(t *testing.T) {
	if bad := ValidContactMessage("Ana", "ana@x.com", "Hola", "Mensaje"); len(bad) != 0 {
		t.Fatalf("payload válido, bad=%v", bad)
	}

	bad := ValidContactMessage("", "nope", "", "")
	want := map[string]bool{"name": true, "email": true, "message": true}
	if len(bad) != len(want) {
		t.Fatalf("bad=%v", bad)
	}
	for _, f := range bad {
		if !want[f] {
			t.Fatalf("campo inesperado %q en %v", f, bad)
		}
	}

	// Límites de largo.
	if bad := ValidContactMessage(strings.Repeat("n", MaxContactNameLen+1), "a@b.co", "s", "m"); len(bad) != 1 || bad[0] != "name" {
		t.Fatalf("bad=%v", bad)
	}
	if bad := ValidContactMessage("n", "a@b.co", strings.Repeat("s", MaxContactSubjectLen+1), "m"); len(bad) != 1 || bad[0] != "subject" {
		t.Fatalf("bad=%v", bad)
	}
	if bad := ValidContactMessage("n", "a@b.co", "s", strings.Repeat("m", MaxContactMessageLen+1)); len(bad) != 1 || bad[0] != "message" {
		t.Fatalf("bad=%v", bad)
	}
}
