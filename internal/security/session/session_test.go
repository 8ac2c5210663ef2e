package session

import (
	"testing"
	"time"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	iss := NewIssuer("super-secret", time.Hour)

	tok, err := iss.Issue("7", "admin@briantpm.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "admin@briantpm.com" || claims.Subject != "7" {
		t.Fatalf("claims=%+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("falta jti")
	}
	if claims.Issuer != "folio" {
		t.Fatalf("iss=%q", claims.Issuer)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewIssuer("secret-a", time.Hour).Issue("1", "a@b.co")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewIssuer("secret-b", time.Hour).Verify(tok); err != ErrInvalid {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := &Issuer{secret: []byte("s"), iss: "folio", ttl: -time.Minute}
	tok, err := iss.Issue("1", "a@b.co")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := iss.Verify(tok); err != ErrExpired {
		t.Fatalf("err=%v, want ErrExpired", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	iss := NewIssuer("s", time.Hour)
	for _, raw := range []string{"", "x", "a.b.c"} {
		if _, err := iss.Verify(raw); err != ErrInvalid {
			t.Fatalf("Verify(%q) err=%v, want ErrInvalid", raw, err)
		}
	}
}

func TestDefaultTTL(t *testing.T) {
	if got := NewIssuer("s", 0).TTL(); got != 12*time.Hour {
		t.Fatalf("ttl=%v, want 12h", got)
	}
}
