package password

import (
	"strings"
	"testing"
)

// Parámetros livianos para que el test no queme memoria.
var testParams = Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func TestHashVerifyRoundtrip(t *testing.T) {
	phc, err := Hash(testParams, "correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(phc, "$argon2id$v=19$") {
		t.Fatalf("formato PHC inesperado: %q", phc)
	}
	if !Verify("correct horse battery staple", phc) {
		t.Fatal("verify debe aceptar la password original")
	}
	if Verify("wrong password", phc) {
		t.Fatal("verify debe rechazar otra password")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := Hash(testParams, ""); err == nil {
		t.Fatal("password vacía debe fallar")
	}
}

func TestHashSaltsDiffer(t *testing.T) {
	a, err := Hash(testParams, "same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Hash(testParams, "same")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("dos hashes de la misma password deben diferir (salt aleatoria)")
	}
}

func TestVerifyMalformedPHC(t *testing.T) {
	bads := []string{
		"",
		"plain-text",
		"$bcrypt$whatever",
		"$argon2id$v=18$m=8,t=1,p=1$c2FsdA$ZGs",  // versión incorrecta
		"$argon2id$v=19$m=8,t=1,p=1$!!notb64$ZGs", // salt inválida
		"$argon2id$v=19$m=8,t=1,p=1$c2FsdA",       // faltan partes
	}
	for _, phc := range bads {
		if Verify("x", phc) {
			t.Fatalf("phc malformado aceptado: %q", phc)
		}
	}
}

func TestPolicyValidate(t *testing.T) {
	p := Policy{MinLength: 12, RequireUpper: true, RequireLower: true, RequireDigit: true, RequireSymbol: true}

	if ok, reasons := p.Validate("Str0ng-Enough!"); !ok {
		t.Fatalf("password válida rechazada: %v", reasons)
	}

	ok, reasons := p.Validate("short")
	if ok {
		t.Fatal("password débil aceptada")
	}
	want := map[string]bool{"too_short": true, "missing_upper": true, "missing_digit": true, "missing_symbol": true}
	for _, r := range reasons {
		if !want[r] {
			t.Fatalf("razón inesperada %q en %v", r, reasons)
		}
	}
}
