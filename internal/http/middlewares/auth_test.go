package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dropDatabas3/folio/internal/security/session"
)

func authGate(t *testing.T) (Middleware, *session.Issuer) {
	t.Helper()
	issuer := session.NewIssuer("test-secret-please-ignore", time.Hour)
	return RequireAdmin(AuthConfig{
		Issuer:     issuer,
		CookieName: "folio_session",
		SignInPath: "/admin/sign-in",
	}), issuer
}

func okHandler() (http.Handler, *bool) {
	var called bool
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireAdminAPIWithoutSession(t *testing.T) {
	gate, _ := authGate(t)
	next, called := okHandler()
	h := gate(next)

	req := httptest.NewRequest("GET", "/api/admin/content/projects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Fatal("falta WWW-Authenticate")
	}
	if *called {
		t.Fatal("el handler no debe ejecutarse sin sesión")
	}
}

func TestRequireAdminPageRedirectsToSignIn(t *testing.T) {
	gate, _ := authGate(t)
	next, _ := okHandler()
	h := gate(next)

	req := httptest.NewRequest("GET", "/admin/projects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status=%d, want 307", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/admin/sign-in?next=%2Fadmin%2Fprojects" {
		t.Fatalf("Location=%q", got)
	}
}

func TestRequireAdminBearerToken(t *testing.T) {
	gate, issuer := authGate(t)
	next, called := okHandler()
	h := gate(next)

	tok, err := issuer.Issue("1", "admin@briantpm.com")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/api/admin/content/projects", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !*called {
		t.Fatalf("status=%d called=%v", rec.Code, *called)
	}
}

func TestRequireAdminSessionCookie(t *testing.T) {
	gate, issuer := authGate(t)
	next, _ := okHandler()
	h := gate(next)

	tok, err := issuer.Issue("1", "admin@briantpm.com")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "folio_session", Value: tok})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rec.Code)
	}
}

func TestRequireAdminRejectsGarbageToken(t *testing.T) {
	gate, _ := authGate(t)
	next, called := okHandler()
	h := gate(next)

	req := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized || *called {
		t.Fatalf("status=%d called=%v", rec.Code, *called)
	}
}

func TestRequireAdminRejectsForeignSignature(t *testing.T) {
	gate, _ := authGate(t)
	other := session.NewIssuer("other-secret-entirely", time.Hour)
	tok, err := other.Issue("1", "admin@briantpm.com")
	if err != nil {
		t.Fatal(err)
	}

	next, _ := okHandler()
	h := gate(next)
	req := httptest.NewRequest("GET", "/api/admin/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
}
