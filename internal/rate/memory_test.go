package rate

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterWindow(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(3, time.Hour)

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(ctx, "ip:1.2.3.4")
		if err != nil {
			t.Fatal(err)
		}
		if !res.Allowed {
			t.Fatalf("hit %d debería pasar", i)
		}
		if res.Remaining != int64(3-i) {
			t.Fatalf("hit %d: remaining=%d, want %d", i, res.Remaining, 3-i)
		}
	}

	res, err := l.Allow(ctx, "ip:1.2.3.4")
	if err != nil {
		t.Fatal(err)
	}
	if res.Allowed {
		t.Fatal("cuarto hit debe bloquearse")
	}
	if res.Remaining != 0 {
		t.Fatalf("remaining=%d, want 0", res.Remaining)
	}
	if res.RetryAfter <= 0 {
		t.Fatalf("RetryAfter=%v, debe ser positivo", res.RetryAfter)
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(1, time.Hour)

	if res, _ := l.Allow(ctx, "a"); !res.Allowed {
		t.Fatal("primer hit de a debe pasar")
	}
	if res, _ := l.Allow(ctx, "a"); res.Allowed {
		t.Fatal("segundo hit de a debe bloquearse")
	}
	if res, _ := l.Allow(ctx, "b"); !res.Allowed {
		t.Fatal("la cuota de b es independiente")
	}
}

func TestMemoryLimiterWindowReset(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(1, 50*time.Millisecond)

	if res, _ := l.Allow(ctx, "k"); !res.Allowed {
		t.Fatal("primer hit debe pasar")
	}
	if res, _ := l.Allow(ctx, "k"); res.Allowed {
		t.Fatal("segundo hit en la misma ventana debe bloquearse")
	}

	time.Sleep(60 * time.Millisecond)

	if res, _ := l.Allow(ctx, "k"); !res.Allowed {
		t.Fatal("ventana nueva debe resetear la cuota")
	}
}
