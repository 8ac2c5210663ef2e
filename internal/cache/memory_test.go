package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	if _, err := m.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("get miss: err=%v, want ErrNotFound", err)
	}

	if err := m.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	got, err := m.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("got=%q err=%v", got, err)
	}

	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(ctx, "k"); err != ErrNotFound {
		t.Fatalf("tras delete: err=%v, want ErrNotFound", err)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	if err := m.Set(ctx, "short", []byte("v"), 30*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(50 * time.Millisecond)
	if _, err := m.Get(ctx, "short"); err != ErrNotFound {
		t.Fatalf("clave vencida: err=%v, want ErrNotFound", err)
	}
}

func TestMemoryDeletePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	_ = m.Set(ctx, "content:internal:projects", []byte("a"), 0)
	_ = m.Set(ctx, "content:internal:skills", []byte("b"), 0)
	_ = m.Set(ctx, "content:external:projects", []byte("c"), 0)

	if err := m.DeletePrefix(ctx, "content:internal:"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Get(ctx, "content:internal:projects"); err != ErrNotFound {
		t.Fatal("prefijo interno debía borrarse")
	}
	if _, err := m.Get(ctx, "content:internal:skills"); err != ErrNotFound {
		t.Fatal("prefijo interno debía borrarse")
	}
	if _, err := m.Get(ctx, "content:external:projects"); err != nil {
		t.Fatal("el otro tenant no debía tocarse")
	}
}

func TestNewDispatch(t *testing.T) {
	c, err := New(Config{Kind: "memory", DefaultTTL: time.Minute})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*Memory); !ok {
		t.Fatalf("kind memory: got %T", c)
	}

	// kind vacío también cae en memoria.
	c, err = New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*Memory); !ok {
		t.Fatalf("kind vacío: got %T", c)
	}

	if _, err := New(Config{Kind: "memcached"}); err == nil {
		t.Fatal("kind desconocido debe fallar")
	}
}
