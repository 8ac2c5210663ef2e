package content

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dropDatabas3/folio/internal/cache"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/store/memory"
	"github.com/dropDatabas3/folio/internal/tenant"
)

func newSvc(t *testing.T) (*memory.Store, *Service) {
	t.Helper()
	repo := memory.New()
	return repo, New(repo, cache.NewMemory(time.Minute), time.Minute)
}

func TestListByTypeCachesPerTenant(t *testing.T) {
	ctx := context.Background()
	repo, svc := newSvc(t)

	if _, err := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "one"}); err != nil {
		t.Fatal(err)
	}

	raw, err := svc.ListByType(ctx, tenant.Internal, "projects")
	if err != nil {
		t.Fatal(err)
	}
	var list []core.Project
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Title != "one" {
		t.Fatalf("list=%+v", list)
	}

	// Escritura directa al repo (sin pasar por el service): la lectura sigue
	// viniendo del cache.
	if _, err := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "two"}); err != nil {
		t.Fatal(err)
	}
	raw, err = svc.ListByType(ctx, tenant.Internal, "projects")
	if err != nil {
		t.Fatal(err)
	}
	list = nil
	_ = json.Unmarshal(raw, &list)
	if len(list) != 1 {
		t.Fatalf("cache debía servir la versión vieja, got %d items", len(list))
	}

	// El otro tenant tiene su propia key: no ve nada.
	raw, err = svc.ListByType(ctx, tenant.External, "projects")
	if err != nil {
		t.Fatal(err)
	}
	list = nil
	_ = json.Unmarshal(raw, &list)
	if len(list) != 0 {
		t.Fatalf("external debía estar vacío, got %d", len(list))
	}
}

func TestWritesInvalidateCache(t *testing.T) {
	ctx := context.Background()
	_, svc := newSvc(t)

	// Prime del cache con el listado vacío.
	if _, err := svc.ListByType(ctx, tenant.Internal, "projects"); err != nil {
		t.Fatal(err)
	}

	id, err := svc.CreateProject(ctx, tenant.Internal, &core.Project{Title: "fresh"})
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("id vacío")
	}

	raw, err := svc.ListByType(ctx, tenant.Internal, "projects")
	if err != nil {
		t.Fatal(err)
	}
	var list []core.Project
	_ = json.Unmarshal(raw, &list)
	if len(list) != 1 || list[0].Title != "fresh" {
		t.Fatalf("create debía invalidar el cache, list=%+v", list)
	}
}

func TestListByTypePersonalSingleton(t *testing.T) {
	ctx := context.Background()
	repo, svc := newSvc(t)

	// Sin fila: data null, no error.
	raw, err := svc.ListByType(ctx, tenant.Internal, "personal")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "null" {
		t.Fatalf("raw=%s, want null", raw)
	}

	if err := repo.UpsertPersonalInfo(ctx, tenant.Internal, &core.PersonalInfo{FullName: "Brian"}); err != nil {
		t.Fatal(err)
	}
	// La escritura fue directa al repo, así que invalidamos a mano.
	if err := svc.UpsertPersonalInfo(ctx, tenant.Internal, &core.PersonalInfo{FullName: "Brian"}); err != nil {
		t.Fatal(err)
	}

	raw, err = svc.ListByType(ctx, tenant.Internal, "personal")
	if err != nil {
		t.Fatal(err)
	}
	var p core.PersonalInfo
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatal(err)
	}
	if p.FullName != "Brian" {
		t.Fatalf("got %+v", p)
	}
}

func TestListByTypeUnknown(t *testing.T) {
	_, svc := newSvc(t)
	if _, err := svc.ListByType(context.Background(), tenant.Internal, "bogus"); err != core.ErrInvalid {
		t.Fatalf("err=%v, want ErrInvalid", err)
	}
}

func TestServiceWithoutCache(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	svc := New(repo, nil, 0)

	if _, err := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "nc"}); err != nil {
		t.Fatal(err)
	}
	raw, err := svc.ListByType(ctx, tenant.Internal, "projects")
	if err != nil {
		t.Fatal(err)
	}
	var list []core.Project
	_ = json.Unmarshal(raw, &list)
	if len(list) != 1 {
		t.Fatalf("sin cache también funciona, got %d", len(list))
	}
}
