package memory

import (
	"context"
	"testing"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

func TestTenantIsolation(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.CreateProject(ctx, tenant.Internal, &core.Project{Title: "folio"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// El tenant opuesto no ve la fila: ni get, ni update, ni delete.
	if _, err := s.GetProject(ctx, tenant.External, id); err != core.ErrNotFound {
		t.Fatalf("get cross-tenant: err=%v, want ErrNotFound", err)
	}
	if err := s.UpdateProject(ctx, tenant.External, &core.Project{ID: id, Title: "hack"}); err != core.ErrNotFound {
		t.Fatalf("update cross-tenant: err=%v, want ErrNotFound", err)
	}
	if err := s.DeleteProject(ctx, tenant.External, id); err != core.ErrNotFound {
		t.Fatalf("delete cross-tenant: err=%v, want ErrNotFound", err)
	}

	// El dueño sí.
	got, err := s.GetProject(ctx, tenant.Internal, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "folio" || got.Tenant != tenant.Internal {
		t.Fatalf("got %+v", got)
	}

	list, err := s.ListProjects(ctx, tenant.External)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("external list should be empty, got %d", len(list))
	}
}

func TestFindProjectByTitleCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.CreateProject(ctx, tenant.Internal, &core.Project{Title: "My Project"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.FindProjectByTitle(ctx, tenant.Internal, "  my project ")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Title != "My Project" {
		t.Fatalf("got %q", got.Title)
	}

	// Mismo título en el otro tenant no matchea.
	if _, err := s.FindProjectByTitle(ctx, tenant.External, "My Project"); err != core.ErrNotFound {
		t.Fatalf("cross-tenant find: err=%v, want ErrNotFound", err)
	}
}

func TestReplaceSkillCategory(t *testing.T) {
	ctx := context.Background()
	s := New()

	id, err := s.CreateSkillCategory(ctx, tenant.Internal, &core.SkillCategory{
		Name:   "Backend",
		Skills: []core.Skill{{Name: "Go", Level: 5}},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = s.ReplaceSkillCategory(ctx, tenant.Internal, &core.SkillCategory{
		ID:     id,
		Name:   "Backend",
		Skills: []core.Skill{{Name: "Rust", Level: 3}, {Name: "Go", Level: 5}},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.GetSkillCategory(ctx, tenant.Internal, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Skills) != 2 {
		t.Fatalf("skills=%d, want 2", len(got.Skills))
	}
	for _, sk := range got.Skills {
		if sk.CategoryID != id || sk.ID == 0 {
			t.Fatalf("skill mal vinculada: %+v", sk)
		}
	}
}

func TestPersonalInfoSingleton(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.GetPersonalInfo(ctx, tenant.Internal); err != core.ErrNotFound {
		t.Fatalf("empty get: err=%v, want ErrNotFound", err)
	}

	if err := s.UpsertPersonalInfo(ctx, tenant.Internal, &core.PersonalInfo{FullName: "Brian"}); err != nil {
		t.Fatal(err)
	}
	first, err := s.GetPersonalInfo(ctx, tenant.Internal)
	if err != nil {
		t.Fatal(err)
	}

	// Segundo upsert conserva el id: sigue siendo una sola fila por tenant.
	if err := s.UpsertPersonalInfo(ctx, tenant.Internal, &core.PersonalInfo{FullName: "Brian T."}); err != nil {
		t.Fatal(err)
	}
	second, err := s.GetPersonalInfo(ctx, tenant.Internal)
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Fatalf("id cambió: %d -> %d", first.ID, second.ID)
	}
	if second.FullName != "Brian T." {
		t.Fatalf("got %q", second.FullName)
	}

	// El otro tenant tiene su propia fila (o ninguna).
	if _, err := s.GetPersonalInfo(ctx, tenant.External); err != core.ErrNotFound {
		t.Fatalf("external get: err=%v, want ErrNotFound", err)
	}
}

func TestLatestRevisionAdvances(t *testing.T) {
	ctx := context.Background()
	s := New()

	before, err := s.LatestRevision(ctx, tenant.Internal)
	if err != nil {
		t.Fatal(err)
	}
	if !before.IsZero() {
		t.Fatalf("revision inicial debe ser cero, got %v", before)
	}

	if _, err := s.CreateAchievement(ctx, tenant.Internal, &core.KeyAchievement{Title: "Launch"}); err != nil {
		t.Fatal(err)
	}

	after, err := s.LatestRevision(ctx, tenant.Internal)
	if err != nil {
		t.Fatal(err)
	}
	if after.IsZero() {
		t.Fatal("revision debe avanzar tras una escritura")
	}

	// La escritura en internal no toca la revision de external.
	ext, err := s.LatestRevision(ctx, tenant.External)
	if err != nil {
		t.Fatal(err)
	}
	if !ext.IsZero() {
		t.Fatalf("external revision debe seguir en cero, got %v", ext)
	}
}

func TestAdminUserUniqueEmail(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.CreateAdminUser(ctx, &core.AdminUser{Email: "admin@briantpm.com", PasswordHash: "x"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateAdminUser(ctx, &core.AdminUser{Email: "ADMIN@briantpm.com", PasswordHash: "y"}); err != core.ErrConflict {
		t.Fatalf("duplicate email: err=%v, want ErrConflict", err)
	}
}
