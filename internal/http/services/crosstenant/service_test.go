package crosstenant

import (
	"context"
	"testing"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/store/memory"
	"github.com/dropDatabas3/folio/internal/tenant"
)

func seed(t *testing.T) (*memory.Store, *Service) {
	t.Helper()
	repo := memory.New()
	return repo, New(repo, nil)
}

func TestFetchReturnsOppositeTenantData(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	// Admin trabaja sobre internal; el dato vive en external.
	if _, err := repo.CreateProject(ctx, tenant.External, &core.Project{Title: "External Project"}); err != nil {
		t.Fatal(err)
	}

	other, data, err := svc.Fetch(ctx, tenant.Internal, "projects", nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if other != tenant.External {
		t.Fatalf("other=%s, want external", other)
	}
	list, ok := data.([]core.Project)
	if !ok || len(list) != 1 || list[0].Title != "External Project" {
		t.Fatalf("data=%#v", data)
	}
}

func TestFetchByIDMissIsNotAnError(t *testing.T) {
	ctx := context.Background()
	_, svc := seed(t)

	id := int64(999)
	other, data, err := svc.Fetch(ctx, tenant.Internal, "projects", &id)
	if err != nil {
		t.Fatalf("fetch miss: %v", err)
	}
	if other != tenant.External || data != nil {
		t.Fatalf("other=%s data=%#v, want external/nil", other, data)
	}
}

func TestFetchUnknownEntityType(t *testing.T) {
	_, svc := seed(t)
	if _, _, err := svc.Fetch(context.Background(), tenant.Internal, "nope", nil); err != ErrUnknownEntityType {
		t.Fatalf("err=%v, want ErrUnknownEntityType", err)
	}
}

func TestResolveCreateWithoutConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	srcID, _ := repo.CreateProject(ctx, tenant.External, &core.Project{Title: "Solo"})

	applied, targetID, err := svc.Resolve(ctx, tenant.Internal, "projects", srcID, ResolutionSkip, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !applied || targetID == 0 {
		t.Fatalf("applied=%v targetID=%d", applied, targetID)
	}

	got, err := repo.GetProject(ctx, tenant.Internal, targetID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID == srcID {
		t.Fatal("la copia no debe reusar el id de origen")
	}
	if got.Title != "Solo" || got.Tenant != tenant.Internal {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveSkipOnConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	srcID, _ := repo.CreateProject(ctx, tenant.External, &core.Project{Title: "Shared", Description: "remote"})
	localID, _ := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "Shared", Description: "local"})

	applied, targetID, err := svc.Resolve(ctx, tenant.Internal, "projects", srcID, ResolutionSkip, "")
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Fatal("skip con conflicto no debe aplicar nada")
	}
	if targetID != localID {
		t.Fatalf("targetID=%d, want %d", targetID, localID)
	}

	got, _ := repo.GetProject(ctx, tenant.Internal, localID)
	if got.Description != "local" {
		t.Fatalf("skip pisó la fila local: %+v", got)
	}
}

func TestResolveReplaceOnConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	srcID, _ := repo.CreateProject(ctx, tenant.External, &core.Project{Title: "Shared", Description: "remote"})
	localID, _ := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "Shared", Description: "local"})

	applied, targetID, err := svc.Resolve(ctx, tenant.Internal, "projects", srcID, ResolutionReplace, "")
	if err != nil {
		t.Fatal(err)
	}
	if !applied || targetID != localID {
		t.Fatalf("applied=%v targetID=%d, want true/%d", applied, targetID, localID)
	}

	got, _ := repo.GetProject(ctx, tenant.Internal, localID)
	if got.Description != "remote" {
		t.Fatalf("replace no copió los datos: %+v", got)
	}
	if got.Tenant != tenant.Internal {
		t.Fatalf("replace cambió el tenant: %+v", got)
	}
}

func TestResolveCreateNewOnConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	srcID, _ := repo.CreateProject(ctx, tenant.External, &core.Project{Title: "Shared"})
	if _, err := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "Shared"}); err != nil {
		t.Fatal(err)
	}

	// Sin newName: sufijo por defecto.
	applied, targetID, err := svc.Resolve(ctx, tenant.Internal, "projects", srcID, ResolutionCreateNew, "")
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("create-new debe aplicar")
	}
	got, _ := repo.GetProject(ctx, tenant.Internal, targetID)
	if got.Title != "Shared (copy)" {
		t.Fatalf("title=%q, want %q", got.Title, "Shared (copy)")
	}

	// Con newName explícito.
	_, targetID2, err := svc.Resolve(ctx, tenant.Internal, "projects", srcID, ResolutionCreateNew, "Renamed")
	if err != nil {
		t.Fatal(err)
	}
	got2, _ := repo.GetProject(ctx, tenant.Internal, targetID2)
	if got2.Title != "Renamed" {
		t.Fatalf("title=%q, want Renamed", got2.Title)
	}
}

func TestResolveSkillsReplaceSwapsSkillSet(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	srcID, _ := repo.CreateSkillCategory(ctx, tenant.External, &core.SkillCategory{
		Name:   "Backend",
		Skills: []core.Skill{{Name: "Go", Level: 5}, {Name: "Rust", Level: 3}},
	})
	localID, _ := repo.CreateSkillCategory(ctx, tenant.Internal, &core.SkillCategory{
		Name:   "Backend",
		Skills: []core.Skill{{Name: "PHP", Level: 2}},
	})

	applied, targetID, err := svc.Resolve(ctx, tenant.Internal, "skills", srcID, ResolutionReplace, "")
	if err != nil {
		t.Fatal(err)
	}
	if !applied || targetID != localID {
		t.Fatalf("applied=%v targetID=%d", applied, targetID)
	}

	got, _ := repo.GetSkillCategory(ctx, tenant.Internal, localID)
	if len(got.Skills) != 2 {
		t.Fatalf("skills=%d, want 2 (set reemplazado completo)", len(got.Skills))
	}
	for _, sk := range got.Skills {
		if sk.Name == "PHP" {
			t.Fatal("replace dejó skills viejas")
		}
		if sk.CategoryID != localID {
			t.Fatalf("skill apunta a otra categoría: %+v", sk)
		}
	}
}

func TestResolvePersonalSingleton(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	if err := repo.UpsertPersonalInfo(ctx, tenant.External, &core.PersonalInfo{FullName: "Remote"}); err != nil {
		t.Fatal(err)
	}

	// create-new no tiene sentido para un singleton.
	if _, _, err := svc.Resolve(ctx, tenant.Internal, "personal", 0, ResolutionCreateNew, ""); err != ErrBadResolution {
		t.Fatalf("err=%v, want ErrBadResolution", err)
	}

	// Sin fila local, skip copia igual (no hay conflicto).
	applied, _, err := svc.Resolve(ctx, tenant.Internal, "personal", 0, ResolutionSkip, "")
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("sin fila local la copia debe aplicar")
	}
	got, _ := repo.GetPersonalInfo(ctx, tenant.Internal)
	if got.FullName != "Remote" {
		t.Fatalf("got %+v", got)
	}

	// Con fila local, skip no toca nada.
	if err := repo.UpsertPersonalInfo(ctx, tenant.Internal, &core.PersonalInfo{FullName: "Local"}); err != nil {
		t.Fatal(err)
	}
	applied, _, err = svc.Resolve(ctx, tenant.Internal, "personal", 0, ResolutionSkip, "")
	if err != nil {
		t.Fatal(err)
	}
	if applied {
		t.Fatal("skip con fila local no debe aplicar")
	}
	got, _ = repo.GetPersonalInfo(ctx, tenant.Internal)
	if got.FullName != "Local" {
		t.Fatalf("skip pisó la fila local: %+v", got)
	}

	// replace sí pisa.
	applied, _, err = svc.Resolve(ctx, tenant.Internal, "personal", 0, ResolutionReplace, "")
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("replace debe aplicar")
	}
	got, _ = repo.GetPersonalInfo(ctx, tenant.Internal)
	if got.FullName != "Remote" {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveAchievementsAlwaysCreate(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	srcID, _ := repo.CreateAchievement(ctx, tenant.External, &core.KeyAchievement{Title: "Launch", Year: 2024})
	if _, err := repo.CreateAchievement(ctx, tenant.Internal, &core.KeyAchievement{Title: "Launch", Year: 2023}); err != nil {
		t.Fatal(err)
	}

	// Aunque haya un logro con el mismo título, siempre crea uno nuevo.
	applied, targetID, err := svc.Resolve(ctx, tenant.Internal, "achievements", srcID, ResolutionSkip, "")
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("achievements siempre crean")
	}
	list, _ := repo.ListAchievements(ctx, tenant.Internal)
	if len(list) != 2 {
		t.Fatalf("logros=%d, want 2", len(list))
	}
	got, _ := repo.GetAchievement(ctx, tenant.Internal, targetID)
	if got.Year != 2024 {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveBadInputs(t *testing.T) {
	ctx := context.Background()
	_, svc := seed(t)

	if _, _, err := svc.Resolve(ctx, tenant.Internal, "nope", 1, ResolutionSkip, ""); err != ErrUnknownEntityType {
		t.Fatalf("err=%v, want ErrUnknownEntityType", err)
	}
	if _, _, err := svc.Resolve(ctx, tenant.Internal, "projects", 1, "merge", ""); err != ErrBadResolution {
		t.Fatalf("err=%v, want ErrBadResolution", err)
	}
	// Fuente inexistente en el opuesto.
	if _, _, err := svc.Resolve(ctx, tenant.Internal, "projects", 42, ResolutionSkip, ""); err != core.ErrNotFound {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestFindConflict(t *testing.T) {
	ctx := context.Background()
	repo, svc := seed(t)

	if _, err := repo.CreateProject(ctx, tenant.Internal, &core.Project{Title: "Taken"}); err != nil {
		t.Fatal(err)
	}

	_, found, err := svc.FindConflict(ctx, tenant.Internal, "projects", "taken")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("conflicto esperado (match case-insensitive)")
	}

	_, found, err = svc.FindConflict(ctx, tenant.Internal, "projects", "Free")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("no debería haber conflicto")
	}

	// achievements nunca conflictúan.
	_, found, err = svc.FindConflict(ctx, tenant.Internal, "achievements", "Taken")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("achievements no tienen índice natural")
	}
}
