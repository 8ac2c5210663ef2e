// seed: crea el admin inicial y contenido de ejemplo para las dos marcas.
// Idempotente: si el admin ya existe no pisa nada, y el contenido solo se
// carga cuando el tenant está vacío.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dropDatabas3/folio/internal/config"
	"github.com/dropDatabas3/folio/internal/security/password"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/store/pg"
	"github.com/dropDatabas3/folio/internal/tenant"
)

func strEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.dev")

	var (
		cfg *config.Config
		err error
	)
	if configPath := strEnv("CONFIG_PATH", ""); configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Storage.DSN == "" {
		log.Fatal("no hay DSN (STORAGE_DSN o config.yaml)")
	}

	ctx := context.Background()
	store, err := pg.New(ctx, cfg.Storage.DSN, pg.Config{})
	if err != nil {
		log.Fatalf("pg: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// ─── Admin ───
	adminEmail := strEnv("SEED_ADMIN_EMAIL", "admin@briantpm.com")
	adminPass := strEnv("SEED_ADMIN_PASSWORD", "ChangeMe-Now-1!")

	if _, err := store.GetAdminUserByEmail(ctx, adminEmail); errors.Is(err, core.ErrNotFound) {
		policy := password.Policy{MinLength: 12, RequireUpper: true, RequireLower: true, RequireDigit: true}
		if ok, reasons := policy.Validate(adminPass); !ok {
			log.Fatalf("SEED_ADMIN_PASSWORD débil: %v", reasons)
		}
		hash, err := password.Hash(password.Default, adminPass)
		if err != nil {
			log.Fatalf("hash: %v", err)
		}
		id, err := store.CreateAdminUser(ctx, &core.AdminUser{Email: adminEmail, PasswordHash: hash})
		if err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("admin creado: %s (id=%d)", adminEmail, id)
	} else if err != nil {
		log.Fatalf("get admin: %v", err)
	} else {
		log.Printf("admin ya existe: %s", adminEmail)
	}

	// ─── Contenido de ejemplo ───
	for _, t := range []tenant.Tenant{tenant.Internal, tenant.External} {
		if err := seedTenant(ctx, store, t); err != nil {
			log.Fatalf("seed %s: %v", t, err)
		}
	}

	log.Println("seed listo")
}

func seedTenant(ctx context.Context, store *pg.Store, t tenant.Tenant) error {
	existing, err := store.ListProjects(ctx, t)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("%s: ya tiene contenido, salteando", t)
		return nil
	}

	// La marca interna es la técnica, la externa la de gestión. Mismo dueño,
	// dos relatos.
	var personal core.PersonalInfo
	var project core.Project
	switch t {
	case tenant.Internal:
		personal = core.PersonalInfo{
			FullName: "Brian T.",
			Headline: "Backend Engineer",
			Bio:      "Sistemas distribuidos, APIs y tooling.",
			Email:    "hola@briantpm.com",
			Location: "Buenos Aires, AR",
		}
		project = core.Project{
			Title:       "folio",
			Description: "CMS multi-marca para portfolios personales.",
			Tags:        []string{"go", "postgres", "redis"},
			Featured:    true,
		}
	default:
		personal = core.PersonalInfo{
			FullName: "Brian Thomas",
			Headline: "Technical Product Manager",
			Bio:      "Del discovery al delivery, con foco en plataformas.",
			Email:    "hello@brianthomastpm.com",
			Location: "Buenos Aires, AR",
		}
		project = core.Project{
			Title:       "Platform Revamp",
			Description: "Roadmap y rollout de una plataforma interna.",
			Tags:        []string{"product", "platform"},
			Featured:    true,
		}
	}

	if err := store.UpsertPersonalInfo(ctx, t, &personal); err != nil {
		return err
	}
	if _, err := store.CreateProject(ctx, t, &project); err != nil {
		return err
	}

	start := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	if _, err := store.CreateExperience(ctx, t, &core.WorkExperience{
		Company:   "Acme Corp",
		Role:      "Senior Engineer",
		Summary:   "Plataforma de pagos.",
		StartDate: start,
	}); err != nil {
		return err
	}

	if _, err := store.CreateTechStackItem(ctx, t, &core.TechStackItem{
		Name: "Go", Category: "backend", Level: 5,
	}); err != nil {
		return err
	}

	if _, err := store.CreateSkillCategory(ctx, t, &core.SkillCategory{
		Name: "Backend",
		Skills: []core.Skill{
			{Name: "Go", Level: 5},
			{Name: "PostgreSQL", Level: 4},
		},
	}); err != nil {
		return err
	}

	log.Printf("%s: contenido de ejemplo cargado", t)
	return nil
}
