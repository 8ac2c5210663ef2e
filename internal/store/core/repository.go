package core

import (
	"context"
	"time"

	"github.com/dropDatabas3/folio/internal/tenant"
)

// Repository es el contrato de acceso a datos tenant-scoped.
//
// Invariantes que toda implementación debe cumplir:
//   - Las lecturas filtran por el tenant recibido; nunca devuelven filas ajenas.
//   - Las escrituras estampan el tenant recibido.
//   - Update/Delete por id agregan el filtro de tenant: un id que existe pero
//     pertenece al otro tenant afecta cero filas y devuelve ErrNotFound.
type Repository interface {
	Ping(ctx context.Context) error
	Close()

	// ─── Projects ───
	ListProjects(ctx context.Context, t tenant.Tenant) ([]Project, error)
	GetProject(ctx context.Context, t tenant.Tenant, id int64) (*Project, error)
	FindProjectByTitle(ctx context.Context, t tenant.Tenant, title string) (*Project, error)
	CreateProject(ctx context.Context, t tenant.Tenant, p *Project) (int64, error)
	UpdateProject(ctx context.Context, t tenant.Tenant, p *Project) error
	DeleteProject(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Work experience ───
	ListExperience(ctx context.Context, t tenant.Tenant) ([]WorkExperience, error)
	GetExperience(ctx context.Context, t tenant.Tenant, id int64) (*WorkExperience, error)
	FindExperienceByCompany(ctx context.Context, t tenant.Tenant, company string) (*WorkExperience, error)
	CreateExperience(ctx context.Context, t tenant.Tenant, e *WorkExperience) (int64, error)
	UpdateExperience(ctx context.Context, t tenant.Tenant, e *WorkExperience) error
	DeleteExperience(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Education ───
	ListEducation(ctx context.Context, t tenant.Tenant) ([]Education, error)
	GetEducation(ctx context.Context, t tenant.Tenant, id int64) (*Education, error)
	FindEducationBySchool(ctx context.Context, t tenant.Tenant, school string) (*Education, error)
	CreateEducation(ctx context.Context, t tenant.Tenant, e *Education) (int64, error)
	UpdateEducation(ctx context.Context, t tenant.Tenant, e *Education) error
	DeleteEducation(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Tech stack ───
	ListTechStack(ctx context.Context, t tenant.Tenant) ([]TechStackItem, error)
	GetTechStackItem(ctx context.Context, t tenant.Tenant, id int64) (*TechStackItem, error)
	FindTechStackItemByName(ctx context.Context, t tenant.Tenant, name string) (*TechStackItem, error)
	CreateTechStackItem(ctx context.Context, t tenant.Tenant, i *TechStackItem) (int64, error)
	UpdateTechStackItem(ctx context.Context, t tenant.Tenant, i *TechStackItem) error
	DeleteTechStackItem(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Skills (categoría + filas hijas, escritura transaccional) ───
	ListSkillCategories(ctx context.Context, t tenant.Tenant) ([]SkillCategory, error)
	GetSkillCategory(ctx context.Context, t tenant.Tenant, id int64) (*SkillCategory, error)
	FindSkillCategoryByName(ctx context.Context, t tenant.Tenant, name string) (*SkillCategory, error)
	CreateSkillCategory(ctx context.Context, t tenant.Tenant, c *SkillCategory) (int64, error)
	// ReplaceSkillCategory actualiza la categoría y reemplaza sus skills en
	// una sola transacción.
	ReplaceSkillCategory(ctx context.Context, t tenant.Tenant, c *SkillCategory) error
	DeleteSkillCategory(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Personal info (una fila por tenant) ───
	GetPersonalInfo(ctx context.Context, t tenant.Tenant) (*PersonalInfo, error)
	UpsertPersonalInfo(ctx context.Context, t tenant.Tenant, p *PersonalInfo) error

	// ─── Process strategies ───
	ListProcessStrategies(ctx context.Context, t tenant.Tenant) ([]ProcessStrategy, error)
	GetProcessStrategy(ctx context.Context, t tenant.Tenant, id int64) (*ProcessStrategy, error)
	FindProcessStrategyByName(ctx context.Context, t tenant.Tenant, name string) (*ProcessStrategy, error)
	CreateProcessStrategy(ctx context.Context, t tenant.Tenant, s *ProcessStrategy) (int64, error)
	UpdateProcessStrategy(ctx context.Context, t tenant.Tenant, s *ProcessStrategy) error
	DeleteProcessStrategy(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Expertise radar ───
	ListExpertiseRadar(ctx context.Context, t tenant.Tenant) ([]ExpertiseRadarItem, error)
	GetExpertiseRadarItem(ctx context.Context, t tenant.Tenant, id int64) (*ExpertiseRadarItem, error)
	FindExpertiseRadarItemByAxis(ctx context.Context, t tenant.Tenant, axis string) (*ExpertiseRadarItem, error)
	CreateExpertiseRadarItem(ctx context.Context, t tenant.Tenant, i *ExpertiseRadarItem) (int64, error)
	UpdateExpertiseRadarItem(ctx context.Context, t tenant.Tenant, i *ExpertiseRadarItem) error
	DeleteExpertiseRadarItem(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Key achievements ───
	ListAchievements(ctx context.Context, t tenant.Tenant) ([]KeyAchievement, error)
	GetAchievement(ctx context.Context, t tenant.Tenant, id int64) (*KeyAchievement, error)
	CreateAchievement(ctx context.Context, t tenant.Tenant, a *KeyAchievement) (int64, error)
	UpdateAchievement(ctx context.Context, t tenant.Tenant, a *KeyAchievement) error
	DeleteAchievement(ctx context.Context, t tenant.Tenant, id int64) error

	// ─── Admin users (sin tenant) ───
	GetAdminUserByEmail(ctx context.Context, email string) (*AdminUser, error)
	CreateAdminUser(ctx context.Context, u *AdminUser) (int64, error)

	// LatestRevision devuelve el updated_at más reciente del contenido del
	// tenant. Alimenta el endpoint de update-check.
	LatestRevision(ctx context.Context, t tenant.Tenant) (time.Time, error)
}
