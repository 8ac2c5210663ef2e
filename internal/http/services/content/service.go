// Package content implementa lecturas públicas (cacheadas) y escrituras de
// admin sobre el contenido del portfolio, siempre tenant-scoped.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dropDatabas3/folio/internal/cache"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

type Service struct {
	repo  core.Repository
	cache cache.Client
	ttl   time.Duration
}

func New(repo core.Repository, c cache.Client, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &Service{repo: repo, cache: c, ttl: ttl}
}

func cacheKey(t tenant.Tenant, entityType string) string {
	return fmt.Sprintf("content:%s:%s", t, entityType)
}

// invalidate borra el cache del tipo tocado en el tenant dado.
// Errores de cache se loguean y se ignoran: el origen de verdad es la DB.
func (s *Service) invalidate(ctx context.Context, t tenant.Tenant, entityType string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(t, entityType)); err != nil {
		logger.From(ctx).Warn("cache invalidation failed",
			logger.Tenant(t.String()),
			logger.EntityType(entityType),
			logger.Err(err),
		)
	}
}

// ListByType devuelve el listado público del tipo pedido, cacheado.
// El resultado es json.RawMessage para servirlo sin re-marshal.
func (s *Service) ListByType(ctx context.Context, t tenant.Tenant, entityType string) (json.RawMessage, error) {
	key := cacheKey(t, entityType)
	if s.cache != nil {
		if b, err := s.cache.Get(ctx, key); err == nil {
			return b, nil
		}
	}

	v, err := s.fetch(ctx, t, entityType)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
			logger.From(ctx).Warn("cache set failed", logger.EntityType(entityType), logger.Err(err))
		}
	}
	return b, nil
}

func (s *Service) fetch(ctx context.Context, t tenant.Tenant, entityType string) (any, error) {
	switch entityType {
	case "projects":
		return s.repo.ListProjects(ctx, t)
	case "experience":
		return s.repo.ListExperience(ctx, t)
	case "education":
		return s.repo.ListEducation(ctx, t)
	case "tech-stack":
		return s.repo.ListTechStack(ctx, t)
	case "skills":
		return s.repo.ListSkillCategories(ctx, t)
	case "personal":
		// única entidad singleton: sin fila todavía devolvemos null, no 404
		p, err := s.repo.GetPersonalInfo(ctx, t)
		if err == core.ErrNotFound {
			return nil, nil
		}
		return p, err
	case "expertise-radar":
		return s.repo.ListExpertiseRadar(ctx, t)
	case "process-strategies":
		return s.repo.ListProcessStrategies(ctx, t)
	case "achievements":
		return s.repo.ListAchievements(ctx, t)
	default:
		return nil, core.ErrInvalid
	}
}

// GetByID resuelve la lectura pública de un elemento puntual. Las lecturas
// por id no pasan por el cache: son baratas y poco frecuentes.
func (s *Service) GetByID(ctx context.Context, t tenant.Tenant, entityType string, id int64) (any, error) {
	switch entityType {
	case "projects":
		return s.repo.GetProject(ctx, t, id)
	case "experience":
		return s.repo.GetExperience(ctx, t, id)
	case "education":
		return s.repo.GetEducation(ctx, t, id)
	case "tech-stack":
		return s.repo.GetTechStackItem(ctx, t, id)
	case "skills":
		return s.repo.GetSkillCategory(ctx, t, id)
	case "personal":
		// singleton: el id se ignora
		return s.repo.GetPersonalInfo(ctx, t)
	case "expertise-radar":
		return s.repo.GetExpertiseRadarItem(ctx, t, id)
	case "process-strategies":
		return s.repo.GetProcessStrategy(ctx, t, id)
	case "achievements":
		return s.repo.GetAchievement(ctx, t, id)
	default:
		return nil, core.ErrInvalid
	}
}

// ─── Projects ───

func (s *Service) CreateProject(ctx context.Context, t tenant.Tenant, p *core.Project) (int64, error) {
	id, err := s.repo.CreateProject(ctx, t, p)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "projects")
	return id, nil
}

func (s *Service) UpdateProject(ctx context.Context, t tenant.Tenant, p *core.Project) error {
	if err := s.repo.UpdateProject(ctx, t, p); err != nil {
		return err
	}
	s.invalidate(ctx, t, "projects")
	return nil
}

func (s *Service) DeleteProject(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteProject(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "projects")
	return nil
}

func (s *Service) GetProject(ctx context.Context, t tenant.Tenant, id int64) (*core.Project, error) {
	return s.repo.GetProject(ctx, t, id)
}

// ─── Work experience ───

func (s *Service) CreateExperience(ctx context.Context, t tenant.Tenant, e *core.WorkExperience) (int64, error) {
	id, err := s.repo.CreateExperience(ctx, t, e)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "experience")
	return id, nil
}

func (s *Service) UpdateExperience(ctx context.Context, t tenant.Tenant, e *core.WorkExperience) error {
	if err := s.repo.UpdateExperience(ctx, t, e); err != nil {
		return err
	}
	s.invalidate(ctx, t, "experience")
	return nil
}

func (s *Service) DeleteExperience(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteExperience(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "experience")
	return nil
}

func (s *Service) GetExperience(ctx context.Context, t tenant.Tenant, id int64) (*core.WorkExperience, error) {
	return s.repo.GetExperience(ctx, t, id)
}

// ─── Education ───

func (s *Service) CreateEducation(ctx context.Context, t tenant.Tenant, e *core.Education) (int64, error) {
	id, err := s.repo.CreateEducation(ctx, t, e)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "education")
	return id, nil
}

func (s *Service) UpdateEducation(ctx context.Context, t tenant.Tenant, e *core.Education) error {
	if err := s.repo.UpdateEducation(ctx, t, e); err != nil {
		return err
	}
	s.invalidate(ctx, t, "education")
	return nil
}

func (s *Service) DeleteEducation(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteEducation(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "education")
	return nil
}

func (s *Service) GetEducation(ctx context.Context, t tenant.Tenant, id int64) (*core.Education, error) {
	return s.repo.GetEducation(ctx, t, id)
}

// ─── Tech stack ───

func (s *Service) CreateTechStackItem(ctx context.Context, t tenant.Tenant, i *core.TechStackItem) (int64, error) {
	id, err := s.repo.CreateTechStackItem(ctx, t, i)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "tech-stack")
	return id, nil
}

func (s *Service) UpdateTechStackItem(ctx context.Context, t tenant.Tenant, i *core.TechStackItem) error {
	if err := s.repo.UpdateTechStackItem(ctx, t, i); err != nil {
		return err
	}
	s.invalidate(ctx, t, "tech-stack")
	return nil
}

func (s *Service) DeleteTechStackItem(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteTechStackItem(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "tech-stack")
	return nil
}

func (s *Service) GetTechStackItem(ctx context.Context, t tenant.Tenant, id int64) (*core.TechStackItem, error) {
	return s.repo.GetTechStackItem(ctx, t, id)
}

// ─── Skills ───

func (s *Service) CreateSkillCategory(ctx context.Context, t tenant.Tenant, c *core.SkillCategory) (int64, error) {
	id, err := s.repo.CreateSkillCategory(ctx, t, c)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "skills")
	return id, nil
}

func (s *Service) ReplaceSkillCategory(ctx context.Context, t tenant.Tenant, c *core.SkillCategory) error {
	if err := s.repo.ReplaceSkillCategory(ctx, t, c); err != nil {
		return err
	}
	s.invalidate(ctx, t, "skills")
	return nil
}

func (s *Service) DeleteSkillCategory(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteSkillCategory(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "skills")
	return nil
}

func (s *Service) GetSkillCategory(ctx context.Context, t tenant.Tenant, id int64) (*core.SkillCategory, error) {
	return s.repo.GetSkillCategory(ctx, t, id)
}

// ─── Personal info ───

func (s *Service) UpsertPersonalInfo(ctx context.Context, t tenant.Tenant, p *core.PersonalInfo) error {
	if err := s.repo.UpsertPersonalInfo(ctx, t, p); err != nil {
		return err
	}
	s.invalidate(ctx, t, "personal")
	return nil
}

func (s *Service) GetPersonalInfo(ctx context.Context, t tenant.Tenant) (*core.PersonalInfo, error) {
	return s.repo.GetPersonalInfo(ctx, t)
}

// ─── Process strategies ───

func (s *Service) CreateProcessStrategy(ctx context.Context, t tenant.Tenant, st *core.ProcessStrategy) (int64, error) {
	id, err := s.repo.CreateProcessStrategy(ctx, t, st)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "process-strategies")
	return id, nil
}

func (s *Service) UpdateProcessStrategy(ctx context.Context, t tenant.Tenant, st *core.ProcessStrategy) error {
	if err := s.repo.UpdateProcessStrategy(ctx, t, st); err != nil {
		return err
	}
	s.invalidate(ctx, t, "process-strategies")
	return nil
}

func (s *Service) DeleteProcessStrategy(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteProcessStrategy(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "process-strategies")
	return nil
}

func (s *Service) GetProcessStrategy(ctx context.Context, t tenant.Tenant, id int64) (*core.ProcessStrategy, error) {
	return s.repo.GetProcessStrategy(ctx, t, id)
}

// ─── Expertise radar ───

func (s *Service) CreateExpertiseRadarItem(ctx context.Context, t tenant.Tenant, i *core.ExpertiseRadarItem) (int64, error) {
	id, err := s.repo.CreateExpertiseRadarItem(ctx, t, i)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "expertise-radar")
	return id, nil
}

func (s *Service) UpdateExpertiseRadarItem(ctx context.Context, t tenant.Tenant, i *core.ExpertiseRadarItem) error {
	if err := s.repo.UpdateExpertiseRadarItem(ctx, t, i); err != nil {
		return err
	}
	s.invalidate(ctx, t, "expertise-radar")
	return nil
}

func (s *Service) DeleteExpertiseRadarItem(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteExpertiseRadarItem(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "expertise-radar")
	return nil
}

func (s *Service) GetExpertiseRadarItem(ctx context.Context, t tenant.Tenant, id int64) (*core.ExpertiseRadarItem, error) {
	return s.repo.GetExpertiseRadarItem(ctx, t, id)
}

// ─── Key achievements ───

func (s *Service) CreateAchievement(ctx context.Context, t tenant.Tenant, a *core.KeyAchievement) (int64, error) {
	id, err := s.repo.CreateAchievement(ctx, t, a)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, t, "achievements")
	return id, nil
}

func (s *Service) UpdateAchievement(ctx context.Context, t tenant.Tenant, a *core.KeyAchievement) error {
	if err := s.repo.UpdateAchievement(ctx, t, a); err != nil {
		return err
	}
	s.invalidate(ctx, t, "achievements")
	return nil
}

func (s *Service) DeleteAchievement(ctx context.Context, t tenant.Tenant, id int64) error {
	if err := s.repo.DeleteAchievement(ctx, t, id); err != nil {
		return err
	}
	s.invalidate(ctx, t, "achievements")
	return nil
}

func (s *Service) GetAchievement(ctx context.Context, t tenant.Tenant, id int64) (*core.KeyAchievement, error) {
	return s.repo.GetAchievement(ctx, t, id)
}
