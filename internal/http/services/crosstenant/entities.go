package crosstenant

import (
	"context"

	"go.uber.org/zap"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

// Dispatch por tipo de entidad. El nombre "natural" de cada tipo es el campo
// con el que se detectan conflictos en el merge (title, company, school...).

func (s *Service) list(ctx context.Context, t tenant.Tenant, entityType string) (any, error) {
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
		return nil, ErrUnknownEntityType
	}
}

func (s *Service) get(ctx context.Context, t tenant.Tenant, entityType string, id int64) (any, error) {
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
		return s.repo.GetPersonalInfo(ctx, t)
	case "expertise-radar":
		return s.repo.GetExpertiseRadarItem(ctx, t, id)
	case "process-strategies":
		return s.repo.GetProcessStrategy(ctx, t, id)
	case "achievements":
		return s.repo.GetAchievement(ctx, t, id)
	default:
		return nil, ErrUnknownEntityType
	}
}

func (s *Service) findByName(ctx context.Context, t tenant.Tenant, entityType, name string) (any, error) {
	switch entityType {
	case "projects":
		return s.repo.FindProjectByTitle(ctx, t, name)
	case "experience":
		return s.repo.FindExperienceByCompany(ctx, t, name)
	case "education":
		return s.repo.FindEducationBySchool(ctx, t, name)
	case "tech-stack":
		return s.repo.FindTechStackItemByName(ctx, t, name)
	case "skills":
		return s.repo.FindSkillCategoryByName(ctx, t, name)
	case "personal":
		// singleton: el "conflicto" es que ya exista la fila del tenant
		return s.repo.GetPersonalInfo(ctx, t)
	case "expertise-radar":
		return s.repo.FindExpertiseRadarItemByAxis(ctx, t, name)
	case "process-strategies":
		return s.repo.FindProcessStrategyByName(ctx, t, name)
	case "achievements":
		// sin índice natural por nombre: nunca conflictúa, siempre create
		return nil, core.ErrNotFound
	default:
		return nil, ErrUnknownEntityType
	}
}

// ─── Resoluciones por entidad ───
//
// El patrón es el mismo en todas: leer la fuente en el tenant opuesto,
// buscar conflicto por nombre en el actual y aplicar skip/replace/create-new.
// Los IDs nunca se copian: la entidad destino recibe identidad propia.

func (s *Service) resolveProject(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetProject(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindProjectByTitle(ctx, current, src.Title)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.UpdateProject(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("projects", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.Title = copyName(src.Title, newName)
		}
	}

	id, err := s.repo.CreateProject(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("projects", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

func (s *Service) resolveExperience(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetExperience(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindExperienceByCompany(ctx, current, src.Company)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.UpdateExperience(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("experience", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.Company = copyName(src.Company, newName)
		}
	}

	id, err := s.repo.CreateExperience(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("experience", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

func (s *Service) resolveEducation(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetEducation(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindEducationBySchool(ctx, current, src.School)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.UpdateEducation(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("education", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.School = copyName(src.School, newName)
		}
	}

	id, err := s.repo.CreateEducation(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("education", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

func (s *Service) resolveTechStack(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetTechStackItem(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindTechStackItemByName(ctx, current, src.Name)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.UpdateTechStackItem(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("tech-stack", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.Name = copyName(src.Name, newName)
		}
	}

	id, err := s.repo.CreateTechStackItem(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("tech-stack", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

// resolveSkillCategory copia la categoría con todas sus skills. El replace
// corre en una transacción: la categoría destino nunca queda con una mezcla
// de skills viejas y nuevas.
func (s *Service) resolveSkillCategory(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetSkillCategory(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindSkillCategoryByName(ctx, current, src.Name)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0
	cp.Skills = make([]core.Skill, len(src.Skills))
	for i, sk := range src.Skills {
		sk.ID = 0
		sk.CategoryID = 0
		cp.Skills[i] = sk
	}

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.ReplaceSkillCategory(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("skills", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.Name = copyName(src.Name, newName)
		}
	}

	id, err := s.repo.CreateSkillCategory(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("skills", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

// resolvePersonal: singleton por tenant. skip no toca nada si ya hay fila;
// replace (o ausencia de fila) upsertea con los datos del opuesto.
// create-new no aplica a singletons.
func (s *Service) resolvePersonal(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, resolution string) (bool, int64, error) {
	if resolution == ResolutionCreateNew {
		return false, 0, ErrBadResolution
	}

	src, err := s.repo.GetPersonalInfo(ctx, other)
	if err != nil {
		return false, 0, err
	}

	_, err = s.repo.GetPersonalInfo(ctx, current)
	exists := err == nil
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	if exists && resolution == ResolutionSkip {
		log.Info("cross-tenant copy skipped")
		return false, 0, nil
	}

	cp := *src
	cp.ID = 0
	if err := s.repo.UpsertPersonalInfo(ctx, current, &cp); err != nil {
		return false, 0, err
	}
	s.recordCopy("personal", resolution)
	log.Info("cross-tenant personal info copied")
	return true, 0, nil
}

func (s *Service) resolveRadar(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetExpertiseRadarItem(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindExpertiseRadarItemByAxis(ctx, current, src.Axis)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.UpdateExpertiseRadarItem(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("expertise-radar", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.Axis = copyName(src.Axis, newName)
		}
	}

	id, err := s.repo.CreateExpertiseRadarItem(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("expertise-radar", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

func (s *Service) resolveStrategy(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetProcessStrategy(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	existing, err := s.repo.FindProcessStrategyByName(ctx, current, src.Name)
	if err != nil && err != core.ErrNotFound {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0

	if existing != nil {
		switch resolution {
		case ResolutionSkip:
			log.Info("cross-tenant copy skipped")
			return false, existing.ID, nil
		case ResolutionReplace:
			cp.ID = existing.ID
			if err := s.repo.UpdateProcessStrategy(ctx, current, &cp); err != nil {
				return false, 0, err
			}
			s.recordCopy("process-strategies", resolution)
			log.Info("cross-tenant copy replaced existing", zap.Int64("target_id", existing.ID))
			return true, existing.ID, nil
		case ResolutionCreateNew:
			cp.Name = copyName(src.Name, newName)
		}
	}

	id, err := s.repo.CreateProcessStrategy(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("process-strategies", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}

// resolveAchievement: sin nombre natural indexado, la copia siempre crea.
func (s *Service) resolveAchievement(ctx context.Context, log *zap.Logger, current, other tenant.Tenant, sourceID int64, resolution, newName string) (bool, int64, error) {
	src, err := s.repo.GetAchievement(ctx, other, sourceID)
	if err != nil {
		return false, 0, err
	}

	cp := *src
	cp.ID = 0
	if resolution == ResolutionCreateNew && newName != "" {
		cp.Title = newName
	}

	id, err := s.repo.CreateAchievement(ctx, current, &cp)
	if err != nil {
		return false, 0, err
	}
	s.recordCopy("achievements", resolution)
	log.Info("cross-tenant copy created", zap.Int64("target_id", id))
	return true, id, nil
}
