// Package crosstenant implementa el fetch y el merge de contenido entre las
// dos marcas. El admin, trabajando sobre un tenant, puede traer entidades del
// opuesto y copiarlas resolviendo conflictos por nombre.
package crosstenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
	"github.com/dropDatabas3/folio/internal/validation"
)

// Resoluciones de conflicto soportadas.
const (
	ResolutionSkip      = "skip"
	ResolutionReplace   = "replace"
	ResolutionCreateNew = "create-new"
)

var (
	ErrUnknownEntityType = errors.New("crosstenant: unknown entity type")
	ErrBadResolution     = errors.New("crosstenant: unknown resolution")
)

// CopyRecorder registra copias aplicadas (métricas). Puede ser nil.
type CopyRecorder func(entityType, resolution string)

type Service struct {
	repo   core.Repository
	record CopyRecorder
}

func New(repo core.Repository, rec CopyRecorder) *Service {
	return &Service{repo: repo, record: rec}
}

func (s *Service) recordCopy(entityType, resolution string) {
	if s.record != nil {
		s.record(entityType, resolution)
	}
}

// Fetch trae contenido del tenant OPUESTO al actual. Con id devuelve esa
// entidad puntual (nil si no existe: best-effort, no error); sin id, el
// listado completo del tipo.
func (s *Service) Fetch(ctx context.Context, current tenant.Tenant, entityType string, id *int64) (tenant.Tenant, any, error) {
	if !validation.ValidEntityType(entityType) {
		return "", nil, ErrUnknownEntityType
	}
	other := current.Opposite()
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("crosstenant.Fetch"),
		logger.SourceTenant(other.String()),
		logger.TargetTenant(current.String()),
		logger.EntityType(entityType),
	)

	if id == nil {
		data, err := s.list(ctx, other, entityType)
		if err != nil {
			return other, nil, err
		}
		log.Debug("cross-tenant list fetched")
		return other, data, nil
	}

	data, err := s.get(ctx, other, entityType, *id)
	if err == core.ErrNotFound {
		// El id no existe (o pertenece al tenant actual): data null.
		log.Debug("cross-tenant entity not found", logger.EntityID(*id))
		return other, nil, nil
	}
	if err != nil {
		return other, nil, err
	}
	return other, data, nil
}

// FindConflict busca en el tenant ACTUAL una entidad con el mismo nombre
// natural que el dado. Devuelve (existente, true) si hay conflicto.
func (s *Service) FindConflict(ctx context.Context, current tenant.Tenant, entityType, name string) (any, bool, error) {
	existing, err := s.findByName(ctx, current, entityType, name)
	if err == core.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return existing, true, nil
}

// Resolve copia una entidad del tenant opuesto al actual aplicando la
// resolución pedida:
//
//	skip       — no hacer nada si hay conflicto por nombre
//	replace    — pisar la entidad local conflictiva con los datos del opuesto
//	create-new — crear una copia con otro nombre (newName o sufijo)
//
// Sin conflicto, cualquier resolución termina en un create simple.
// Devuelve (applied, targetID, error).
func (s *Service) Resolve(ctx context.Context, current tenant.Tenant, entityType string, sourceID int64, resolution, newName string) (bool, int64, error) {
	if !validation.ValidEntityType(entityType) {
		return false, 0, ErrUnknownEntityType
	}
	switch resolution {
	case ResolutionSkip, ResolutionReplace, ResolutionCreateNew:
	default:
		return false, 0, ErrBadResolution
	}

	other := current.Opposite()
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("crosstenant.Resolve"),
		logger.SourceTenant(other.String()),
		logger.TargetTenant(current.String()),
		logger.EntityType(entityType),
		logger.EntityID(sourceID),
		logger.Resolution(resolution),
	)

	switch entityType {
	case "projects":
		return s.resolveProject(ctx, log, current, other, sourceID, resolution, newName)
	case "experience":
		return s.resolveExperience(ctx, log, current, other, sourceID, resolution, newName)
	case "education":
		return s.resolveEducation(ctx, log, current, other, sourceID, resolution, newName)
	case "tech-stack":
		return s.resolveTechStack(ctx, log, current, other, sourceID, resolution, newName)
	case "skills":
		return s.resolveSkillCategory(ctx, log, current, other, sourceID, resolution, newName)
	case "personal":
		return s.resolvePersonal(ctx, log, current, other, resolution)
	case "expertise-radar":
		return s.resolveRadar(ctx, log, current, other, sourceID, resolution, newName)
	case "process-strategies":
		return s.resolveStrategy(ctx, log, current, other, sourceID, resolution, newName)
	case "achievements":
		return s.resolveAchievement(ctx, log, current, other, sourceID, resolution, newName)
	default:
		return false, 0, ErrUnknownEntityType
	}
}

// copyName decide el nombre de una copia create-new.
func copyName(orig, requested string) string {
	if requested != "" {
		return requested
	}
	return fmt.Sprintf("%s (copy)", orig)
}
