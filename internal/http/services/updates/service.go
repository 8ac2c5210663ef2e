// Package updates implementa el chequeo liviano de contenido nuevo que hace
// el frontend para revalidar su cache local.
package updates

import (
	"context"
	"time"

	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

type Service struct {
	repo core.Repository
}

func New(repo core.Repository) *Service {
	return &Service{repo: repo}
}

// Check compara la última revisión del tenant contra el instante que el
// cliente conoce. Fail-open: ante cualquier error interno responde
// "sin novedades" en lugar de romper el render del sitio.
func (s *Service) Check(ctx context.Context, t tenant.Tenant, since time.Time) (bool, time.Time) {
	rev, err := s.repo.LatestRevision(ctx, t)
	if err != nil {
		logger.From(ctx).Warn("update check failed, reporting no updates",
			logger.Layer("service"),
			logger.Op("updates.Check"),
			logger.Tenant(t.String()),
			logger.Err(err),
		)
		return false, time.Time{}
	}
	if since.IsZero() {
		return !rev.IsZero() && rev.Unix() > 0, rev
	}
	return rev.After(since), rev
}
