// Package crosstenant expone el fetch y merge de contenido entre marcas
// para el panel de admin.
package crosstenant

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	ctsvc "github.com/dropDatabas3/folio/internal/http/services/crosstenant"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/tenant"
	"github.com/dropDatabas3/folio/internal/validation"
)

type Controller struct {
	svc      *ctsvc.Service
	resolver *tenant.Resolver
}

func NewController(svc *ctsvc.Service, resolver *tenant.Resolver) *Controller {
	return &Controller{svc: svc, resolver: resolver}
}

// Fetch maneja GET /api/admin/cross-tenant/{entityType}[?id=N]
// El tenant "actual" es el que el admin tiene seleccionado; la data viene
// siempre del opuesto.
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current := helpers.AdminTenant(r, c.resolver)

	entityType := chi.URLParam(r, "entityType")

	var id *int64
	if raw := r.URL.Query().Get("id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v <= 0 {
			helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("id must be a positive integer"))
			return
		}
		id = &v
	}

	source, data, err := c.svc.Fetch(ctx, current, entityType, id)
	if err == ctsvc.ErrUnknownEntityType {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("unknown entity type: "+entityType))
		return
	}
	if err != nil {
		logger.From(ctx).Error("cross-tenant fetch failed",
			logger.Layer("controller"),
			logger.Op("crosstenant.Fetch"),
			logger.EntityType(entityType),
			logger.Err(err),
		)
		helpers.WriteError(w, helpers.FromStore(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.CrossTenantResponse{
		SourceTenant: source.String(),
		TargetTenant: current.String(),
		EntityType:   entityType,
		Data:         data,
	})
}

// Conflicts maneja GET /api/admin/cross-tenant/{entityType}/conflicts?name=...
func (c *Controller) Conflicts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current := helpers.AdminTenant(r, c.resolver)

	entityType := chi.URLParam(r, "entityType")
	if !validation.ValidEntityType(entityType) {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("unknown entity type: "+entityType))
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" && entityType != "personal" {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("name query parameter is required"))
		return
	}

	existing, conflict, err := c.svc.FindConflict(ctx, current, entityType, name)
	if err != nil {
		logger.From(ctx).Error("conflict check failed",
			logger.Layer("controller"),
			logger.Op("crosstenant.Conflicts"),
			logger.EntityType(entityType),
			logger.Err(err),
		)
		helpers.WriteError(w, helpers.FromStore(err))
		return
	}

	resp := dto.ConflictResponse{EntityType: entityType, Name: name, Conflict: conflict}
	if conflict {
		resp.Existing = existing
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Resolve maneja POST /api/admin/cross-tenant/resolve
func (c *Controller) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current := helpers.AdminTenant(r, c.resolver)

	var req dto.ResolveRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	if req.EntityType != "personal" && req.SourceID <= 0 {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("sourceId must be a positive integer"))
		return
	}

	applied, targetID, err := c.svc.Resolve(ctx, current, req.EntityType, req.SourceID, req.Resolution, req.NewName)
	switch {
	case err == ctsvc.ErrUnknownEntityType:
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("unknown entity type: "+req.EntityType))
		return
	case err == ctsvc.ErrBadResolution:
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("resolution must be skip, replace or create-new"))
		return
	case err != nil:
		logger.From(ctx).Error("cross-tenant resolve failed",
			logger.Layer("controller"),
			logger.Op("crosstenant.Resolve"),
			logger.EntityType(req.EntityType),
			logger.Resolution(req.Resolution),
			logger.Err(err),
		)
		helpers.WriteError(w, helpers.FromStore(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.ResolveResponse{
		Applied:    applied,
		Resolution: req.Resolution,
		EntityType: req.EntityType,
		TargetID:   targetID,
	})
}
