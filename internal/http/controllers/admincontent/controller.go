// Package admincontent implementa el CRUD del panel de admin sobre el
// contenido. Toda operación corre contra el tenant activo del admin
// (header > cookie > hostname), nunca contra uno elegido por el body.
package admincontent

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	contentsvc "github.com/dropDatabas3/folio/internal/http/services/content"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/tenant"
	"github.com/dropDatabas3/folio/internal/validation"
)

type Controller struct {
	svc      *contentsvc.Service
	resolver *tenant.Resolver
}

func NewController(svc *contentsvc.Service, resolver *tenant.Resolver) *Controller {
	return &Controller{svc: svc, resolver: resolver}
}

func (c *Controller) activeTenant(r *http.Request) tenant.Tenant {
	return helpers.AdminTenant(r, c.resolver)
}

// pathID extrae y valida el {id} del path.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func writeStoreErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	he := helpers.FromStore(err)
	if he.Status >= 500 {
		logger.From(r.Context()).Error("admin content operation failed",
			logger.Layer("controller"),
			logger.Op(op),
			logger.Err(err),
		)
	}
	helpers.WriteError(w, he)
}

// List maneja GET /api/admin/content/{entityType} — mismo listado que el
// público pero sobre el tenant activo del admin.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := c.activeTenant(r)

	entityType := chi.URLParam(r, "entityType")
	if !validation.ValidEntityType(entityType) {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("unknown entity type: "+entityType))
		return
	}

	data, err := c.svc.ListByType(ctx, t, entityType)
	if err != nil {
		writeStoreErr(w, r, "admincontent.List", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: json.RawMessage(data)})
}
