// Package content expone las lecturas públicas del sitio y el update-check.
package content

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/http/middlewares"
	contentsvc "github.com/dropDatabas3/folio/internal/http/services/content"
	updatessvc "github.com/dropDatabas3/folio/internal/http/services/updates"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/validation"
)

type Controller struct {
	content *contentsvc.Service
	updates *updatessvc.Service
}

func NewController(content *contentsvc.Service, updates *updatessvc.Service) *Controller {
	return &Controller{content: content, updates: updates}
}

// List maneja GET /api/content/{entityType}
// El tenant sale del contexto (resuelto por hostname).
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := middlewares.GetTenant(ctx)

	entityType := chi.URLParam(r, "entityType")
	if !validation.ValidEntityType(entityType) {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("unknown entity type: "+entityType))
		return
	}

	data, err := c.content.ListByType(ctx, t, entityType)
	if err != nil {
		logger.From(ctx).Error("content fetch failed",
			logger.Layer("controller"),
			logger.Op("content.List"),
			logger.EntityType(entityType),
			logger.Err(err),
		)
		helpers.WriteError(w, helpers.FromStore(err))
		return
	}

	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: json.RawMessage(data)})
}

// Get maneja GET /api/content/{entityType}/{id}
func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := middlewares.GetTenant(ctx)

	entityType := chi.URLParam(r, "entityType")
	if !validation.ValidEntityType(entityType) {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("unknown entity type: "+entityType))
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("invalid id"))
		return
	}

	v, err := c.content.GetByID(ctx, t, entityType, id)
	if err != nil {
		helpers.WriteError(w, helpers.FromStore(err))
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: mustRaw(v)})
}

func mustRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

// Updates maneja GET /api/updates?since=RFC3339
// Fail-open: nunca devuelve error al cliente.
func (c *Controller) Updates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := middlewares.GetTenant(ctx)

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			since = parsed
		}
		// since inválido se trata como ausente
	}

	has, rev := c.updates.Check(ctx, t, since)
	resp := dto.UpdatesResponse{HasUpdates: has}
	if !rev.IsZero() && rev.Unix() > 0 {
		resp.Revision = rev.UTC().Format(time.RFC3339)
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}
