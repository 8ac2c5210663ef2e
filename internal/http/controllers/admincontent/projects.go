package admincontent

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/store/core"
)

func projectFromRequest(req dto.ProjectRequest) (*core.Project, *helpers.HTTPError) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("title is required")
	}
	return &core.Project{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Tags:        req.Tags,
		RepoURL:     req.RepoURL,
		LiveURL:     req.LiveURL,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
	}, nil
}

// CreateProject maneja POST /api/admin/content/projects
func (c *Controller) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	p, herr := projectFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateProject(r.Context(), c.activeTenant(r), p)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateProject", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// GetProject maneja GET /api/admin/content/projects/{id}
func (c *Controller) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := c.svc.GetProject(r.Context(), c.activeTenant(r), id)
	if err != nil {
		writeStoreErr(w, r, "admincontent.GetProject", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: p})
}

// UpdateProject maneja PUT /api/admin/content/projects/{id}
func (c *Controller) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	p, herr := projectFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	p.ID = id

	if err := c.svc.UpdateProject(r.Context(), c.activeTenant(r), p); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateProject", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: p})
}

// DeleteProject maneja DELETE /api/admin/content/projects/{id}
func (c *Controller) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteProject(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteProject", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
