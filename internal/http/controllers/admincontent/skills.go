// skills.go — CRUD de tech stack y skill categories
package admincontent

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/store/core"
)

// ─── Tech stack ───

func techStackFromRequest(req dto.TechStackRequest) (*core.TechStackItem, *helpers.HTTPError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("name is required")
	}
	if req.Level < 1 || req.Level > 5 {
		return nil, helpers.ErrBadRequest.WithDetail("level must be between 1 and 5")
	}
	return &core.TechStackItem{
		Name:     strings.TrimSpace(req.Name),
		Category: req.Category,
		Level:    req.Level,
	}, nil
}

func (c *Controller) CreateTechStackItem(w http.ResponseWriter, r *http.Request) {
	var req dto.TechStackRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	i, herr := techStackFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateTechStackItem(r.Context(), c.activeTenant(r), i)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateTechStackItem", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) UpdateTechStackItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.TechStackRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	i, herr := techStackFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	i.ID = id

	if err := c.svc.UpdateTechStackItem(r.Context(), c.activeTenant(r), i); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateTechStackItem", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: i})
}

func (c *Controller) DeleteTechStackItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteTechStackItem(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteTechStackItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Skill categories ───

func skillCategoryFromRequest(req dto.SkillCategoryRequest) (*core.SkillCategory, *helpers.HTTPError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("name is required")
	}
	cat := &core.SkillCategory{
		Name:      strings.TrimSpace(req.Name),
		SortOrder: req.SortOrder,
		Skills:    make([]core.Skill, 0, len(req.Skills)),
	}
	for _, sk := range req.Skills {
		if strings.TrimSpace(sk.Name) == "" {
			return nil, helpers.ErrBadRequest.WithDetail("skill name is required")
		}
		if sk.Level < 1 || sk.Level > 5 {
			return nil, helpers.ErrBadRequest.WithDetail("skill level must be between 1 and 5")
		}
		cat.Skills = append(cat.Skills, core.Skill{Name: strings.TrimSpace(sk.Name), Level: sk.Level})
	}
	return cat, nil
}

func (c *Controller) CreateSkillCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.SkillCategoryRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	cat, herr := skillCategoryFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateSkillCategory(r.Context(), c.activeTenant(r), cat)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateSkillCategory", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) GetSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	cat, err := c.svc.GetSkillCategory(r.Context(), c.activeTenant(r), id)
	if err != nil {
		writeStoreErr(w, r, "admincontent.GetSkillCategory", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: cat})
}

// ReplaceSkillCategory maneja PUT /api/admin/content/skills/{id}
// Reemplaza la categoría y TODAS sus skills en una transacción.
func (c *Controller) ReplaceSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.SkillCategoryRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	cat, herr := skillCategoryFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	cat.ID = id

	if err := c.svc.ReplaceSkillCategory(r.Context(), c.activeTenant(r), cat); err != nil {
		writeStoreErr(w, r, "admincontent.ReplaceSkillCategory", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: cat})
}

func (c *Controller) DeleteSkillCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteSkillCategory(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteSkillCategory", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
