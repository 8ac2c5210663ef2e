// profile.go — personal info, process strategies, expertise radar y achievements
package admincontent

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/validation"
)

// ─── Personal info (singleton por tenant) ───

// UpsertPersonalInfo maneja PUT /api/admin/content/personal
func (c *Controller) UpsertPersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req dto.PersonalInfoRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("fullName is required"))
		return
	}
	if req.Email != "" && !validation.ValidEmail(req.Email) {
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("email is invalid"))
		return
	}

	p := &core.PersonalInfo{
		FullName:  strings.TrimSpace(req.FullName),
		Headline:  req.Headline,
		Bio:       req.Bio,
		Email:     req.Email,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
	}
	if err := c.svc.UpsertPersonalInfo(r.Context(), c.activeTenant(r), p); err != nil {
		writeStoreErr(w, r, "admincontent.UpsertPersonalInfo", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: p})
}

// ─── Process strategies ───

func strategyFromRequest(req dto.ProcessStrategyRequest) (*core.ProcessStrategy, *helpers.HTTPError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("name is required")
	}
	return &core.ProcessStrategy{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Phase:       req.Phase,
	}, nil
}

func (c *Controller) CreateProcessStrategy(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessStrategyRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	st, herr := strategyFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateProcessStrategy(r.Context(), c.activeTenant(r), st)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateProcessStrategy", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) UpdateProcessStrategy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ProcessStrategyRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	st, herr := strategyFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	st.ID = id

	if err := c.svc.UpdateProcessStrategy(r.Context(), c.activeTenant(r), st); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateProcessStrategy", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: st})
}

func (c *Controller) DeleteProcessStrategy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteProcessStrategy(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteProcessStrategy", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Expertise radar ───

func radarFromRequest(req dto.ExpertiseRadarRequest) (*core.ExpertiseRadarItem, *helpers.HTTPError) {
	if strings.TrimSpace(req.Axis) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("axis is required")
	}
	if req.Score < 0 || req.Score > 100 {
		return nil, helpers.ErrBadRequest.WithDetail("score must be between 0 and 100")
	}
	return &core.ExpertiseRadarItem{
		Axis:  strings.TrimSpace(req.Axis),
		Score: req.Score,
	}, nil
}

func (c *Controller) CreateExpertiseRadarItem(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpertiseRadarRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	i, herr := radarFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateExpertiseRadarItem(r.Context(), c.activeTenant(r), i)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateExpertiseRadarItem", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) UpdateExpertiseRadarItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ExpertiseRadarRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	i, herr := radarFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	i.ID = id

	if err := c.svc.UpdateExpertiseRadarItem(r.Context(), c.activeTenant(r), i); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateExpertiseRadarItem", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: i})
}

func (c *Controller) DeleteExpertiseRadarItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteExpertiseRadarItem(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteExpertiseRadarItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Key achievements ───

func achievementFromRequest(req dto.AchievementRequest) (*core.KeyAchievement, *helpers.HTTPError) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("title is required")
	}
	return &core.KeyAchievement{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Year:        req.Year,
	}, nil
}

func (c *Controller) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	var req dto.AchievementRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	a, herr := achievementFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateAchievement(r.Context(), c.activeTenant(r), a)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateAchievement", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.AchievementRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	a, herr := achievementFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	a.ID = id

	if err := c.svc.UpdateAchievement(r.Context(), c.activeTenant(r), a); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateAchievement", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: a})
}

func (c *Controller) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteAchievement(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteAchievement", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
