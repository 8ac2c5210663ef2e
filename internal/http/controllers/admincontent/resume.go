// resume.go — CRUD de experiencia laboral y educación
package admincontent

import (
	"net/http"
	"strings"
	"time"

	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/store/core"
)

// ─── Work experience ───

func experienceFromRequest(req dto.ExperienceRequest) (*core.WorkExperience, *helpers.HTTPError) {
	if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Role) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("company and role are required")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, helpers.ErrBadRequest.WithDetail("startDate must be YYYY-MM-DD")
	}
	e := &core.WorkExperience{
		Company:   strings.TrimSpace(req.Company),
		Role:      strings.TrimSpace(req.Role),
		Summary:   req.Summary,
		StartDate: start,
		SortOrder: req.SortOrder,
	}
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, helpers.ErrBadRequest.WithDetail("endDate must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return nil, helpers.ErrBadRequest.WithDetail("endDate cannot precede startDate")
		}
		e.EndDate = &end
	}
	return e, nil
}

func (c *Controller) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req dto.ExperienceRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	e, herr := experienceFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateExperience(r.Context(), c.activeTenant(r), e)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateExperience", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) GetExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := c.svc.GetExperience(r.Context(), c.activeTenant(r), id)
	if err != nil {
		writeStoreErr(w, r, "admincontent.GetExperience", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: e})
}

func (c *Controller) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ExperienceRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	e, herr := experienceFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	e.ID = id

	if err := c.svc.UpdateExperience(r.Context(), c.activeTenant(r), e); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateExperience", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: e})
}

func (c *Controller) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteExperience(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteExperience", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Education ───

func educationFromRequest(req dto.EducationRequest) (*core.Education, *helpers.HTTPError) {
	if strings.TrimSpace(req.School) == "" {
		return nil, helpers.ErrBadRequest.WithDetail("school is required")
	}
	if req.EndYear != 0 && req.EndYear < req.StartYear {
		return nil, helpers.ErrBadRequest.WithDetail("endYear cannot precede startYear")
	}
	return &core.Education{
		School:    strings.TrimSpace(req.School),
		Degree:    req.Degree,
		Field:     req.Field,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}, nil
}

func (c *Controller) CreateEducation(w http.ResponseWriter, r *http.Request) {
	var req dto.EducationRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	e, herr := educationFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}

	id, err := c.svc.CreateEducation(r.Context(), c.activeTenant(r), e)
	if err != nil {
		writeStoreErr(w, r, "admincontent.CreateEducation", err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (c *Controller) GetEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := c.svc.GetEducation(r.Context(), c.activeTenant(r), id)
	if err != nil {
		writeStoreErr(w, r, "admincontent.GetEducation", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: e})
}

func (c *Controller) UpdateEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.EducationRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}
	e, herr := educationFromRequest(req)
	if herr != nil {
		helpers.WriteError(w, herr)
		return
	}
	e.ID = id

	if err := c.svc.UpdateEducation(r.Context(), c.activeTenant(r), e); err != nil {
		writeStoreErr(w, r, "admincontent.UpdateEducation", err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.DataResponse{Data: e})
}

func (c *Controller) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteEducation(r.Context(), c.activeTenant(r), id); err != nil {
		writeStoreErr(w, r, "admincontent.DeleteEducation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
