// Package memory implementa core.Repository en memoria.
//
// Se usa en modo dev (sin Postgres) y como sustrato de los tests unitarios.
// Cumple los mismos invariantes de aislamiento por tenant que el driver pg:
// el filtro por tenant vive en cada operación, no en el caller.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

type Store struct {
	mu  sync.RWMutex
	seq int64

	projects   map[int64]core.Project
	experience map[int64]core.WorkExperience
	education  map[int64]core.Education
	techstack  map[int64]core.TechStackItem
	skillcats  map[int64]core.SkillCategory
	strategies map[int64]core.ProcessStrategy
	radar      map[int64]core.ExpertiseRadarItem
	achieves   map[int64]core.KeyAchievement
	personal   map[tenant.Tenant]core.PersonalInfo
	admins     map[int64]core.AdminUser
	revision   map[tenant.Tenant]time.Time
}

func New() *Store {
	return &Store{
		projects:   make(map[int64]core.Project),
		experience: make(map[int64]core.WorkExperience),
		education:  make(map[int64]core.Education),
		techstack:  make(map[int64]core.TechStackItem),
		skillcats:  make(map[int64]core.SkillCategory),
		strategies: make(map[int64]core.ProcessStrategy),
		radar:      make(map[int64]core.ExpertiseRadarItem),
		achieves:   make(map[int64]core.KeyAchievement),
		personal:   make(map[tenant.Tenant]core.PersonalInfo),
		admins:     make(map[int64]core.AdminUser),
		revision:   make(map[tenant.Tenant]time.Time),
	}
}

func (s *Store) Ping(context.Context) error { return nil }
func (s *Store) Close()                     {}

// nextID asume que el caller tiene el lock.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// touch asume que el caller tiene el lock.
func (s *Store) touch(t tenant.Tenant) {
	s.revision[t] = time.Now().UTC()
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ─── Projects ───

func (s *Store) ListProjects(_ context.Context, t tenant.Tenant) ([]core.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Project, 0)
	for _, p := range s.projects {
		if p.Tenant == t {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetProject(_ context.Context, t tenant.Tenant, id int64) (*core.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok || p.Tenant != t {
		return nil, core.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (s *Store) FindProjectByTitle(_ context.Context, t tenant.Tenant, title string) (*core.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.Tenant == t && sameName(p.Title, title) {
			cp := p
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateProject(_ context.Context, t tenant.Tenant, p *core.Project) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	cp := *p
	cp.ID = s.nextID()
	cp.Tenant = t
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.projects[cp.ID] = cp
	s.touch(t)
	return cp.ID, nil
}

func (s *Store) UpdateProject(_ context.Context, t tenant.Tenant, p *core.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.projects[p.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	cp := *p
	cp.Tenant = t
	cp.CreatedAt = prev.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.projects[cp.ID] = cp
	s.touch(t)
	return nil
}

func (s *Store) DeleteProject(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok || p.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.projects, id)
	s.touch(t)
	return nil
}

// ─── Work experience ───

func (s *Store) ListExperience(_ context.Context, t tenant.Tenant) ([]core.WorkExperience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.WorkExperience, 0)
	for _, e := range s.experience {
		if e.Tenant == t {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetExperience(_ context.Context, t tenant.Tenant, id int64) (*core.WorkExperience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.experience[id]
	if !ok || e.Tenant != t {
		return nil, core.ErrNotFound
	}
	ce := e
	return &ce, nil
}

func (s *Store) FindExperienceByCompany(_ context.Context, t tenant.Tenant, company string) (*core.WorkExperience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.experience {
		if e.Tenant == t && sameName(e.Company, company) {
			ce := e
			return &ce, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateExperience(_ context.Context, t tenant.Tenant, e *core.WorkExperience) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	ce := *e
	ce.ID = s.nextID()
	ce.Tenant = t
	ce.CreatedAt = now
	ce.UpdatedAt = now
	s.experience[ce.ID] = ce
	s.touch(t)
	return ce.ID, nil
}

func (s *Store) UpdateExperience(_ context.Context, t tenant.Tenant, e *core.WorkExperience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.experience[e.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	ce := *e
	ce.Tenant = t
	ce.CreatedAt = prev.CreatedAt
	ce.UpdatedAt = time.Now().UTC()
	s.experience[ce.ID] = ce
	s.touch(t)
	return nil
}

func (s *Store) DeleteExperience(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.experience[id]
	if !ok || e.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.experience, id)
	s.touch(t)
	return nil
}

// ─── Education ───

func (s *Store) ListEducation(_ context.Context, t tenant.Tenant) ([]core.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Education, 0)
	for _, e := range s.education {
		if e.Tenant == t {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetEducation(_ context.Context, t tenant.Tenant, id int64) (*core.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.education[id]
	if !ok || e.Tenant != t {
		return nil, core.ErrNotFound
	}
	ce := e
	return &ce, nil
}

func (s *Store) FindEducationBySchool(_ context.Context, t tenant.Tenant, school string) (*core.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.education {
		if e.Tenant == t && sameName(e.School, school) {
			ce := e
			return &ce, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateEducation(_ context.Context, t tenant.Tenant, e *core.Education) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	ce := *e
	ce.ID = s.nextID()
	ce.Tenant = t
	ce.CreatedAt = now
	ce.UpdatedAt = now
	s.education[ce.ID] = ce
	s.touch(t)
	return ce.ID, nil
}

func (s *Store) UpdateEducation(_ context.Context, t tenant.Tenant, e *core.Education) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.education[e.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	ce := *e
	ce.Tenant = t
	ce.CreatedAt = prev.CreatedAt
	ce.UpdatedAt = time.Now().UTC()
	s.education[ce.ID] = ce
	s.touch(t)
	return nil
}

func (s *Store) DeleteEducation(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.education[id]
	if !ok || e.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.education, id)
	s.touch(t)
	return nil
}

// ─── Tech stack ───

func (s *Store) ListTechStack(_ context.Context, t tenant.Tenant) ([]core.TechStackItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.TechStackItem, 0)
	for _, i := range s.techstack {
		if i.Tenant == t {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetTechStackItem(_ context.Context, t tenant.Tenant, id int64) (*core.TechStackItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.techstack[id]
	if !ok || i.Tenant != t {
		return nil, core.ErrNotFound
	}
	ci := i
	return &ci, nil
}

func (s *Store) FindTechStackItemByName(_ context.Context, t tenant.Tenant, name string) (*core.TechStackItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.techstack {
		if i.Tenant == t && sameName(i.Name, name) {
			ci := i
			return &ci, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateTechStackItem(_ context.Context, t tenant.Tenant, i *core.TechStackItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	ci := *i
	ci.ID = s.nextID()
	ci.Tenant = t
	ci.CreatedAt = now
	ci.UpdatedAt = now
	s.techstack[ci.ID] = ci
	s.touch(t)
	return ci.ID, nil
}

func (s *Store) UpdateTechStackItem(_ context.Context, t tenant.Tenant, i *core.TechStackItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.techstack[i.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	ci := *i
	ci.Tenant = t
	ci.CreatedAt = prev.CreatedAt
	ci.UpdatedAt = time.Now().UTC()
	s.techstack[ci.ID] = ci
	s.touch(t)
	return nil
}

func (s *Store) DeleteTechStackItem(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.techstack[id]
	if !ok || i.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.techstack, id)
	s.touch(t)
	return nil
}

// ─── Skills ───

func (s *Store) ListSkillCategories(_ context.Context, t tenant.Tenant) ([]core.SkillCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.SkillCategory, 0)
	for _, c := range s.skillcats {
		if c.Tenant == t {
			out = append(out, cloneCategory(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetSkillCategory(_ context.Context, t tenant.Tenant, id int64) (*core.SkillCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.skillcats[id]
	if !ok || c.Tenant != t {
		return nil, core.ErrNotFound
	}
	cc := cloneCategory(c)
	return &cc, nil
}

func (s *Store) FindSkillCategoryByName(_ context.Context, t tenant.Tenant, name string) (*core.SkillCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.skillcats {
		if c.Tenant == t && sameName(c.Name, name) {
			cc := cloneCategory(c)
			return &cc, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateSkillCategory(_ context.Context, t tenant.Tenant, c *core.SkillCategory) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	cc := cloneCategory(*c)
	cc.ID = s.nextID()
	cc.Tenant = t
	cc.CreatedAt = now
	cc.UpdatedAt = now
	for i := range cc.Skills {
		cc.Skills[i].ID = s.nextID()
		cc.Skills[i].CategoryID = cc.ID
	}
	s.skillcats[cc.ID] = cc
	s.touch(t)
	return cc.ID, nil
}

func (s *Store) ReplaceSkillCategory(_ context.Context, t tenant.Tenant, c *core.SkillCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.skillcats[c.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	cc := cloneCategory(*c)
	cc.Tenant = t
	cc.CreatedAt = prev.CreatedAt
	cc.UpdatedAt = time.Now().UTC()
	for i := range cc.Skills {
		cc.Skills[i].ID = s.nextID()
		cc.Skills[i].CategoryID = cc.ID
	}
	s.skillcats[cc.ID] = cc
	s.touch(t)
	return nil
}

func (s *Store) DeleteSkillCategory(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.skillcats[id]
	if !ok || c.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.skillcats, id)
	s.touch(t)
	return nil
}

func cloneCategory(c core.SkillCategory) core.SkillCategory {
	cc := c
	cc.Skills = append([]core.Skill(nil), c.Skills...)
	return cc
}

// ─── Personal info ───

func (s *Store) GetPersonalInfo(_ context.Context, t tenant.Tenant) (*core.PersonalInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.personal[t]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (s *Store) UpsertPersonalInfo(_ context.Context, t tenant.Tenant, p *core.PersonalInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	cp.Tenant = t
	if prev, ok := s.personal[t]; ok {
		cp.ID = prev.ID
	} else {
		cp.ID = s.nextID()
	}
	cp.UpdatedAt = time.Now().UTC()
	s.personal[t] = cp
	s.touch(t)
	return nil
}

// ─── Process strategies ───

func (s *Store) ListProcessStrategies(_ context.Context, t tenant.Tenant) ([]core.ProcessStrategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ProcessStrategy, 0)
	for _, st := range s.strategies {
		if st.Tenant == t {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase < out[j].Phase
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Store) GetProcessStrategy(_ context.Context, t tenant.Tenant, id int64) (*core.ProcessStrategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.strategies[id]
	if !ok || st.Tenant != t {
		return nil, core.ErrNotFound
	}
	cs := st
	return &cs, nil
}

func (s *Store) FindProcessStrategyByName(_ context.Context, t tenant.Tenant, name string) (*core.ProcessStrategy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.strategies {
		if st.Tenant == t && sameName(st.Name, name) {
			cs := st
			return &cs, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateProcessStrategy(_ context.Context, t tenant.Tenant, st *core.ProcessStrategy) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	cs := *st
	cs.ID = s.nextID()
	cs.Tenant = t
	cs.CreatedAt = now
	cs.UpdatedAt = now
	s.strategies[cs.ID] = cs
	s.touch(t)
	return cs.ID, nil
}

func (s *Store) UpdateProcessStrategy(_ context.Context, t tenant.Tenant, st *core.ProcessStrategy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.strategies[st.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	cs := *st
	cs.Tenant = t
	cs.CreatedAt = prev.CreatedAt
	cs.UpdatedAt = time.Now().UTC()
	s.strategies[cs.ID] = cs
	s.touch(t)
	return nil
}

func (s *Store) DeleteProcessStrategy(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.strategies[id]
	if !ok || st.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.strategies, id)
	s.touch(t)
	return nil
}

// ─── Expertise radar ───

func (s *Store) ListExpertiseRadar(_ context.Context, t tenant.Tenant) ([]core.ExpertiseRadarItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.ExpertiseRadarItem, 0)
	for _, i := range s.radar {
		if i.Tenant == t {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetExpertiseRadarItem(_ context.Context, t tenant.Tenant, id int64) (*core.ExpertiseRadarItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.radar[id]
	if !ok || i.Tenant != t {
		return nil, core.ErrNotFound
	}
	ci := i
	return &ci, nil
}

func (s *Store) FindExpertiseRadarItemByAxis(_ context.Context, t tenant.Tenant, axis string) (*core.ExpertiseRadarItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.radar {
		if i.Tenant == t && sameName(i.Axis, axis) {
			ci := i
			return &ci, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateExpertiseRadarItem(_ context.Context, t tenant.Tenant, i *core.ExpertiseRadarItem) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	ci := *i
	ci.ID = s.nextID()
	ci.Tenant = t
	ci.CreatedAt = now
	ci.UpdatedAt = now
	s.radar[ci.ID] = ci
	s.touch(t)
	return ci.ID, nil
}

func (s *Store) UpdateExpertiseRadarItem(_ context.Context, t tenant.Tenant, i *core.ExpertiseRadarItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.radar[i.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	ci := *i
	ci.Tenant = t
	ci.CreatedAt = prev.CreatedAt
	ci.UpdatedAt = time.Now().UTC()
	s.radar[ci.ID] = ci
	s.touch(t)
	return nil
}

func (s *Store) DeleteExpertiseRadarItem(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.radar[id]
	if !ok || i.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.radar, id)
	s.touch(t)
	return nil
}

// ─── Key achievements ───

func (s *Store) ListAchievements(_ context.Context, t tenant.Tenant) ([]core.KeyAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.KeyAchievement, 0)
	for _, a := range s.achieves {
		if a.Tenant == t {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetAchievement(_ context.Context, t tenant.Tenant, id int64) (*core.KeyAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.achieves[id]
	if !ok || a.Tenant != t {
		return nil, core.ErrNotFound
	}
	ca := a
	return &ca, nil
}

func (s *Store) CreateAchievement(_ context.Context, t tenant.Tenant, a *core.KeyAchievement) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	ca := *a
	ca.ID = s.nextID()
	ca.Tenant = t
	ca.CreatedAt = now
	ca.UpdatedAt = now
	s.achieves[ca.ID] = ca
	s.touch(t)
	return ca.ID, nil
}

func (s *Store) UpdateAchievement(_ context.Context, t tenant.Tenant, a *core.KeyAchievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.achieves[a.ID]
	if !ok || prev.Tenant != t {
		return core.ErrNotFound
	}
	ca := *a
	ca.Tenant = t
	ca.CreatedAt = prev.CreatedAt
	ca.UpdatedAt = time.Now().UTC()
	s.achieves[ca.ID] = ca
	s.touch(t)
	return nil
}

func (s *Store) DeleteAchievement(_ context.Context, t tenant.Tenant, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.achieves[id]
	if !ok || a.Tenant != t {
		return core.ErrNotFound
	}
	delete(s.achieves, id)
	s.touch(t)
	return nil
}

// ─── Admin users ───

func (s *Store) GetAdminUserByEmail(_ context.Context, email string) (*core.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.admins {
		if strings.EqualFold(u.Email, email) {
			cu := u
			return &cu, nil
		}
	}
	return nil, core.ErrNotFound
}

func (s *Store) CreateAdminUser(_ context.Context, u *core.AdminUser) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, prev := range s.admins {
		if strings.EqualFold(prev.Email, u.Email) {
			return 0, core.ErrConflict
		}
	}
	cu := *u
	cu.ID = s.nextID()
	cu.CreatedAt = time.Now().UTC()
	s.admins[cu.ID] = cu
	return cu.ID, nil
}

// ─── Revision ───

func (s *Store) LatestRevision(_ context.Context, t tenant.Tenant) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision[t], nil
}
