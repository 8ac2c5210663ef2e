package core

import (
	"time"

	"github.com/dropDatabas3/folio/internal/tenant"
)

// Cada fila de contenido pertenece a exactamente un tenant. El aislamiento se
// garantiza en la capa de queries: toda lectura filtra por tenant y toda
// escritura lo estampa.

// Project es un proyecto del portfolio.
type Project struct {
	ID          int64         `json:"id"`
	Tenant      tenant.Tenant `json:"tenant"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tags        []string      `json:"tags"`
	RepoURL     string        `json:"repoUrl,omitempty"`
	LiveURL     string        `json:"liveUrl,omitempty"`
	Featured    bool          `json:"featured"`
	SortOrder   int           `json:"sortOrder"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// WorkExperience es una entrada de experiencia laboral del resume.
type WorkExperience struct {
	ID        int64         `json:"id"`
	Tenant    tenant.Tenant `json:"tenant"`
	Company   string        `json:"company"`
	Role      string        `json:"role"`
	Summary   string        `json:"summary"`
	StartDate time.Time     `json:"startDate"`
	EndDate   *time.Time    `json:"endDate,omitempty"` // nil = posición actual
	SortOrder int           `json:"sortOrder"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Education es una entrada de formación académica.
type Education struct {
	ID        int64         `json:"id"`
	Tenant    tenant.Tenant `json:"tenant"`
	School    string        `json:"school"`
	Degree    string        `json:"degree"`
	Field     string        `json:"field"`
	StartYear int           `json:"startYear"`
	EndYear   int           `json:"endYear"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TechStackItem es una tecnología del stack con nivel de dominio.
type TechStackItem struct {
	ID        int64         `json:"id"`
	Tenant    tenant.Tenant `json:"tenant"`
	Name      string        `json:"name"`
	Category  string        `json:"category"` // frontend | backend | data | infra | tooling
	Level     int           `json:"level"`    // 1..5
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Skill es una habilidad dentro de una categoría.
type Skill struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
	Level      int    `json:"level"` // 1..5
}

// SkillCategory agrupa skills. Las escrituras que tocan categoría + skills
// corren en una transacción (merge cross-tenant incluido).
type SkillCategory struct {
	ID        int64         `json:"id"`
	Tenant    tenant.Tenant `json:"tenant"`
	Name      string        `json:"name"`
	Skills    []Skill       `json:"skills"`
	SortOrder int           `json:"sortOrder"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PersonalInfo es el bloque de presentación. Una fila por tenant.
type PersonalInfo struct {
	ID        int64         `json:"id"`
	Tenant    tenant.Tenant `json:"tenant"`
	FullName  string        `json:"fullName"`
	Headline  string        `json:"headline"`
	Bio       string        `json:"bio"`
	Email     string        `json:"email"`
	Location  string        `json:"location"`
	AvatarURL string        `json:"avatarUrl,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ProcessStrategy es una fase de la metodología de trabajo.
type ProcessStrategy struct {
	ID          int64         `json:"id"`
	Tenant      tenant.Tenant `json:"tenant"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Phase       int           `json:"phase"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ExpertiseRadarItem es un eje del radar de expertise con su puntaje.
type ExpertiseRadarItem struct {
	ID        int64         `json:"id"`
	Tenant    tenant.Tenant `json:"tenant"`
	Axis      string        `json:"axis"`
	Score     int           `json:"score"` // 0..100
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// KeyAchievement es un logro destacado.
type KeyAchievement struct {
	ID          int64         `json:"id"`
	Tenant      tenant.Tenant `json:"tenant"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Year        int           `json:"year"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// AdminUser es una credencial del panel. No lleva tenant: un admin opera
// sobre las dos marcas.
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
