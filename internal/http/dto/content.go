// Package dto define los contratos JSON de la API.
package dto

// DataResponse es el envelope estándar de respuestas de contenido.
type DataResponse struct {
	Data any `json:"data"`
}

// ProjectRequest payload de create/update de proyecto.
type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	RepoURL     string   `json:"repoUrl"`
	LiveURL     string   `json:"liveUrl"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sortOrder"`
}

type ExperienceRequest struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	Summary   string `json:"summary"`
	StartDate string `json:"startDate"`         // YYYY-MM-DD
	EndDate   string `json:"endDate,omitempty"` // vacío = posición actual
	SortOrder int    `json:"sortOrder"`
}

type EducationRequest struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
}

type TechStackRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

type SkillRequest struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SkillCategoryRequest struct {
	Name      string         `json:"name"`
	Skills    []SkillRequest `json:"skills"`
	SortOrder int            `json:"sortOrder"`
}

type PersonalInfoRequest struct {
	FullName  string `json:"fullName"`
	Headline  string `json:"headline"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	AvatarURL string `json:"avatarUrl"`
}

type ProcessStrategyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phase       int    `json:"phase"`
}

type ExpertiseRadarRequest struct {
	Axis  string `json:"axis"`
	Score int    `json:"score"`
}

type AchievementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}
