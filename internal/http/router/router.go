// Package router arma el árbol de rutas de la API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	admincontentctrl "github.com/dropDatabas3/folio/internal/http/controllers/admincontent"
	authctrl "github.com/dropDatabas3/folio/internal/http/controllers/auth"
	contactctrl "github.com/dropDatabas3/folio/internal/http/controllers/contact"
	contentctrl "github.com/dropDatabas3/folio/internal/http/controllers/content"
	crosstenantctrl "github.com/dropDatabas3/folio/internal/http/controllers/crosstenant"
	healthctrl "github.com/dropDatabas3/folio/internal/http/controllers/health"
	"github.com/dropDatabas3/folio/internal/http/middlewares"
	"github.com/dropDatabas3/folio/internal/rate"
)

// Deps agrupa controllers y middlewares que el router necesita.
type Deps struct {
	Content      *contentctrl.Controller
	AdminContent *admincontentctrl.Controller
	CrossTenant  *crosstenantctrl.Controller
	Auth         *authctrl.Controller
	Contact      *contactctrl.Controller
	Health       *healthctrl.Controller

	RequireAdmin   middlewares.Middleware
	ContactLimiter rate.Limiter

	// MetricsHandler para GET /metrics (nil = no exponer acá).
	MetricsHandler http.Handler
}

// New construye el router chi con todas las rutas montadas. Los middlewares
// globales (request id, tenant, logging...) se aplican por fuera, en el server.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// ─── Infra ───
	r.Get("/healthz", d.Health.Healthz)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	// ─── API pública (tenant por hostname) ───
	r.Route("/api", func(r chi.Router) {
		r.Get("/content/{entityType}", d.Content.List)
		r.Get("/content/{entityType}/{id}", d.Content.Get)
		r.Get("/updates", d.Content.Updates)

		r.With(middlewares.WithRateLimit(d.ContactLimiter)).
			Post("/contact", d.Contact.Send)

		// ─── Panel de admin ───
		r.Route("/admin", func(r chi.Router) {
			// login queda fuera del gate
			r.Post("/auth/login", d.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(d.RequireAdmin)

				r.Post("/auth/logout", d.Auth.Logout)
				r.Get("/auth/me", d.Auth.Me)
				r.Get("/tenant", d.Auth.ActiveTenant)
				r.Post("/tenant/select", d.Auth.SelectTenant)

				// fetch & merge cross-tenant
				r.Route("/cross-tenant", func(r chi.Router) {
					r.Post("/resolve", d.CrossTenant.Resolve)
					r.Get("/{entityType}", d.CrossTenant.Fetch)
					r.Get("/{entityType}/conflicts", d.CrossTenant.Conflicts)
				})

				// CRUD de contenido sobre el tenant activo del admin
				r.Route("/content", func(r chi.Router) {
					r.Get("/{entityType}", d.AdminContent.List)

					r.Route("/projects", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateProject)
						r.Get("/{id}", d.AdminContent.GetProject)
						r.Put("/{id}", d.AdminContent.UpdateProject)
						r.Delete("/{id}", d.AdminContent.DeleteProject)
					})

					r.Route("/experience", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateExperience)
						r.Get("/{id}", d.AdminContent.GetExperience)
						r.Put("/{id}", d.AdminContent.UpdateExperience)
						r.Delete("/{id}", d.AdminContent.DeleteExperience)
					})

					r.Route("/education", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateEducation)
						r.Get("/{id}", d.AdminContent.GetEducation)
						r.Put("/{id}", d.AdminContent.UpdateEducation)
						r.Delete("/{id}", d.AdminContent.DeleteEducation)
					})

					r.Route("/tech-stack", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateTechStackItem)
						r.Put("/{id}", d.AdminContent.UpdateTechStackItem)
						r.Delete("/{id}", d.AdminContent.DeleteTechStackItem)
					})

					r.Route("/skills", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateSkillCategory)
						r.Get("/{id}", d.AdminContent.GetSkillCategory)
						r.Put("/{id}", d.AdminContent.ReplaceSkillCategory)
						r.Delete("/{id}", d.AdminContent.DeleteSkillCategory)
					})

					r.Put("/personal", d.AdminContent.UpsertPersonalInfo)

					r.Route("/process-strategies", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateProcessStrategy)
						r.Put("/{id}", d.AdminContent.UpdateProcessStrategy)
						r.Delete("/{id}", d.AdminContent.DeleteProcessStrategy)
					})

					r.Route("/expertise-radar", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateExpertiseRadarItem)
						r.Put("/{id}", d.AdminContent.UpdateExpertiseRadarItem)
						r.Delete("/{id}", d.AdminContent.DeleteExpertiseRadarItem)
					})

					r.Route("/achievements", func(r chi.Router) {
						r.Post("/", d.AdminContent.CreateAchievement)
						r.Put("/{id}", d.AdminContent.UpdateAchievement)
						r.Delete("/{id}", d.AdminContent.DeleteAchievement)
					})
				})
			})
		})
	})

	return r
}
