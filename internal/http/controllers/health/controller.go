// Package health contiene el controller para health checks.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/store/core"
)

type Controller struct {
	repo    core.Repository
	version string
}

func NewController(repo core.Repository, version string) *Controller {
	return &Controller{repo: repo, version: version}
}

type response struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Healthz maneja GET /healthz. Degradado si la DB no responde.
func (c *Controller) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if c.version != "" {
		w.Header().Set("X-Service-Version", c.version)
	}

	if err := c.repo.Ping(ctx); err != nil {
		helpers.WriteJSON(w, http.StatusServiceUnavailable, response{Status: "unavailable", Version: c.version})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, response{Status: "ok", Version: c.version})
}
