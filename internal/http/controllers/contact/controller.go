// Package contact expone el formulario público de contacto.
package contact

import (
	"net/http"
	"strings"

	httpx "github.com/dropDatabas3/folio/internal/http"
	"github.com/dropDatabas3/folio/internal/http/dto"
	"github.com/dropDatabas3/folio/internal/http/helpers"
	"github.com/dropDatabas3/folio/internal/http/middlewares"
	contactsvc "github.com/dropDatabas3/folio/internal/http/services/contact"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/tenant"
	"github.com/dropDatabas3/folio/internal/validation"
)

type Controller struct {
	contact  *contactsvc.Service
	resolver *tenant.Resolver
}

func NewController(contact *contactsvc.Service, resolver *tenant.Resolver) *Controller {
	return &Controller{contact: contact, resolver: resolver}
}

// Send maneja POST /api/contact (rate-limited en el router).
func (c *Controller) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t := middlewares.GetTenant(ctx)

	var req dto.ContactRequest
	if !helpers.ReadJSON(w, r, &req) {
		return
	}

	if bad := validation.ValidContactMessage(req.Name, req.Email, req.Subject, req.Message); len(bad) > 0 {
		httpx.RecordContactMessage("rejected")
		helpers.WriteError(w, helpers.ErrBadRequest.WithDetail("invalid fields: "+strings.Join(bad, ", ")))
		return
	}

	err := c.contact.Send(ctx, t, c.resolver.Label(t), req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		httpx.RecordContactMessage("failed")
		logger.From(ctx).Error("contact send failed",
			logger.Layer("controller"),
			logger.Op("contact.Send"),
			logger.Err(err),
		)
		helpers.WriteError(w, helpers.ErrServiceUnavailable.WithDetail("could not deliver message"))
		return
	}

	httpx.RecordContactMessage("sent")
	helpers.WriteJSON(w, http.StatusAccepted, dto.ContactResponse{Sent: true})
}
