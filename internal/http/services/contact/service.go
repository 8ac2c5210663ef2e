// Package contact procesa los mensajes del formulario público de contacto.
package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/dropDatabas3/folio/internal/email"
	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/tenant"
)

type Service struct {
	sender email.Sender
	to     string
}

func New(sender email.Sender, to string) *Service {
	return &Service{sender: sender, to: to}
}

// Send arma y despacha el mensaje. El subject lleva la marca desde la que
// escribió el visitante; el Reply-To apunta a su casilla.
func (s *Service) Send(ctx context.Context, t tenant.Tenant, label, name, fromEmail, subject, message string) error {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Op("contact.Send"),
		logger.Tenant(t.String()),
	)

	if s.sender == nil || s.to == "" {
		log.Warn("contact form submitted but SMTP is not configured")
		return fmt.Errorf("contact: smtp not configured")
	}

	subj := strings.TrimSpace(subject)
	if subj == "" {
		subj = "New contact form message"
	}
	subj = fmt.Sprintf("[%s] %s", label, subj)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", strings.TrimSpace(name), strings.TrimSpace(fromEmail))
	fmt.Fprintf(&b, "Site: %s (%s)\n\n", label, t)
	b.WriteString(message)

	if err := s.sender.Send(s.to, fromEmail, subj, b.String()); err != nil {
		return err
	}

	log.Info("contact message delivered")
	return nil
}
