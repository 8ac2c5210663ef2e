// Package email envía los mensajes del formulario de contacto por SMTP.
package email

import (
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/dropDatabas3/folio/internal/observability/logger"
)

// Sender abstrae el envío para poder testear el servicio de contacto sin SMTP.
type Sender interface {
	Send(to, replyTo, subject, textBody string) error
}

// SMTPSender implementa Sender usando SMTP.
type SMTPSender struct {
	Host               string
	Port               int
	From               string
	User               string
	Pass               string
	InsecureSkipVerify bool
}

func NewSMTPSender(host string, port int, from, user, pass string) *SMTPSender {
	return &SMTPSender{
		Host: host,
		Port: port,
		From: from,
		User: user,
		Pass: pass,
	}
}

// Send envía un email de texto plano. replyTo lleva la casilla del visitante
// para poder responderle directo desde el cliente de mail.
func (s *SMTPSender) Send(to, replyTo, subject, textBody string) error {
	log := logger.L().With(
		logger.Component("SMTPSender"),
		logger.String("host", s.Host),
		logger.Int("port", s.Port),
	)

	m := mail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)

	d := mail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	d.TLSConfig = &tls.Config{
		ServerName:         s.Host,
		InsecureSkipVerify: s.InsecureSkipVerify, // solo dev
	}

	if err := d.DialAndSend(m); err != nil {
		log.Error("smtp send failed", logger.Err(err))
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Info("contact email sent")
	return nil
}
