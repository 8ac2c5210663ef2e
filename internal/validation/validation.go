// Package validation: reglas de entrada compartidas entre controllers y CLI.
package validation

import (
	"regexp"
	"strings"
)

// Tipos de entidad que expone la API de contenido y cross-tenant.
// El orden es el de presentación en listados.
var EntityTypes = []string{
	"projects",
	"experience",
	"education",
	"tech-stack",
	"skills",
	"personal",
	"expertise-radar",
	"process-strategies",
	"achievements",
}

var entityTypeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(EntityTypes))
	for _, e := range EntityTypes {
		m[e] = struct{}{}
	}
	return m
}()

// ValidEntityType reporta si name es un tipo de entidad conocido.
// Case-sensitive: los paths de la API usan siempre minúsculas.
func ValidEntityType(name string) bool {
	_, ok := entityTypeSet[name]
	return ok
}

// emailRe: validación pragmática, no RFC 5322 completo.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && len(s) <= 254 && emailRe.MatchString(s)
}

// Límites del formulario de contacto.
const (
	MaxContactNameLen    = 120
	MaxContactSubjectLen = 200
	MaxContactMessageLen = 5000
)

// ValidContactMessage valida el payload de contacto y devuelve los campos
// con problemas (vacío = ok).
func ValidContactMessage(name, email, subject, message string) []string {
	var bad []string
	if strings.TrimSpace(name) == "" || len(name) > MaxContactNameLen {
		bad = append(bad, "name")
	}
	if !ValidEmail(email) {
		bad = append(bad, "email")
	}
	if len(subject) > MaxContactSubjectLen {
		bad = append(bad, "subject")
	}
	if strings.TrimSpace(message) == "" || len(message) > MaxContactMessageLen {
		bad = append(bad, "message")
	}
	return bad
}
