// Package auth implementa el login del panel de admin.
package auth

import (
	"context"
	"errors"
	"strconv"

	"github.com/dropDatabas3/folio/internal/observability/logger"
	"github.com/dropDatabas3/folio/internal/security/password"
	"github.com/dropDatabas3/folio/internal/security/session"
	"github.com/dropDatabas3/folio/internal/store/core"
)

// ErrBadCredentials cubre email inexistente y password incorrecta por igual:
// la respuesta no filtra cuál de los dos falló.
var ErrBadCredentials = errors.New("auth: invalid credentials")

type Service struct {
	repo   core.Repository
	issuer *session.Issuer
}

func New(repo core.Repository, issuer *session.Issuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// Login verifica credenciales y emite un token de sesión.
func (s *Service) Login(ctx context.Context, email, pass string) (string, *core.AdminUser, error) {
	log := logger.From(ctx).With(logger.Layer("service"), logger.Op("auth.Login"))

	u, err := s.repo.GetAdminUserByEmail(ctx, email)
	if err == core.ErrNotFound {
		log.Warn("login for unknown email")
		return "", nil, ErrBadCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if !password.Verify(pass, u.PasswordHash) {
		log.Warn("login with wrong password", logger.Email(u.Email))
		return "", nil, ErrBadCredentials
	}

	tok, err := s.issuer.Issue(strconv.FormatInt(u.ID, 10), u.Email)
	if err != nil {
		return "", nil, err
	}

	log.Info("admin logged in", logger.Email(u.Email))
	return tok, u, nil
}
