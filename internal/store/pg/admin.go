// admin.go — credenciales del panel y revisión de contenido
package pg

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

func (s *Store) GetAdminUserByEmail(ctx context.Context, email string) (*core.AdminUser, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM admin_user WHERE LOWER(email) = LOWER($1)
	`
	var u core.AdminUser
	err := s.pool.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &u, err
}

func (s *Store) CreateAdminUser(ctx context.Context, u *core.AdminUser) (int64, error) {
	const query = `
		INSERT INTO admin_user (email, password_hash, created_at)
		VALUES (LOWER($1), $2, NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, strings.TrimSpace(u.Email), u.PasswordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, core.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// LatestRevision: updated_at más reciente del contenido del tenant.
// GREATEST sobre los máximos de cada tabla; tablas vacías aportan epoch.
func (s *Store) LatestRevision(ctx context.Context, t tenant.Tenant) (time.Time, error) {
	const query = `
		SELECT GREATEST(
			COALESCE((SELECT MAX(updated_at) FROM project WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM work_experience WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM education WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM tech_stack_item WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM skill_category WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM personal_info WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM process_strategy WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM expertise_radar_item WHERE tenant = $1), 'epoch'::timestamptz),
			COALESCE((SELECT MAX(updated_at) FROM key_achievement WHERE tenant = $1), 'epoch'::timestamptz)
		)
	`
	var ts time.Time
	err := s.pool.QueryRow(ctx, query, t).Scan(&ts)
	return ts, err
}
