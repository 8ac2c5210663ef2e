package pg

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

func (s *Store) ListProjects(ctx context.Context, t tenant.Tenant) ([]core.Project, error) {
	const query = `
		SELECT id, tenant, title, description, tags, repo_url, live_url, featured, sort_order, created_at, updated_at
		FROM project WHERE tenant = $1
		ORDER BY sort_order, id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.Project, 0)
	for rows.Next() {
		var p core.Project
		if err := rows.Scan(&p.ID, &p.Tenant, &p.Title, &p.Description, &p.Tags,
			&p.RepoURL, &p.LiveURL, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetProject(ctx context.Context, t tenant.Tenant, id int64) (*core.Project, error) {
	const query = `
		SELECT id, tenant, title, description, tags, repo_url, live_url, featured, sort_order, created_at, updated_at
		FROM project WHERE id = $1 AND tenant = $2
	`
	var p core.Project
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&p.ID, &p.Tenant, &p.Title, &p.Description, &p.Tags,
		&p.RepoURL, &p.LiveURL, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &p, err
}

func (s *Store) FindProjectByTitle(ctx context.Context, t tenant.Tenant, title string) (*core.Project, error) {
	const query = `
		SELECT id, tenant, title, description, tags, repo_url, live_url, featured, sort_order, created_at, updated_at
		FROM project WHERE tenant = $1 AND LOWER(TRIM(title)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var p core.Project
	err := s.pool.QueryRow(ctx, query, t, title).Scan(&p.ID, &p.Tenant, &p.Title, &p.Description, &p.Tags,
		&p.RepoURL, &p.LiveURL, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &p, err
}

func (s *Store) CreateProject(ctx context.Context, t tenant.Tenant, p *core.Project) (int64, error) {
	const query = `
		INSERT INTO project (tenant, title, description, tags, repo_url, live_url, featured, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, p.Title, p.Description, p.Tags,
		p.RepoURL, p.LiveURL, p.Featured, p.SortOrder).Scan(&id)
	return id, err
}

func (s *Store) UpdateProject(ctx context.Context, t tenant.Tenant, p *core.Project) error {
	const query = `
		UPDATE project
		SET title = $3, description = $4, tags = $5, repo_url = $6, live_url = $7,
		    featured = $8, sort_order = $9, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, p.ID, t, p.Title, p.Description, p.Tags,
		p.RepoURL, p.LiveURL, p.Featured, p.SortOrder)
	if err != nil {
		return err
	}
	// cero filas: id inexistente o del otro tenant — indistinguibles a propósito
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM project WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}
