// resume.go — experiencia laboral y educación
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

// ─── Work experience ───

func (s *Store) ListExperience(ctx context.Context, t tenant.Tenant) ([]core.WorkExperience, error) {
	const query = `
		SELECT id, tenant, company, role, summary, start_date, end_date, sort_order, created_at, updated_at
		FROM work_experience WHERE tenant = $1
		ORDER BY sort_order, id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.WorkExperience, 0)
	for rows.Next() {
		var e core.WorkExperience
		if err := rows.Scan(&e.ID, &e.Tenant, &e.Company, &e.Role, &e.Summary,
			&e.StartDate, &e.EndDate, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetExperience(ctx context.Context, t tenant.Tenant, id int64) (*core.WorkExperience, error) {
	const query = `
		SELECT id, tenant, company, role, summary, start_date, end_date, sort_order, created_at, updated_at
		FROM work_experience WHERE id = $1 AND tenant = $2
	`
	var e core.WorkExperience
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&e.ID, &e.Tenant, &e.Company, &e.Role, &e.Summary,
		&e.StartDate, &e.EndDate, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &e, err
}

func (s *Store) FindExperienceByCompany(ctx context.Context, t tenant.Tenant, company string) (*core.WorkExperience, error) {
	const query = `
		SELECT id, tenant, company, role, summary, start_date, end_date, sort_order, created_at, updated_at
		FROM work_experience WHERE tenant = $1 AND LOWER(TRIM(company)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var e core.WorkExperience
	err := s.pool.QueryRow(ctx, query, t, company).Scan(&e.ID, &e.Tenant, &e.Company, &e.Role, &e.Summary,
		&e.StartDate, &e.EndDate, &e.SortOrder, &e.CreatedAt, &e.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &e, err
}

func (s *Store) CreateExperience(ctx context.Context, t tenant.Tenant, e *core.WorkExperience) (int64, error) {
	const query = `
		INSERT INTO work_experience (tenant, company, role, summary, start_date, end_date, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, e.Company, e.Role, e.Summary, e.StartDate, e.EndDate, e.SortOrder).Scan(&id)
	return id, err
}

func (s *Store) UpdateExperience(ctx context.Context, t tenant.Tenant, e *core.WorkExperience) error {
	const query = `
		UPDATE work_experience
		SET company = $3, role = $4, summary = $5, start_date = $6, end_date = $7, sort_order = $8, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, e.ID, t, e.Company, e.Role, e.Summary, e.StartDate, e.EndDate, e.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteExperience(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM work_experience WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ─── Education ───

func (s *Store) ListEducation(ctx context.Context, t tenant.Tenant) ([]core.Education, error) {
	const query = `
		SELECT id, tenant, school, degree, field, start_year, end_year, created_at, updated_at
		FROM education WHERE tenant = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.Education, 0)
	for rows.Next() {
		var e core.Education
		if err := rows.Scan(&e.ID, &e.Tenant, &e.School, &e.Degree, &e.Field,
			&e.StartYear, &e.EndYear, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetEducation(ctx context.Context, t tenant.Tenant, id int64) (*core.Education, error) {
	const query = `
		SELECT id, tenant, school, degree, field, start_year, end_year, created_at, updated_at
		FROM education WHERE id = $1 AND tenant = $2
	`
	var e core.Education
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&e.ID, &e.Tenant, &e.School, &e.Degree, &e.Field,
		&e.StartYear, &e.EndYear, &e.CreatedAt, &e.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &e, err
}

func (s *Store) FindEducationBySchool(ctx context.Context, t tenant.Tenant, school string) (*core.Education, error) {
	const query = `
		SELECT id, tenant, school, degree, field, start_year, end_year, created_at, updated_at
		FROM education WHERE tenant = $1 AND LOWER(TRIM(school)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var e core.Education
	err := s.pool.QueryRow(ctx, query, t, school).Scan(&e.ID, &e.Tenant, &e.School, &e.Degree, &e.Field,
		&e.StartYear, &e.EndYear, &e.CreatedAt, &e.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &e, err
}

func (s *Store) CreateEducation(ctx context.Context, t tenant.Tenant, e *core.Education) (int64, error) {
	const query = `
		INSERT INTO education (tenant, school, degree, field, start_year, end_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, e.School, e.Degree, e.Field, e.StartYear, e.EndYear).Scan(&id)
	return id, err
}

func (s *Store) UpdateEducation(ctx context.Context, t tenant.Tenant, e *core.Education) error {
	const query = `
		UPDATE education
		SET school = $3, degree = $4, field = $5, start_year = $6, end_year = $7, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, e.ID, t, e.School, e.Degree, e.Field, e.StartYear, e.EndYear)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEducation(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM education WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}
