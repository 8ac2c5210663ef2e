// profile.go — personal info, process strategies, expertise radar y achievements
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

// ─── Personal info (una fila por tenant) ───

func (s *Store) GetPersonalInfo(ctx context.Context, t tenant.Tenant) (*core.PersonalInfo, error) {
	const query = `
		SELECT id, tenant, full_name, headline, bio, email, location, avatar_url, updated_at
		FROM personal_info WHERE tenant = $1
	`
	var p core.PersonalInfo
	err := s.pool.QueryRow(ctx, query, t).Scan(&p.ID, &p.Tenant, &p.FullName, &p.Headline,
		&p.Bio, &p.Email, &p.Location, &p.AvatarURL, &p.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &p, err
}

func (s *Store) UpsertPersonalInfo(ctx context.Context, t tenant.Tenant, p *core.PersonalInfo) error {
	const query = `
		INSERT INTO personal_info (tenant, full_name, headline, bio, email, location, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (tenant) DO UPDATE
		SET full_name = $2, headline = $3, bio = $4, email = $5, location = $6, avatar_url = $7, updated_at = NOW()
	`
	_, err := s.pool.Exec(ctx, query, t, p.FullName, p.Headline, p.Bio, p.Email, p.Location, p.AvatarURL)
	return err
}

// ─── Process strategies ───

func (s *Store) ListProcessStrategies(ctx context.Context, t tenant.Tenant) ([]core.ProcessStrategy, error) {
	const query = `
		SELECT id, tenant, name, description, phase, created_at, updated_at
		FROM process_strategy WHERE tenant = $1
		ORDER BY phase, id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.ProcessStrategy, 0)
	for rows.Next() {
		var st core.ProcessStrategy
		if err := rows.Scan(&st.ID, &st.Tenant, &st.Name, &st.Description, &st.Phase, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *Store) GetProcessStrategy(ctx context.Context, t tenant.Tenant, id int64) (*core.ProcessStrategy, error) {
	const query = `
		SELECT id, tenant, name, description, phase, created_at, updated_at
		FROM process_strategy WHERE id = $1 AND tenant = $2
	`
	var st core.ProcessStrategy
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&st.ID, &st.Tenant, &st.Name, &st.Description, &st.Phase, &st.CreatedAt, &st.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &st, err
}

func (s *Store) FindProcessStrategyByName(ctx context.Context, t tenant.Tenant, name string) (*core.ProcessStrategy, error) {
	const query = `
		SELECT id, tenant, name, description, phase, created_at, updated_at
		FROM process_strategy WHERE tenant = $1 AND LOWER(TRIM(name)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var st core.ProcessStrategy
	err := s.pool.QueryRow(ctx, query, t, name).Scan(&st.ID, &st.Tenant, &st.Name, &st.Description, &st.Phase, &st.CreatedAt, &st.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &st, err
}

func (s *Store) CreateProcessStrategy(ctx context.Context, t tenant.Tenant, st *core.ProcessStrategy) (int64, error) {
	const query = `
		INSERT INTO process_strategy (tenant, name, description, phase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, st.Name, st.Description, st.Phase).Scan(&id)
	return id, err
}

func (s *Store) UpdateProcessStrategy(ctx context.Context, t tenant.Tenant, st *core.ProcessStrategy) error {
	const query = `
		UPDATE process_strategy
		SET name = $3, description = $4, phase = $5, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, st.ID, t, st.Name, st.Description, st.Phase)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteProcessStrategy(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM process_strategy WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ─── Expertise radar ───

func (s *Store) ListExpertiseRadar(ctx context.Context, t tenant.Tenant) ([]core.ExpertiseRadarItem, error) {
	const query = `
		SELECT id, tenant, axis, score, created_at, updated_at
		FROM expertise_radar_item WHERE tenant = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.ExpertiseRadarItem, 0)
	for rows.Next() {
		var i core.ExpertiseRadarItem
		if err := rows.Scan(&i.ID, &i.Tenant, &i.Axis, &i.Score, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (s *Store) GetExpertiseRadarItem(ctx context.Context, t tenant.Tenant, id int64) (*core.ExpertiseRadarItem, error) {
	const query = `
		SELECT id, tenant, axis, score, created_at, updated_at
		FROM expertise_radar_item WHERE id = $1 AND tenant = $2
	`
	var i core.ExpertiseRadarItem
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&i.ID, &i.Tenant, &i.Axis, &i.Score, &i.CreatedAt, &i.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &i, err
}

func (s *Store) FindExpertiseRadarItemByAxis(ctx context.Context, t tenant.Tenant, axis string) (*core.ExpertiseRadarItem, error) {
	const query = `
		SELECT id, tenant, axis, score, created_at, updated_at
		FROM expertise_radar_item WHERE tenant = $1 AND LOWER(TRIM(axis)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var i core.ExpertiseRadarItem
	err := s.pool.QueryRow(ctx, query, t, axis).Scan(&i.ID, &i.Tenant, &i.Axis, &i.Score, &i.CreatedAt, &i.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &i, err
}

func (s *Store) CreateExpertiseRadarItem(ctx context.Context, t tenant.Tenant, i *core.ExpertiseRadarItem) (int64, error) {
	const query = `
		INSERT INTO expertise_radar_item (tenant, axis, score, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, i.Axis, i.Score).Scan(&id)
	return id, err
}

func (s *Store) UpdateExpertiseRadarItem(ctx context.Context, t tenant.Tenant, i *core.ExpertiseRadarItem) error {
	const query = `
		UPDATE expertise_radar_item
		SET axis = $3, score = $4, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, i.ID, t, i.Axis, i.Score)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteExpertiseRadarItem(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM expertise_radar_item WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ─── Key achievements ───

func (s *Store) ListAchievements(ctx context.Context, t tenant.Tenant) ([]core.KeyAchievement, error) {
	const query = `
		SELECT id, tenant, title, description, year, created_at, updated_at
		FROM key_achievement WHERE tenant = $1
		ORDER BY year DESC, id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.KeyAchievement, 0)
	for rows.Next() {
		var a core.KeyAchievement
		if err := rows.Scan(&a.ID, &a.Tenant, &a.Title, &a.Description, &a.Year, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetAchievement(ctx context.Context, t tenant.Tenant, id int64) (*core.KeyAchievement, error) {
	const query = `
		SELECT id, tenant, title, description, year, created_at, updated_at
		FROM key_achievement WHERE id = $1 AND tenant = $2
	`
	var a core.KeyAchievement
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&a.ID, &a.Tenant, &a.Title, &a.Description, &a.Year, &a.CreatedAt, &a.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &a, err
}

func (s *Store) CreateAchievement(ctx context.Context, t tenant.Tenant, a *core.KeyAchievement) (int64, error) {
	const query = `
		INSERT INTO key_achievement (tenant, title, description, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, a.Title, a.Description, a.Year).Scan(&id)
	return id, err
}

func (s *Store) UpdateAchievement(ctx context.Context, t tenant.Tenant, a *core.KeyAchievement) error {
	const query = `
		UPDATE key_achievement
		SET title = $3, description = $4, year = $5, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, a.ID, t, a.Title, a.Description, a.Year)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAchievement(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM key_achievement WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}
