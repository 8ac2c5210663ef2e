// skills.go — tech stack, categorías de skills y sus filas hijas
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/folio/internal/store/core"
	"github.com/dropDatabas3/folio/internal/tenant"
)

// ─── Tech stack ───

func (s *Store) ListTechStack(ctx context.Context, t tenant.Tenant) ([]core.TechStackItem, error) {
	const query = `
		SELECT id, tenant, name, category, level, created_at, updated_at
		FROM tech_stack_item WHERE tenant = $1
		ORDER BY id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.TechStackItem, 0)
	for rows.Next() {
		var i core.TechStackItem
		if err := rows.Scan(&i.ID, &i.Tenant, &i.Name, &i.Category, &i.Level, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (s *Store) GetTechStackItem(ctx context.Context, t tenant.Tenant, id int64) (*core.TechStackItem, error) {
	const query = `
		SELECT id, tenant, name, category, level, created_at, updated_at
		FROM tech_stack_item WHERE id = $1 AND tenant = $2
	`
	var i core.TechStackItem
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&i.ID, &i.Tenant, &i.Name, &i.Category, &i.Level, &i.CreatedAt, &i.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &i, err
}

func (s *Store) FindTechStackItemByName(ctx context.Context, t tenant.Tenant, name string) (*core.TechStackItem, error) {
	const query = `
		SELECT id, tenant, name, category, level, created_at, updated_at
		FROM tech_stack_item WHERE tenant = $1 AND LOWER(TRIM(name)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var i core.TechStackItem
	err := s.pool.QueryRow(ctx, query, t, name).Scan(&i.ID, &i.Tenant, &i.Name, &i.Category, &i.Level, &i.CreatedAt, &i.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	return &i, err
}

func (s *Store) CreateTechStackItem(ctx context.Context, t tenant.Tenant, i *core.TechStackItem) (int64, error) {
	const query = `
		INSERT INTO tech_stack_item (tenant, name, category, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, i.Name, i.Category, i.Level).Scan(&id)
	return id, err
}

func (s *Store) UpdateTechStackItem(ctx context.Context, t tenant.Tenant, i *core.TechStackItem) error {
	const query = `
		UPDATE tech_stack_item
		SET name = $3, category = $4, level = $5, updated_at = NOW()
		WHERE id = $1 AND tenant = $2
	`
	tag, err := s.pool.Exec(ctx, query, i.ID, t, i.Name, i.Category, i.Level)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTechStackItem(ctx context.Context, t tenant.Tenant, id int64) error {
	const query = `DELETE FROM tech_stack_item WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// ─── Skill categories ───

func (s *Store) ListSkillCategories(ctx context.Context, t tenant.Tenant) ([]core.SkillCategory, error) {
	const query = `
		SELECT id, tenant, name, sort_order, created_at, updated_at
		FROM skill_category WHERE tenant = $1
		ORDER BY sort_order, id
	`
	rows, err := s.pool.Query(ctx, query, t)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.SkillCategory, 0)
	for rows.Next() {
		var c core.SkillCategory
		if err := rows.Scan(&c.ID, &c.Tenant, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		skills, err := s.listSkills(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Skills = skills
	}
	return out, nil
}

func (s *Store) GetSkillCategory(ctx context.Context, t tenant.Tenant, id int64) (*core.SkillCategory, error) {
	const query = `
		SELECT id, tenant, name, sort_order, created_at, updated_at
		FROM skill_category WHERE id = $1 AND tenant = $2
	`
	var c core.SkillCategory
	err := s.pool.QueryRow(ctx, query, id, t).Scan(&c.ID, &c.Tenant, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.Skills, err = s.listSkills(ctx, c.ID)
	return &c, err
}

func (s *Store) FindSkillCategoryByName(ctx context.Context, t tenant.Tenant, name string) (*core.SkillCategory, error) {
	const query = `
		SELECT id FROM skill_category
		WHERE tenant = $1 AND LOWER(TRIM(name)) = LOWER(TRIM($2))
		ORDER BY id LIMIT 1
	`
	var id int64
	err := s.pool.QueryRow(ctx, query, t, name).Scan(&id)
	if err == pgx.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.GetSkillCategory(ctx, t, id)
}

func (s *Store) listSkills(ctx context.Context, categoryID int64) ([]core.Skill, error) {
	const query = `SELECT id, category_id, name, level FROM skill WHERE category_id = $1 ORDER BY id`
	rows, err := s.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]core.Skill, 0)
	for rows.Next() {
		var sk core.Skill
		if err := rows.Scan(&sk.ID, &sk.CategoryID, &sk.Name, &sk.Level); err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

func (s *Store) CreateSkillCategory(ctx context.Context, t tenant.Tenant, c *core.SkillCategory) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO skill_category (tenant, name, sort_order, created_at, updated_at)
		 VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id`,
		t, c.Name, c.SortOrder).Scan(&id)
	if err != nil {
		return 0, err
	}
	for _, sk := range c.Skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skill (category_id, name, level) VALUES ($1, $2, $3)`,
			id, sk.Name, sk.Level); err != nil {
			return 0, err
		}
	}
	return id, tx.Commit(ctx)
}

// ReplaceSkillCategory actualiza la categoría y reemplaza el set completo de
// skills. Todo o nada: una transacción por merge.
func (s *Store) ReplaceSkillCategory(ctx context.Context, t tenant.Tenant, c *core.SkillCategory) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE skill_category SET name = $3, sort_order = $4, updated_at = NOW()
		 WHERE id = $1 AND tenant = $2`,
		c.ID, t, c.Name, c.SortOrder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM skill WHERE category_id = $1`, c.ID); err != nil {
		return err
	}
	for _, sk := range c.Skills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO skill (category_id, name, level) VALUES ($1, $2, $3)`,
			c.ID, sk.Name, sk.Level); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) DeleteSkillCategory(ctx context.Context, t tenant.Tenant, id int64) error {
	// skill tiene FK ON DELETE CASCADE hacia skill_category
	const query = `DELETE FROM skill_category WHERE id = $1 AND tenant = $2`
	tag, err := s.pool.Exec(ctx, query, id, t)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}
