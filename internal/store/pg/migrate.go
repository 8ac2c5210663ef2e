package pg

import (
	"context"
	"fmt"
	"sort"

	migrations "github.com/dropDatabas3/folio/migrations/postgres"

	"github.com/dropDatabas3/folio/internal/observability/logger"
)

// Migrate aplica las migraciones embebidas que falten, en orden de nombre.
// Cada archivo corre dentro de su propia transacción y se registra en
// schema_migrations; re-ejecutar es seguro.
func (s *Store) Migrate(ctx context.Context) error {
	const bootstrap = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename   TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`
	if _, err := s.pool.Exec(ctx, bootstrap); err != nil {
		return fmt.Errorf("migrate: bootstrap: %w", err)
	}

	entries, err := migrations.SchemaFS.ReadDir(migrations.SchemaDir)
	if err != nil {
		return fmt.Errorf("migrate: read embedded dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		applied, err := s.migrationApplied(ctx, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		sql, err := migrations.SchemaFS.ReadFile(migrations.SchemaDir + "/" + name)
		if err != nil {
			return fmt.Errorf("migrate: read %s: %w", name, err)
		}

		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("migrate: begin %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migrate: apply %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (filename) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migrate: record %s: %w", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("migrate: commit %s: %w", name, err)
		}

		logger.L().Info("migration applied", logger.String("file", name))
	}

	return nil
}

func (s *Store) migrationApplied(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE filename = $1)`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("migrate: check %s: %w", name, err)
	}
	return exists, nil
}
