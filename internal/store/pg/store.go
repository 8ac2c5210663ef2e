// Package pg implementa core.Repository sobre Postgres con pgx/v5.
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/folio/internal/observability/logger"
)

type Store struct{ pool *pgxpool.Pool }

// Config es el tuning opcional del pool.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

func New(ctx context.Context, dsn string, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		pcfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	// Mapear MaxIdleConns → MinConns (pgxpool)
	if cfg.MaxIdleConns > 0 {
		pcfg.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != "" {
		if d, err := time.ParseDuration(cfg.ConnMaxLifetime); err == nil {
			pcfg.MaxConnLifetime = d
			pcfg.MaxConnIdleTime = d
		}
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 8
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	// Arranque no bloqueante: ping best-effort, la app puede levantar aunque
	// la DB esté momentáneamente caída.
	if err := pool.Ping(ctx); err != nil {
		logger.L().Warn("pg pool startup ping failed", logger.Err(err))
	} else {
		logger.L().Info("pg pool ready", logger.Int("max_conns", int(pcfg.MaxConns)))
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close cierra el pool subyacente (idempotente).
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Pool expone el pool interno para usos avanzados (metrics/migraciones).
func (s *Store) Pool() *pgxpool.Pool {
	if s == nil {
		return nil
	}
	return s.pool
}

// PoolStats devuelve un snapshot del estado del pool (nil si no hay pool).
func (s *Store) PoolStats() *pgxpool.Stat {
	if s == nil || s.pool == nil {
		return nil
	}
	return s.pool.Stat()
}
