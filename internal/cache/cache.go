// Package cache provee una abstracción chica de caching con dos backends:
//
//   - Memory (in-process, para desarrollo/testing)
//   - Redis (distribuido, para producción)
//
// Se usa para las respuestas públicas de contenido, con keys por
// (tenant, tipo de entidad). Las escrituras del admin invalidan por prefijo.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indica que la key no existe (o expiró).
var ErrNotFound = errors.New("cache: key not found")

// Client define las operaciones de cache.
type Client interface {
	// Get obtiene un valor. Retorna ErrNotFound si no existe.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set guarda un valor con TTL. Si ttl es 0 usa el default del backend.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete elimina una key (no-op si no existe).
	Delete(ctx context.Context, key string) error

	// DeletePrefix elimina todas las keys con el prefijo dado.
	// Es la operación de invalidación por tenant/entidad.
	DeletePrefix(ctx context.Context, prefix string) error

	// Ping verifica la conexión.
	Ping(ctx context.Context) error

	// Close libera recursos.
	Close() error
}

// Config configuración para crear un cliente de cache.
type Config struct {
	Kind       string // "memory" | "redis"
	Addr       string
	DB         int
	Prefix     string
	DefaultTTL time.Duration
}

// New crea un cliente según la configuración. Kind vacío → memory.
func New(cfg Config) (Client, error) {
	switch cfg.Kind {
	case "redis":
		return NewRedis(cfg)
	case "memory", "":
		return NewMemory(cfg.DefaultTTL), nil
	default:
		return nil, errors.New("cache: unknown kind " + cfg.Kind)
	}
}
