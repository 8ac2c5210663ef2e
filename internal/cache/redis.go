package cache

import (
	"context"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

// Redis es el backend distribuido. Todas las keys llevan el prefijo de la
// config para no pisar otros usos de la misma instancia.
type Redis struct {
	client     *rdb.Client
	prefix     string
	defaultTTL time.Duration
}

func NewRedis(cfg Config) (*Redis, error) {
	client := rdb.NewClient(&rdb.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "folio:"
	}
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &Redis{client: client, prefix: prefix, defaultTTL: ttl}, nil
}

func (r *Redis) key(k string) string { return r.prefix + k }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == rdb.Nil {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.defaultTTL
	}
	return r.client.Set(ctx, r.key(key), value, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// DeletePrefix borra con SCAN + DEL en lotes. El volumen acá es chico
// (keys por tenant/entidad), no hace falta nada más elaborado.
func (r *Redis) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	pattern := r.key(prefix) + "*"
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *Redis) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }
func (r *Redis) Close() error                   { return r.client.Close() }
