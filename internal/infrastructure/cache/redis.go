package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Stanko5566/lean-cockpit-api/pkg/logger"
)

// TTL de las entradas: el invalidador explícito manda, el TTL es la red de
// seguridad si una invalidación se pierde.
const redisTTL = 10 * time.Minute

const keyPrefix = "lean-cockpit:list:"

// Redis cache de listados sobre Redis. Cualquier fallo degrada a miss y se
// registra: el cache nunca propaga errores a los casos de uso.
type Redis struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedis crea el adaptador sobre un cliente existente.
func NewRedis(client *redis.Client, log *logger.Logger) *Redis {
	return &Redis{client: client, log: log}
}

// Get devuelve la entrada y si existe. Un error de Redis cuenta como miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn().Err(err).Str("key", key).Msg("fallo leyendo cache, se trata como miss")
		}
		return nil, false
	}
	return payload, true
}

// Set guarda la entrada con TTL.
func (r *Redis) Set(ctx context.Context, key string, payload []byte) {
	if err := r.client.Set(ctx, keyPrefix+key, payload, redisTTL).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("fallo escribiendo cache")
	}
}

// Invalidate elimina la entrada.
func (r *Redis) Invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("fallo invalidando cache")
	}
}
