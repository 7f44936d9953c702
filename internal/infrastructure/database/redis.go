package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ConnectRedis returns nil when addr is empty or the server does not answer;
// callers treat a nil client as "caching disabled".
func ConnectRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, totals cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Error().Err(err).Str("addr", addr).Msg("redis unreachable, totals cache disabled")
		_ = rdb.Close()
		return nil
	}

	log.Info().Str("addr", addr).Msg("redis connected")
	return rdb
}
