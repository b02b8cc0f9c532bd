package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisIOTimeout = 2 * time.Second

// openSessionRedis connects the client behind the redis session store. A
// session is a handful of keys, so two pooled connections are plenty.
func openSessionRedis(ctx context.Context, redisURL string, log zerolog.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	opt.ClientName = clientName
	opt.DialTimeout = dialTimeout
	opt.ReadTimeout = redisIOTimeout
	opt.WriteTimeout = redisIOTimeout
	opt.PoolSize = 2

	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis session store at %s unreachable: %w", opt.Addr, err)
	}

	log.Debug().Str("addr", opt.Addr).Int("db", opt.DB).Msg("Session redis ready")
	return rdb, nil
}
