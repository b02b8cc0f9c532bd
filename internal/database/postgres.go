package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	dialTimeout    = 5 * time.Second
	clientName     = "glowbook-admin-console"
	maxIdleSession = time.Minute
)

// openSessionPool connects the pool behind the postgres session store. The
// store issues one statement per call, so the pool stays small and idle
// connections are dropped once a CLI command is done with them.
func openSessionPool(ctx context.Context, databaseURL string, maxConns int32, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if maxConns > 0 {
		poolCfg.MaxConns = maxConns
	}
	poolCfg.MinConns = 0
	poolCfg.MaxConnIdleTime = maxIdleSession
	poolCfg.ConnConfig.ConnectTimeout = dialTimeout
	poolCfg.ConnConfig.RuntimeParams["application_name"] = clientName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create session pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres session store at %s unreachable: %w", poolCfg.ConnConfig.Host, err)
	}

	log.Debug().
		Str("host", poolCfg.ConnConfig.Host).
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("Session pool ready")
	return pool, nil
}
