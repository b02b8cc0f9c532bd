package database

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/rs/zerolog"
)

// SessionBackend is an opened session store plus its lifecycle hooks.
type SessionBackend struct {
	Store session.Store
	// Check pings the backing service; nil for local stores.
	Check func(ctx context.Context) error
	Close func()
}

// OpenSessionStore builds the store selected by SESSION_STORE. The postgres
// backend applies the embedded migrations before use.
func OpenSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*SessionBackend, error) {
	noop := func() {}

	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		return &SessionBackend{Store: session.NewMemoryStore(), Close: noop}, nil

	case config.SessionStoreFile:
		key, err := decodeFileKey(cfg.SessionFileKey)
		if err != nil {
			return nil, err
		}
		store, err := session.NewFileStore(cfg.SessionFile, key)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", store.Path()).Bool("sealed", key != nil).Msg("File session store")
		return &SessionBackend{Store: store, Close: noop}, nil

	case config.SessionStoreRedis:
		rdb, err := openSessionRedis(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, err
		}
		return &SessionBackend{
			Store: session.NewRedisStore(rdb, cfg.SessionNamespace, cfg.SessionTTL),
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			Close: func() { _ = rdb.Close() },
		}, nil

	case config.SessionStorePostgres:
		mg, err := NewMigrator(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		err = mg.Up()
		_ = mg.Close()
		if err != nil {
			return nil, fmt.Errorf("migrate session schema: %w", err)
		}

		pool, err := openSessionPool(ctx, cfg.DatabaseURL, cfg.MaxDBConns, log)
		if err != nil {
			return nil, err
		}
		return &SessionBackend{
			Store: session.NewPostgresStore(pool, cfg.SessionNamespace),
			Check: pool.Ping,
			Close: pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}

// decodeFileKey accepts a 64-character hex key. Empty disables sealing.
func decodeFileKey(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("SESSION_FILE_KEY must be hex: %w", err)
	}
	return key, nil
}
