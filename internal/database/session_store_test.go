package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glowbook/admin-console/internal/config"
	"github.com/glowbook/admin-console/internal/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionStoreLocal(t *testing.T) {
	ctx := context.Background()

	backend, err := OpenSessionStore(ctx, &config.Config{SessionStore: config.SessionStoreMemory}, zerolog.Nop())
	require.NoError(t, err)
	require.IsType(t, &session.MemoryStore{}, backend.Store)
	require.Nil(t, backend.Check)
	backend.Close()

	cfg := &config.Config{
		SessionStore:   config.SessionStoreFile,
		SessionFile:    filepath.Join(t.TempDir(), "session.json"),
		SessionFileKey: strings.Repeat("ab", 32),
	}
	backend, err = OpenSessionStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, backend.Store.Set(ctx, "accessToken", "t"))
	v, ok, err := backend.Store.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "t", v)
}

func TestOpenSessionStoreErrors(t *testing.T) {
	ctx := context.Background()

	_, err := OpenSessionStore(ctx, &config.Config{SessionStore: "etcd"}, zerolog.Nop())
	require.ErrorContains(t, err, `unknown session store "etcd"`)

	_, err = OpenSessionStore(ctx, &config.Config{
		SessionStore:   config.SessionStoreFile,
		SessionFile:    filepath.Join(t.TempDir(), "s.json"),
		SessionFileKey: "not-hex",
	}, zerolog.Nop())
	require.ErrorContains(t, err, "SESSION_FILE_KEY")
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Contains(t, names, "000001_create_admin_sessions.up.sql")
	require.Contains(t, names, "000001_create_admin_sessions.down.sql")
}

func TestOpenSessionConnectionsReportBadTargets(t *testing.T) {
	ctx := context.Background()

	_, err := openSessionPool(ctx, "postgres://%zz", 0, zerolog.Nop())
	require.ErrorContains(t, err, "parse DATABASE_URL")

	_, err = openSessionRedis(ctx, "http://localhost:6379", zerolog.Nop())
	require.ErrorContains(t, err, "parse REDIS_URL")

	_, err = openSessionRedis(ctx, "redis://127.0.0.1:1/0", zerolog.Nop())
	require.ErrorContains(t, err, "redis session store at 127.0.0.1:1 unreachable")
}
