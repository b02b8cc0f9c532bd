package session

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "accessToken", "a1"))
	require.NoError(t, store.Set(ctx, "user", `{"role":"admin"}`))
	require.NoError(t, store.Set(ctx, "accessToken", "a2"))

	v, ok, err := store.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a2", v)

	require.NoError(t, store.Delete(ctx, "accessToken", "refreshToken"))
	_, ok, err = store.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.False(t, ok)

	v, ok, err = store.Get(ctx, "user")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"role":"admin"}`, v)

	require.NoError(t, store.Delete(ctx, "user"))
	require.NoError(t, store.Delete(ctx, "user"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	require.Equal(t, path, store.Path())

	exerciseStore(t, store)

	_, err = os.Stat(path)
	require.True(t, errors.Is(err, os.ErrNotExist), "empty store removes its file")

	require.NoError(t, store.Set(context.Background(), "accessToken", "visible"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "visible")

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreSealed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.bin")
	key := bytes.Repeat([]byte{7}, 32)

	store, err := NewFileStore(path, key)
	require.NoError(t, err)
	exerciseStore(t, store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "accessToken", "secret-token"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret-token")

	reopened, err := NewFileStore(path, key)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "accessToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "secret-token", v)

	wrong, err := NewFileStore(path, bytes.Repeat([]byte{8}, 32))
	require.NoError(t, err)
	_, _, err = wrong.Get(ctx, "accessToken")
	require.Error(t, err)
}

func TestFileStoreRejectsShortKey(t *testing.T) {
	_, err := NewFileStore("session.json", []byte("short"))
	require.ErrorContains(t, err, "32 bytes")
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	store, err := NewFileStore(path, nil)
	require.NoError(t, err)
	_, _, err = store.Get(context.Background(), "user")
	require.ErrorContains(t, err, "decode session file")
}

// fakeDB records statements and serves rows from an in-memory table.
type fakeDB struct {
	rows  map[string]string
	execs []string
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, strings.Fields(sql)[0])
	switch {
	case strings.HasPrefix(strings.TrimSpace(sql), "INSERT"):
		f.rows[args[0].(string)+"/"+args[1].(string)] = args[2].(string)
	case strings.HasPrefix(strings.TrimSpace(sql), "DELETE"):
		for _, k := range args[1].([]string) {
			delete(f.rows, args[0].(string)+"/"+k)
		}
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	v, ok := f.rows[args[0].(string)+"/"+args[1].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func TestPostgresStore(t *testing.T) {
	db := &fakeDB{rows: map[string]string{}}
	exerciseStore(t, NewPostgresStore(db, "ops"))
	require.Contains(t, db.execs, "INSERT")
	require.Contains(t, db.execs, "DELETE")

	for k := range db.rows {
		require.True(t, strings.HasPrefix(k, "ops/"))
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() { rdb.Close() })

	namespace := "test-" + time.Now().Format("150405.000000")
	store := NewRedisStore(rdb, namespace, time.Minute)
	exerciseStore(t, store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "accessToken", "a1"))
	ttl, err := rdb.TTL(ctx, "admin_session:"+namespace+":accessToken").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))
	require.NoError(t, store.Delete(ctx, "accessToken"))
}
