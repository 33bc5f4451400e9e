package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:kvtest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kvstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestKV_GetMissingKeyReturnsNil(t *testing.T) {
	kv := NewKV(setupDB(t))

	v, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestKV_SetThenGet(t *testing.T) {
	kv := NewKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), v)
}

func TestKV_SetOverwrites(t *testing.T) {
	kv := NewKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v1")))
	require.NoError(t, kv.Set(ctx, "k", []byte("v2")))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), v)
}

func TestKV_Delete(t *testing.T) {
	kv := NewKV(setupDB(t))
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	require.NoError(t, kv.Delete(ctx, "k"))

	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, v)

	// Deleting a missing key is fine.
	require.NoError(t, kv.Delete(ctx, "k"))
}
