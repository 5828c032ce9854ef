package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/loankeeper/internal/client/config"
	"github.com/dmitrijs2005/loankeeper/internal/client/repositories/kv"
	"github.com/pressly/goose/v3/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestRunMigrations_CreatesTables(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, database.DialectSQLite3))
	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "kv"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, database.DialectSQLite3))
	require.NoError(t, RunMigrations(ctx, db, database.DialectSQLite3))
}

func TestRunMigrations_UnsupportedDialect(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.Error(t, RunMigrations(context.Background(), db, database.DialectMySQL))
}

func TestOpen_SQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "data", "loans.db")

	s, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &kv.SQLiteStore{}, s)
	require.NoError(t, s.Set(ctx, kv.UsersKey, []byte(`{"alice":{}}`)))
	require.NoError(t, s.Close())

	s, err = Open(ctx, cfg)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, kv.UsersKey)
	require.NoError(t, err)
	assert.Equal(t, `{"alice":{}}`, string(got))
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{StorageBackend: config.StorageMemory})
	require.NoError(t, err)
	assert.IsType(t, &kv.MemoryStore{}, s)
}

func TestOpen_S3BuildsClientWithoutNetwork(t *testing.T) {
	cfg := &config.Config{
		StorageBackend: config.StorageS3,
		S3Bucket:       "loans",
		S3Region:       "us-east-1",
		S3Endpoint:     "http://127.0.0.1:9000",
		S3AccessKey:    "key",
		S3SecretKey:    "secret",
	}
	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &kv.S3Store{}, s)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageBackend: "tape"})
	require.Error(t, err)
}
