package kv

import "database/sql"

// PostgresStore persists the namespace in the kv table of a PostgreSQL
// database opened through the pgx stdlib driver.
type PostgresStore struct {
	sqlStore
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{sqlStore{db: db, q: queries{
		get: `SELECT value FROM kv WHERE key = $1`,
		upsert: `INSERT INTO kv (key, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		delete: `DELETE FROM kv WHERE key = $1`,
	}}}
}

var _ Store = (*PostgresStore)(nil)
