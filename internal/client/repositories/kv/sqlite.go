package kv

import "database/sql"

// SQLiteStore persists the namespace in the kv table of a SQLite database.
// The schema is created by the sqlite migrations in internal/client/migrations.
type SQLiteStore struct {
	sqlStore
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{sqlStore{db: db, q: queries{
		get: `SELECT value FROM kv WHERE key = ?`,
		upsert: `INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		delete: `DELETE FROM kv WHERE key = ?`,
	}}}
}

var _ Store = (*SQLiteStore)(nil)
