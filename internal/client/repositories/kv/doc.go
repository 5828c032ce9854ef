// Package kv is the persistence port of the LoanKeeper client: a flat
// key/value namespace holding JSON documents.
//
// # Layout
//
//	users                    username -> {password, name, createdAt}
//	currentUser              {username, name, loginTime}, absent when logged out
//	studentLoans_{username}  [Loan...] with embedded payments
//	achievements_{username}  [{id, earnedAt}...], a rebuildable cache
//
// # Backends
//
//   - MemoryStore  : process-local map, used by tests and -s memory
//   - SQLiteStore  : local database file (modernc.org/sqlite)
//   - PostgresStore: shared database through pgx
//   - S3Store      : one object per key in an S3-compatible bucket
//
// Every backend returns (nil, nil) from Get for a missing key. Values are
// persisted wholesale; there is no partial update.
package kv
