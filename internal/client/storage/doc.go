// Package storage is the durable client storage: a small key/value table of
// named records kept in an SQLite database at the configured state path.
//
// The client persists exactly two records through it:
//
//   - "session":  JSON {"token": ..., "user": ...}
//   - "darkMode": JSON boolean
//
// Values are opaque bytes to this package; JSON encoding and the fallback to
// defaults on corrupted data belong to the stores that own each record.
//
// Open creates (or reuses) the database file and applies the embedded goose
// migrations. Repository is the abstraction the stores depend on;
// SQLiteRepository is the production implementation.
package storage
