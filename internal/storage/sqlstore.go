package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

// SQLStore is a Store backed by a single key-value table in a relational
// database, with dialect support for SQLite, PostgreSQL and MySQL.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// Open creates and configures a SQL-backed store. storeType selects the
// dialect; SQLite is the default.
func Open(storeType string, config DialectConfig) (*SQLStore, error) {
	var dialect Dialect

	switch strings.ToLower(storeType) {
	case "postgres", "postgresql":
		dialect = NewPostgresDialect()
	case "mysql":
		dialect = NewMySQLDialect()
	case "sqlite", "sqlite3", "":
		dialect = NewSQLiteDialect()
	default:
		return nil, fmt.Errorf("unsupported store type: %s", storeType)
	}

	db, err := sql.Open(dialect.DriverName(), dialect.DSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	if _, err := db.Exec(dialect.CreateTableQuery()); err != nil {
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLStore{db: db, dialect: dialect}, nil
}

// Close closes the underlying database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Get returns the value for key and whether the key was present.
func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	query := s.dialect.RewriteQuery(s.dialect.SelectQuery())
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value for key, replacing any previous value.
func (s *SQLStore) Set(key, value string) error {
	query := s.dialect.RewriteQuery(s.dialect.UpsertQuery())
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *SQLStore) Remove(key string) error {
	query := s.dialect.RewriteQuery(s.dialect.DeleteQuery())
	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}
