package storage

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT value FROM kv WHERE key = ?"
		if result := dialect.RewriteQuery(query); result != query {
			t.Errorf("RewriteQuery() should leave SQLite queries unchanged, got %v", result)
		}
	})

	t.Run("UpsertQuery", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertQuery(), "ON CONFLICT(key)") {
			t.Errorf("UpsertQuery() must use ON CONFLICT for SQLite, got %v", dialect.UpsertQuery())
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "INSERT INTO kv (key, value) VALUES (?, ?)"
		expected := "INSERT INTO kv (key, value) VALUES ($1, $2)"
		if result := dialect.RewriteQuery(query); result != expected {
			t.Errorf("RewriteQuery() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertQuery", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertQuery(), "ON CONFLICT (key)") {
			t.Errorf("UpsertQuery() must use ON CONFLICT for PostgreSQL, got %v", dialect.UpsertQuery())
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT `value` FROM kv WHERE `key` = ?"
		if result := dialect.RewriteQuery(query); result != query {
			t.Errorf("RewriteQuery() should leave MySQL queries unchanged, got %v", result)
		}
	})

	t.Run("UpsertQuery", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertQuery(), "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertQuery() must use ON DUPLICATE KEY for MySQL, got %v", dialect.UpsertQuery())
		}
	})

	t.Run("QuotedIdentifiers", func(t *testing.T) {
		// key and value are reserved words in MySQL
		for _, query := range []string{dialect.UpsertQuery(), dialect.SelectQuery(), dialect.DeleteQuery()} {
			if !strings.Contains(query, "`key`") {
				t.Errorf("query must backtick-quote the key column: %v", query)
			}
		}
	})
}

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT 1",
			expected: "SELECT 1",
		},
		{
			name:     "single placeholder",
			query:    "DELETE FROM kv WHERE key = ?",
			expected: "DELETE FROM kv WHERE key = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO kv (key, value) VALUES (?, ?)",
			expected: "INSERT INTO kv (key, value) VALUES ($1, $2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := rewritePlaceholdersToNumbered(tt.query); result != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %v, want %v", result, tt.expected)
			}
		})
	}
}
