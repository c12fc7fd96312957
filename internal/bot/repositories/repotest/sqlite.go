// Package repotest provides database fixtures for repository and service tests.
package repotest

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/teamfinder/internal/bot/migrations"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// NewSQLite returns a migrated SQLite database in a temp file. The pool is
// limited to one connection, which serialises writers the same way the bot
// configures it in production.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_time_format=sqlite", filepath.Join(t.TempDir(), "test.db"))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db, migrations.SQLite))
	return db
}
