package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/teamfinder/internal/bot/migrations"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/applications"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnDialectRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var _ RepositoryManager = NewPostgresRepositoryManager()

	pg := NewPostgresRepositoryManager()
	assert.IsType(t, &users.SQLRepository{}, pg.Users(db))
	assert.IsType(t, &applications.SQLRepository{}, pg.Applications(db))
	assert.Equal(t, migrations.Postgres, pg.Dialect())

	lite := NewSQLiteRepositoryManager()
	assert.NotNil(t, lite.Users(db))
	assert.NotNil(t, lite.Applications(db))
	assert.Equal(t, migrations.SQLite, lite.Dialect())
}

func TestRunMigrations_PassesDialect(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := migrateUp
	defer func() { migrateUp = orig }()

	var got migrations.Dialect
	migrateUp = func(ctx context.Context, db *sql.DB, d migrations.Dialect) error {
		got = d
		return nil
	}

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	assert.Equal(t, migrations.Postgres, got)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := migrateUp
	defer func() { migrateUp = orig }()
	migrateUp = func(context.Context, *sql.DB, migrations.Dialect) error { return errors.New("boom") }

	assert.EqualError(t, NewSQLiteRepositoryManager().RunMigrations(context.Background(), db), "boom")
}

func TestDialectFor(t *testing.T) {
	assert.Equal(t, migrations.Postgres, DialectFor("postgres://u:p@localhost:5432/db"))
	assert.Equal(t, migrations.Postgres, DialectFor("PostgreSQL://localhost/db"))
	assert.Equal(t, migrations.SQLite, DialectFor("teamfinder.db"))
	assert.Equal(t, migrations.SQLite, DialectFor(":memory:"))
}

func TestOpen_SQLiteFileAndMigrate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bot.db")

	db, m, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, migrations.SQLite, m.Dialect())
	require.NoError(t, m.RunMigrations(ctx, db))

	u, err := m.Users(db).Upsert(ctx, 10, "x")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
	assert.Contains(t, sqliteDSN("bot.db"), "file:bot.db?_pragma=busy_timeout(5000)")
}
