// Package repomanager vends dialect-specific repositories and runs the
// embedded schema migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/teamfinder/internal/bot/migrations"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/applications"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/users"
	"github.com/dmitrijs2005/teamfinder/internal/dbx"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager binds repositories to one SQL dialect.
type SQLRepositoryManager struct {
	dialect migrations.Dialect
}

func (m *SQLRepositoryManager) Dialect() migrations.Dialect {
	return m.dialect
}

func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	if m.dialect == migrations.Postgres {
		return users.NewPostgresRepository(db)
	}
	return users.NewSQLiteRepository(db)
}

func (m *SQLRepositoryManager) Applications(db dbx.DBTX) applications.Repository {
	if m.dialect == migrations.Postgres {
		return applications.NewPostgresRepository(db)
	}
	return applications.NewSQLiteRepository(db)
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up

func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, m.dialect)
}

// NewPostgresRepositoryManager returns a manager for PostgreSQL via pgx.
func NewPostgresRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: migrations.Postgres}
}

// NewSQLiteRepositoryManager returns a manager for SQLite via modernc.
func NewSQLiteRepositoryManager() *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: migrations.SQLite}
}

// DialectFor picks the dialect for a DSN: postgres:// and postgresql://
// URLs use PostgreSQL, everything else is a SQLite file.
func DialectFor(dsn string) migrations.Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return migrations.Postgres
	}
	return migrations.SQLite
}

// Open connects to dsn and returns the pool along with a matching manager.
// SQLite pools are limited to one connection.
func Open(ctx context.Context, dsn string) (*sql.DB, *SQLRepositoryManager, error) {
	var (
		db  *sql.DB
		m   *SQLRepositoryManager
		err error
	)

	switch DialectFor(dsn) {
	case migrations.Postgres:
		db, err = sql.Open("pgx", dsn)
		m = NewPostgresRepositoryManager()
	default:
		db, err = sql.Open("sqlite", sqliteDSN(dsn))
		m = NewSQLiteRepositoryManager()
		if err == nil {
			db.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	return db, m, nil
}

func sqliteDSN(dsn string) string {
	if dsn == ":memory:" || strings.Contains(dsn, "?") {
		return dsn
	}
	return "file:" + strings.TrimPrefix(dsn, "file:") + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_time_format=sqlite"
}
