package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/applications"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/users"
	"github.com/dmitrijs2005/teamfinder/internal/dbx"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Applications(db dbx.DBTX) applications.Repository
}
