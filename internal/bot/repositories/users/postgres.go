package users

import (
	"time"

	"github.com/dmitrijs2005/teamfinder/internal/dbx"
	"github.com/jmoiron/sqlx"
)

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, bind: sqlx.DOLLAR, now: time.Now}
}
