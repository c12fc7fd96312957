package applications

import (
	"time"

	"github.com/dmitrijs2005/teamfinder/internal/dbx"
	"github.com/jmoiron/sqlx"
)

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, bind: sqlx.QUESTION, now: time.Now}
}
