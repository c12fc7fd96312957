package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/teamfinder/internal/common"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	r := NewPostgresRepository(db)
	r.now = func() time.Time { return time.Unix(0, 0) }
	return r, mock, db
}

func TestPostgresUpsert_UsesDollarPlaceholders(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(telegram_id,\s*username,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*ON\s+CONFLICT\s*\(telegram_id\)\s*DO\s+UPDATE.*RETURNING\s+id`

	rows := sqlmock.NewRows([]string{"id", "telegram_id", "username", "is_moderator", "created_at"}).
		AddRow(int64(5), int64(1001), "alice", false, time.Unix(0, 0))
	mock.ExpectQuery(q).
		WithArgs(int64(1001), "alice", time.Unix(0, 0).UTC()).
		WillReturnRows(rows)

	got, err := repo.Upsert(context.Background(), 1001, "alice")
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.ID != 5 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPostgresGetByTelegramID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT .* FROM users WHERE telegram_id = \$1$`).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByTelegramID(context.Background(), 9)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestPostgresSetModerator_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^UPDATE users SET is_moderator = \$1 WHERE telegram_id = \$2$`).
		WithArgs(true, int64(3)).
		WillReturnError(errors.New("db down"))

	err := repo.SetModerator(context.Background(), 3, true)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestPostgresListModerators(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "telegram_id", "username", "is_moderator", "created_at"}).
		AddRow(int64(1), int64(11), "m1", true, time.Unix(10, 0)).
		AddRow(int64(2), int64(22), "m2", true, time.Unix(20, 0))
	mock.ExpectQuery(`FROM users WHERE is_moderator = \$1 ORDER BY id`).
		WithArgs(true).
		WillReturnRows(rows)

	got, err := repo.ListModerators(context.Background())
	if err != nil {
		t.Fatalf("ListModerators error: %v", err)
	}
	if len(got) != 2 || got[1].TelegramID != 22 {
		t.Fatalf("unexpected moderators: %+v", got)
	}
}
