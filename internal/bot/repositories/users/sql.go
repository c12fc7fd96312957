// Package users stores platform accounts and their moderator flag.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/common"
	"github.com/dmitrijs2005/teamfinder/internal/dbx"
	"github.com/jmoiron/sqlx"
)

// SQLRepository implements Repository on top of database/sql. Queries are
// written with ? placeholders and rebound for the target dialect.
type SQLRepository struct {
	db   dbx.DBTX
	bind int
	now  func() time.Time
}

func (r *SQLRepository) q(query string) string {
	return sqlx.Rebind(r.bind, query)
}

const userColumns = `id, telegram_id, username, is_moderator, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	u := &models.User{}
	if err := s.Scan(&u.ID, &u.TelegramID, &u.Username, &u.IsModerator, dbx.UTCTime{T: &u.CreatedAt}); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *SQLRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, r.q(query), args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

// Upsert creates the user on first contact and refreshes the username afterwards.
func (r *SQLRepository) Upsert(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	query :=
		`INSERT INTO users (telegram_id, username, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (telegram_id) DO UPDATE SET username = excluded.username
		 RETURNING ` + userColumns

	return r.getOne(ctx, query, telegramID, username, r.now().UTC())
}

func (r *SQLRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = ?`, telegramID)
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetByUsername matches case-insensitively.
func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower(?)`, username)
}

func (r *SQLRepository) SetModerator(ctx context.Context, telegramID int64, isModerator bool) error {
	res, err := r.db.ExecContext(ctx, r.q(`UPDATE users SET is_moderator = ? WHERE telegram_id = ?`), isModerator, telegramID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLRepository) ListModerators(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, r.q(`SELECT `+userColumns+` FROM users WHERE is_moderator = ? ORDER BY id`), true)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
