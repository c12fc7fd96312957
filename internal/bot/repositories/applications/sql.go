// Package applications stores teammate-search applications.
package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/common"
	"github.com/dmitrijs2005/teamfinder/internal/dbx"
	"github.com/jmoiron/sqlx"
)

// SQLRepository implements Repository for PostgreSQL and SQLite. Sets are
// stored as JSON arrays of labels and codes.
type SQLRepository struct {
	db   dbx.DBTX
	bind int
	now  func() time.Time
}

func (r *SQLRepository) q(query string) string {
	return sqlx.Rebind(r.bind, query)
}

const appColumns = `id, user_id, status, riot_id, age, rank_name, roles, agents, region, servers,
	bio, contact, moderator_id, channel_message_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func encodeSet(s []string) (string, error) {
	if s == nil {
		s = []string{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSet(s string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode set %q: %w", s, err)
	}
	return out, nil
}

func scanApplication(s scanner) (*models.Application, error) {
	var (
		a                      models.Application
		status                 string
		roles, agents, servers string
		moderatorID, publish   sql.NullInt64
	)

	err := s.Scan(&a.ID, &a.UserID, &status, &a.RiotID, &a.Age, &a.Rank, &roles, &agents, &a.Region, &servers,
		&a.Bio, &a.Contact, &moderatorID, &publish, dbx.UTCTime{T: &a.CreatedAt}, dbx.UTCTime{T: &a.UpdatedAt})
	if err != nil {
		return nil, err
	}

	a.Status = models.Status(status)
	if a.Roles, err = decodeSet(roles); err != nil {
		return nil, err
	}
	if a.Agents, err = decodeSet(agents); err != nil {
		return nil, err
	}
	if a.Servers, err = decodeSet(servers); err != nil {
		return nil, err
	}
	if moderatorID.Valid {
		a.ModeratorID = &moderatorID.Int64
	}
	if publish.Valid {
		a.PublishRef = &publish.Int64
	}
	return &a, nil
}

func (r *SQLRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	roles, err := encodeSet(app.Roles)
	if err != nil {
		return nil, err
	}
	agents, err := encodeSet(app.Agents)
	if err != nil {
		return nil, err
	}
	servers, err := encodeSet(app.Servers)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO applications (user_id, status, riot_id, age, rank_name, roles, agents, region, servers,
			bio, contact, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT DO NOTHING
		 RETURNING id`

	now := r.now().UTC()
	var id int64
	err = r.db.QueryRowContext(ctx, r.q(query),
		app.UserID, string(models.StatusPending), app.RiotID, app.Age, app.Rank, roles, agents, app.Region, servers,
		app.Bio, app.Contact, now, now).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrActiveApplicationExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	created := *app
	created.ID = id
	created.Status = models.StatusPending
	created.ModeratorID = nil
	created.PublishRef = nil
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	row := r.db.QueryRowContext(ctx, r.q(`SELECT `+appColumns+` FROM applications WHERE id = ?`), id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
	rows, err := r.db.QueryContext(ctx, r.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *SQLRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Application, error) {
	return r.list(ctx,
		`SELECT `+appColumns+` FROM applications WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
}

func (r *SQLRepository) ListPending(ctx context.Context) ([]*models.Application, error) {
	return r.list(ctx,
		`SELECT `+appColumns+` FROM applications WHERE status = ? ORDER BY created_at ASC, id ASC`,
		string(models.StatusPending))
}

func (r *SQLRepository) SetStatus(ctx context.Context, id int64, from, to models.Status, moderatorID *int64) error {
	if !to.Active() {
		return fmt.Errorf("status %q is not stored: %w", to, common.ErrorValidation)
	}

	var mod sql.NullInt64
	if moderatorID != nil {
		mod = sql.NullInt64{Int64: *moderatorID, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		r.q(`UPDATE applications SET status = ?, moderator_id = ?, updated_at = ? WHERE id = ? AND status = ?`),
		string(to), mod, r.now().UTC(), id, string(from))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 1 {
		return nil
	}

	var current string
	err = r.db.QueryRowContext(ctx, r.q(`SELECT status FROM applications WHERE id = ?`), id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return common.ErrAlreadyProcessed
}

func (r *SQLRepository) SetPublishReference(ctx context.Context, id int64, ref int64) error {
	res, err := r.db.ExecContext(ctx,
		r.q(`UPDATE applications SET channel_message_id = ?, updated_at = ? WHERE id = ?`),
		ref, r.now().UTC(), id)
	return affectedOne(res, err)
}

func (r *SQLRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.q(`DELETE FROM applications WHERE id = ?`), id)
	return affectedOne(res, err)
}

func affectedOne(res sql.Result, err error) error {
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
