package applications

import (
	"context"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
)

// Repository persists applications. At most one pending or approved
// application exists per user; Create enforces it atomically.
type Repository interface {
	// Create stores app as pending. It returns common.ErrActiveApplicationExists
	// when the user already has an active application.
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	// ListForUser returns the user's applications, newest first.
	ListForUser(ctx context.Context, userID int64) ([]*models.Application, error)
	// ListPending returns the moderation queue, oldest first.
	ListPending(ctx context.Context) ([]*models.Application, error)
	// SetStatus moves an application from one status to another. It returns
	// common.ErrorNotFound for unknown ids and common.ErrAlreadyProcessed when
	// the stored status is no longer from.
	SetStatus(ctx context.Context, id int64, from, to models.Status, moderatorID *int64) error
	SetPublishReference(ctx context.Context, id int64, ref int64) error
	Delete(ctx context.Context, id int64) error
}
