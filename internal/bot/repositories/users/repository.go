package users

import (
	"context"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
)

type Repository interface {
	Upsert(ctx context.Context, telegramID int64, username string) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	SetModerator(ctx context.Context, telegramID int64, isModerator bool) error
	ListModerators(ctx context.Context) ([]*models.User, error)
}
