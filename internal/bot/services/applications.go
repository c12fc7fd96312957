package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/repomanager"
	"github.com/dmitrijs2005/teamfinder/internal/common"
	"github.com/dmitrijs2005/teamfinder/internal/dbx"
)

type ApplicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewApplicationService(db *sql.DB, m repomanager.RepositoryManager) *ApplicationService {
	return &ApplicationService{db: db, repomanager: m}
}

// Latest returns the user's newest application or common.ErrorNotFound.
func (s *ApplicationService) Latest(ctx context.Context, telegramID int64) (*models.Application, error) {
	user, err := s.repomanager.Users(s.db).GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	apps, err := s.repomanager.Applications(s.db).ListForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, common.ErrorNotFound
	}
	return apps[0], nil
}

// Active returns the user's pending or approved application, if any.
func (s *ApplicationService) Active(ctx context.Context, telegramID int64) (*models.Application, error) {
	app, err := s.Latest(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if !app.Status.Active() {
		return nil, common.ErrorNotFound
	}
	return app, nil
}

// Submit stores a finished profile as a pending application. The user row
// and the application are written in one transaction; a concurrent
// submission by the same user yields common.ErrActiveApplicationExists.
func (s *ApplicationService) Submit(ctx context.Context, telegramID int64, username string, p models.Profile) (*models.Application, error) {
	var created *models.Application
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := s.repomanager.Users(tx).Upsert(ctx, telegramID, username)
		if err != nil {
			return err
		}
		created, err = s.repomanager.Applications(tx).Create(ctx, &models.Application{UserID: user.ID, Profile: p})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrActiveApplicationExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	return created, nil
}

// Approve marks a pending application approved by the given moderator and
// returns the updated record.
func (s *ApplicationService) Approve(ctx context.Context, id int64, moderatorTelegramID int64) (*models.Application, error) {
	mod, err := s.repomanager.Users(s.db).GetByTelegramID(ctx, moderatorTelegramID)
	if err != nil {
		return nil, fmt.Errorf("error loading moderator: %w", err)
	}

	repo := s.repomanager.Applications(s.db)
	if err := repo.SetStatus(ctx, id, models.StatusPending, models.StatusApproved, &mod.ID); err != nil {
		return nil, err
	}
	return repo.GetByID(ctx, id)
}

func (s *ApplicationService) SetPublishReference(ctx context.Context, id int64, ref int64) error {
	return s.repomanager.Applications(s.db).SetPublishReference(ctx, id, ref)
}

func (s *ApplicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	return s.repomanager.Applications(s.db).GetByID(ctx, id)
}

func (s *ApplicationService) Pending(ctx context.Context) ([]*models.Application, error) {
	return s.repomanager.Applications(s.db).ListPending(ctx)
}

func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Applications(s.db).Delete(ctx, id)
}

// Owner returns the user who submitted app.
func (s *ApplicationService) Owner(ctx context.Context, app *models.Application) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, app.UserID)
}
