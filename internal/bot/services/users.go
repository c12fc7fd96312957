// Package services contains the bot's business operations on top of the
// repositories. UserService tracks accounts and moderator privilege;
// ApplicationService drives the application lifecycle.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teamfinder/internal/bot/config"
	"github.com/dmitrijs2005/teamfinder/internal/bot/models"
	"github.com/dmitrijs2005/teamfinder/internal/bot/repositories/repomanager"
	"github.com/dmitrijs2005/teamfinder/internal/common"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	ownerID     int64
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{db: db, repomanager: m, ownerID: cfg.OwnerID}
}

// Touch records an interaction, creating the user on first contact.
func (s *UserService) Touch(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	u, err := s.repomanager.Users(s.db).Upsert(ctx, telegramID, username)
	if err != nil {
		return nil, fmt.Errorf("error saving user: %w", err)
	}
	return u, nil
}

func (s *UserService) IsOwner(telegramID int64) bool {
	return s.ownerID != 0 && telegramID == s.ownerID
}

// IsModerator reads the flag from storage on every call so revocations
// take effect immediately. Unknown users are not moderators.
func (s *UserService) IsModerator(ctx context.Context, telegramID int64) (bool, error) {
	u, err := s.repomanager.Users(s.db).GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error loading user: %w", err)
	}
	return u.IsModerator, nil
}

func (s *UserService) Get(ctx context.Context, telegramID int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByTelegramID(ctx, telegramID)
}

// Find resolves an owner-supplied identifier: a numeric platform id,
// "@username" or a bare username.
func (s *UserService) Find(ctx context.Context, identifier string) (*models.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, common.ErrorNotFound
	}

	repo := s.repomanager.Users(s.db)
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil && id > 0 {
		return repo.GetByTelegramID(ctx, id)
	}
	return repo.GetByUsername(ctx, strings.TrimPrefix(identifier, "@"))
}

func (s *UserService) SetModerator(ctx context.Context, telegramID int64, isModerator bool) error {
	if err := s.repomanager.Users(s.db).SetModerator(ctx, telegramID, isModerator); err != nil {
		return fmt.Errorf("error updating moderator flag: %w", err)
	}
	return nil
}

func (s *UserService) Moderators(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).ListModerators(ctx)
}
