package service

import (
	"context"
	"errors"

	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/internal/repository"
	"github.com/manantri/campusfest/pkg/apperror"
	"gorm.io/gorm"
)

// SyncService reconciles an identity-provider user with a local record.
type SyncService interface {
	// Sync returns the user for the given identity reference, creating one
	// with the default role on first sight. Safe to call repeatedly.
	Sync(ctx context.Context, identityID, email string) (*model.User, error)
}

type syncService struct {
	users repository.UserRepository
}

func NewSyncService(users repository.UserRepository) SyncService {
	return &syncService{users: users}
}

func (s *syncService) Sync(ctx context.Context, identityID, email string) (*model.User, error) {
	if identityID == "" || email == "" {
		return nil, apperror.BadRequest("Missing identity or email")
	}

	user, err := s.users.FindByIdentity(ctx, identityID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &model.User{
		IdentityID: identityID,
		Email:      email,
		Role:       model.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent sync for the same identity may have won the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.users.FindByIdentity(ctx, identityID)
		}
		return nil, err
	}

	return user, nil
}
