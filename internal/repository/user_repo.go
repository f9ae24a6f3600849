package repository

import (
	"context"

	"github.com/manantri/campusfest/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByIdentity(ctx context.Context, identityID string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindPendingLeadRequests(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
	// DeleteCascade removes the user together with every event they created;
	// active tickets of those events are marked cancelled rather than orphaned.
	DeleteCascade(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByIdentity(ctx context.Context, identityID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) FindPendingLeadRequests(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	if err := r.db.WithContext(ctx).
		Where("lead_request = ?", model.LeadRequestPending).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) DeleteCascade(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eventIDs []string
		if err := tx.Model(&model.Event{}).
			Where("created_by_id = ?", user.ID).
			Pluck("id", &eventIDs).Error; err != nil {
			return err
		}

		if len(eventIDs) > 0 {
			if err := tx.Model(&model.Ticket{}).
				Where("event_id IN ? AND status = ?", eventIDs, model.TicketActive).
				Update("status", model.TicketCancelled).Error; err != nil {
				return err
			}

			if err := tx.Delete(&model.Event{}, "id IN ?", eventIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&model.User{}, "id = ?", user.ID).Error
	})
}
