package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/manantri/campusfest/internal/model"
	"gorm.io/gorm"
)

var (
	ErrEventFull         = errors.New("event capacity reached")
	ErrAlreadyRegistered = errors.New("user already registered for event")
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id string) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByCategory(ctx context.Context, category string) ([]model.Event, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error)
	FindParticipatedBy(ctx context.Context, identityID string) ([]model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	// Delete removes the event and cancels its outstanding active tickets in
	// the same transaction.
	Delete(ctx context.Context, event *model.Event) error
	// Register performs the whole registration as one conditional update: the
	// participant count is incremented and the identity appended only when the
	// event still has capacity and the identity is not yet registered. The
	// ticket row is inserted in the same transaction. Returns
	// gorm.ErrRecordNotFound, ErrEventFull or ErrAlreadyRegistered when the
	// guard does not match.
	Register(ctx context.Context, eventID uuid.UUID, identityID string, ticket *model.Ticket) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error; err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) FindByCategory(ctx context.Context, category string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Where("created_by_id = ?", ownerID).
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) FindParticipatedBy(ctx context.Context, identityID string) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).
		Joins("JOIN tickets ON tickets.event_id = events.id").
		Where("tickets.user_id = ?", identityID).
		Order("events.date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Ticket{}).
			Where("event_id = ? AND status = ?", event.ID, model.TicketActive).
			Update("status", model.TicketCancelled).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Event{}, "id = ?", event.ID).Error
	})
}

func (r *eventRepository) Register(ctx context.Context, eventID uuid.UUID, identityID string, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Event{}).
			Where("id = ? AND total_participants < capacity AND NOT (? = ANY(registered_users))", eventID, identityID).
			Updates(map[string]interface{}{
				"total_participants": gorm.Expr("total_participants + 1"),
				"registered_users":   gorm.Expr("array_append(registered_users, ?)", identityID),
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Guard did not match; re-read to tell the caller why.
			var event model.Event
			if err := tx.Where("id = ?", eventID).First(&event).Error; err != nil {
				return err
			}

			return classifyRegistrationConflict(&event, identityID)
		}

		return tx.Create(ticket).Error
	})
}

// classifyRegistrationConflict explains why the registration guard matched no
// rows. Capacity is checked before membership: a full event reports full even
// to a user who is already on it.
func classifyRegistrationConflict(event *model.Event, identityID string) error {
	if event.TotalParticipants >= event.Capacity {
		return ErrEventFull
	}

	for _, id := range event.RegisteredUsers {
		if id == identityID {
			return ErrAlreadyRegistered
		}
	}

	return ErrEventFull
}
