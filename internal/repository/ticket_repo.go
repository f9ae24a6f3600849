package repository

import (
	"context"

	"github.com/manantri/campusfest/internal/model"
	"gorm.io/gorm"
)

type TicketRepository interface {
	FindByTicketAndEvent(ctx context.Context, ticketID, eventID string) (*model.Ticket, error)
	FindByEventAndUser(ctx context.Context, eventID, identityID string) (*model.Ticket, error)
	Update(ctx context.Context, ticket *model.Ticket) error
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) FindByTicketAndEvent(ctx context.Context, ticketID, eventID string) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ? AND event_id = ?", ticketID, eventID).
		First(&ticket).Error; err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *ticketRepository) FindByEventAndUser(ctx context.Context, eventID, identityID string) (*model.Ticket, error) {
	var ticket model.Ticket
	if err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, identityID).
		First(&ticket).Error; err != nil {
		return nil, err
	}

	return &ticket, nil
}

func (r *ticketRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}
