package model

import (
	"time"

	"github.com/google/uuid"
)

// Ticket states. A ticket becomes used exactly once at entry verification.
// Cancelled is reached only when the event it belongs to is removed.
const (
	TicketActive    = "active"
	TicketUsed      = "used"
	TicketCancelled = "cancelled"
)

type Ticket struct {
	ID uint `gorm:"primaryKey" json:"-"`
	// TicketID is the human-readable token printed on the pass,
	// e.g. TICKET-493021-X4F.
	TicketID string    `gorm:"size:30;uniqueIndex;not null" json:"ticketId"`
	EventID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ticket_event_user" json:"eventId"`
	// UserID holds the registrant's external identity reference, matching the
	// entries of Event.RegisteredUsers.
	UserID    string    `gorm:"size:100;not null;uniqueIndex:idx_ticket_event_user" json:"userId"`
	Status    string    `gorm:"size:20;not null;default:active" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
