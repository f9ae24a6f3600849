package dto

import "time"

type VerifyTicketRequest struct {
	TicketID string `json:"ticketId" binding:"required"`
	EventID  string `json:"eventId" binding:"required"`
}

type TicketQRQuery struct {
	TicketID string `form:"ticketId" binding:"required"`
	EventID  string `form:"eventId" binding:"required"`
}

// EventSummary is the event slice denormalized into ticket payloads.
type EventSummary struct {
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Category string    `json:"category,omitempty"`
}

type RegistrantSummary struct {
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// TicketResponse is returned by the ticket lookup.
type TicketResponse struct {
	TicketID  string             `json:"ticketId"`
	EventID   string             `json:"eventId"`
	UserID    string             `json:"userId"`
	CreatedAt time.Time          `json:"createdAt"`
	Status    string             `json:"status"`
	Event     EventSummary       `json:"event"`
	User      *RegistrantSummary `json:"user,omitempty"`
}

// VerifiedTicketResponse is returned once a ticket is consumed at the door.
type VerifiedTicketResponse struct {
	TicketID      string    `json:"ticketId"`
	EventTitle    string    `json:"eventTitle"`
	EventDate     time.Time `json:"eventDate"`
	EventLocation string    `json:"eventLocation"`
	Status        string    `json:"status"`
}
