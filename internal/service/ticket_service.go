package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/internal/repository"
	"github.com/manantri/campusfest/pkg/apperror"
	"github.com/redis/go-redis/v9"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// ErrWrongDay marks a verification attempted on a day other than the event's.
// The wrapped AppError carries the user-facing message; the handler adds the
// signed day count to the envelope.
var ErrWrongDay = errors.New("event is not today")

const (
	ticketIDPrefix    = "TICKET"
	ticketIDAttempts  = 3
	registerAction    = "register"
	registerRateLimit = 2 * time.Second
)

type TicketService interface {
	// Register books a seat for the identity and returns the allocated ticket
	// id. The capacity and duplicate checks happen inside a single conditional
	// update, so concurrent calls cannot overbook.
	Register(ctx context.Context, eventID, identityID string) (string, error)
	// Verify consumes an active ticket at entry; it succeeds only on the
	// event's calendar day and flips the ticket to used exactly once.
	Verify(ctx context.Context, ticketID, eventID string) (*dto.VerifiedTicketResponse, int, error)
	GetTicket(ctx context.Context, eventID, identityID string) (*dto.TicketResponse, error)
	// TicketQR renders the entry-scan payload for the ticket as a PNG.
	TicketQR(ctx context.Context, ticketID, eventID string) ([]byte, error)
}

type ticketService struct {
	events     repository.EventRepository
	tickets    repository.TicketRepository
	users      repository.UserRepository
	now        func() time.Time
	checkLimit func(ctx context.Context, identityID string) (bool, error)
	clearLimit func(ctx context.Context, identityID string)
}

func NewTicketService(events repository.EventRepository, tickets repository.TicketRepository, users repository.UserRepository, rdb *redis.Client) TicketService {
	return &ticketService{
		events:  events,
		tickets: tickets,
		users:   users,
		now:     time.Now,
		checkLimit: func(ctx context.Context, identityID string) (bool, error) {
			return CheckAndSetRateLimit(ctx, rdb, identityID, registerAction, registerRateLimit)
		},
		clearLimit: func(ctx context.Context, identityID string) {
			_ = ClearRateLimit(ctx, rdb, identityID, registerAction)
		},
	}
}

func (s *ticketService) Register(ctx context.Context, eventID, identityID string) (string, error) {
	allowed, err := s.checkLimit(ctx, identityID)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", apperror.New(429, "Too many registration attempts, please slow down", apperror.ErrRateLimitExceeded)
	}

	// Roll back the reservation when no ticket was booked, so the caller's
	// next attempt surfaces the real failure instead of a 429.
	booked := false
	defer func() {
		if !booked {
			s.clearLimit(ctx, identityID)
		}
	}()

	evID, err := uuid.Parse(eventID)
	if err != nil {
		return "", apperror.BadRequest("Invalid event ID")
	}

	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NotFound("Event not found")
		}
		return "", err
	}

	if _, err := s.users.FindByIdentity(ctx, identityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", err
	}

	// Ticket ids are only probabilistically unique; on an id collision the
	// insert trips the unique index and we retry with a fresh candidate.
	for attempt := 0; attempt < ticketIDAttempts; attempt++ {
		ticket := &model.Ticket{
			TicketID: generateTicketID(s.now()),
			EventID:  evID,
			UserID:   identityID,
			Status:   model.TicketActive,
		}

		err := s.events.Register(ctx, evID, identityID, ticket)
		switch {
		case err == nil:
			booked = true
			return ticket.TicketID, nil
		case errors.Is(err, repository.ErrAlreadyRegistered):
			return "", apperror.Conflict("User already registered for this event")
		case errors.Is(err, repository.ErrEventFull):
			return "", apperror.Conflict("Event is already full")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return "", apperror.NotFound("Event not found")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			continue
		default:
			return "", err
		}
	}

	return "", fmt.Errorf("could not allocate a unique ticket id after %d attempts", ticketIDAttempts)
}

func (s *ticketService) Verify(ctx context.Context, ticketID, eventID string) (*dto.VerifiedTicketResponse, int, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperror.NotFound("Event not found")
		}
		return nil, 0, err
	}

	ticket, err := s.tickets.FindByTicketAndEvent(ctx, ticketID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperror.NotFound("Invalid ticket ID for this event")
		}
		return nil, 0, err
	}

	if ticket.Status == model.TicketUsed {
		return nil, 0, apperror.Conflict("Ticket has already been used")
	}
	if ticket.Status == model.TicketCancelled {
		return nil, 0, apperror.Conflict("Ticket has been cancelled")
	}

	now := s.now()
	days := daysBetween(now, event.Date)
	if days != 0 {
		message := "Event has already passed"
		if days > 0 {
			message = fmt.Sprintf("Event is in %d days", days)
		}
		return nil, days, apperror.New(400, message, ErrWrongDay)
	}

	ticket.Status = model.TicketUsed
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, 0, err
	}

	return &dto.VerifiedTicketResponse{
		TicketID:      ticket.TicketID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventLocation: event.Location,
		Status:        ticket.Status,
	}, 0, nil
}

func (s *ticketService) GetTicket(ctx context.Context, eventID, identityID string) (*dto.TicketResponse, error) {
	ticket, err := s.tickets.FindByEventAndUser(ctx, eventID, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Ticket not found")
		}
		return nil, err
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, err
	}

	resp := &dto.TicketResponse{
		TicketID:  ticket.TicketID,
		EventID:   ticket.EventID.String(),
		UserID:    ticket.UserID,
		CreatedAt: ticket.CreatedAt,
		Status:    ticket.Status,
		Event: dto.EventSummary{
			Title:    event.Title,
			Date:     event.Date,
			Location: event.Location,
			Category: event.Category,
		},
	}

	if user, err := s.users.FindByIdentity(ctx, identityID); err == nil {
		resp.User = &dto.RegistrantSummary{
			Email:          user.Email,
			ProfilePicture: user.ProfilePicture,
		}
	}

	return resp, nil
}

func (s *ticketService) TicketQR(ctx context.Context, ticketID, eventID string) ([]byte, error) {
	ticket, err := s.tickets.FindByTicketAndEvent(ctx, ticketID, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Invalid ticket ID for this event")
		}
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{
		"ticketId": ticket.TicketID,
		"eventId":  ticket.EventID.String(),
	})
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(string(payload), qrcode.Medium, 256)
}

// daysBetween returns the signed whole-day distance from now's calendar day to
// the event's, both taken in now's location. Zero means the event is today.
func daysBetween(now, eventDate time.Time) int {
	loc := now.Location()
	today := truncateToDay(now.In(loc))
	eventDay := truncateToDay(eventDate.In(loc))

	return int(math.Ceil(eventDay.Sub(today).Hours() / 24))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func generateTicketID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}

	return fmt.Sprintf("%s-%s-%s", ticketIDPrefix, ts, suffix)
}
