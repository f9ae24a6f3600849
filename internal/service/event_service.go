package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/internal/repository"
	"github.com/manantri/campusfest/pkg/apperror"
	"github.com/manantri/campusfest/pkg/storage"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

type EventService interface {
	Create(ctx context.Context, identityID string, input dto.CreateEventRequest) (*model.Event, error)
	Update(ctx context.Context, identityID string, input dto.UpdateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, identityID, eventID string) error
	GetByID(ctx context.Context, eventID string) (*model.Event, error)
	GetAll(ctx context.Context) ([]model.Event, error)
	GetByCategory(ctx context.Context, category string) ([]model.Event, error)
	GetCreatedBy(ctx context.Context, identityID string) ([]model.Event, error)
	GetParticipatedBy(ctx context.Context, identityID string) ([]model.Event, error)
}

type eventService struct {
	events       repository.EventRepository
	users        repository.UserRepository
	imageStorage storage.ImageStorage
	search       SearchService
	sanitizer    *bluemonday.Policy
}

func NewEventService(events repository.EventRepository, users repository.UserRepository, imageStorage storage.ImageStorage, search SearchService) EventService {
	return &eventService{
		events:       events,
		users:        users,
		imageStorage: imageStorage,
		search:       search,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

func (s *eventService) Create(ctx context.Context, identityID string, input dto.CreateEventRequest) (*model.Event, error) {
	eventDate, err := parseEventDate(input.Date)
	if err != nil {
		return nil, apperror.BadRequest("Invalid date format")
	}

	owner, err := s.users.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	var imageURL string
	if s.imageStorage != nil {
		imageURL, err = s.imageStorage.UploadDataURI(ctx, input.Image, "event_images")
		if err != nil {
			return nil, apperror.Upstream("Failed to upload image", err)
		}
	}

	event := &model.Event{
		Title:             input.Title,
		Description:       s.sanitizer.Sanitize(input.Description),
		Date:              eventDate,
		Location:          input.Location,
		Category:          input.Category,
		Image:             imageURL,
		Capacity:          input.Capacity,
		TotalParticipants: 0,
		RegisteredUsers:   []string{},
		CreatedByID:       owner.ID,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexEvent(event); err != nil {
			log.Printf("failed to index event %s: %v", event.ID, err)
		}
	}

	return event, nil
}

func (s *eventService) Update(ctx context.Context, identityID string, input dto.UpdateEventRequest) (*model.Event, error) {
	event, err := s.loadOwned(ctx, identityID, input.EventID, "update")
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = s.sanitizer.Sanitize(*input.Description)
	}
	if input.Date != nil {
		eventDate, err := parseEventDate(*input.Date)
		if err != nil {
			return nil, apperror.BadRequest("Invalid date format")
		}
		event.Date = eventDate
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.Image != nil && s.imageStorage != nil {
		imageURL, err := s.imageStorage.UploadDataURI(ctx, *input.Image, "event_images")
		if err != nil {
			return nil, apperror.Upstream("Failed to upload image", err)
		}
		if event.Image != "" {
			if err := s.imageStorage.DeleteImage(ctx, event.Image); err != nil {
				log.Printf("failed to delete replaced poster for event %s: %v", event.ID, err)
			}
		}
		event.Image = imageURL
	}
	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	if s.search != nil {
		if err := s.search.IndexEvent(event); err != nil {
			log.Printf("failed to reindex event %s: %v", event.ID, err)
		}
	}

	return event, nil
}

func (s *eventService) Delete(ctx context.Context, identityID, eventID string) error {
	event, err := s.loadOwned(ctx, identityID, eventID, "delete")
	if err != nil {
		return err
	}

	if err := s.events.Delete(ctx, event); err != nil {
		return err
	}

	if s.imageStorage != nil && event.Image != "" {
		if err := s.imageStorage.DeleteImage(ctx, event.Image); err != nil {
			log.Printf("failed to delete poster for event %s: %v", eventID, err)
		}
	}

	if s.search != nil {
		if err := s.search.DeleteEvent(eventID); err != nil {
			log.Printf("failed to remove event %s from search index: %v", eventID, err)
		}
	}

	return nil
}

// loadOwned resolves the event and caller, enforcing that the caller created
// the event. action is used only for the rejection message.
func (s *eventService) loadOwned(ctx context.Context, identityID, eventID, action string) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, err
	}

	caller, err := s.users.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	if event.CreatedByID != caller.ID {
		return nil, apperror.Forbidden("You are not authorized to " + action + " this event")
	}

	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, err
	}

	return event, nil
}

func (s *eventService) GetAll(ctx context.Context) ([]model.Event, error) {
	return s.events.FindAll(ctx)
}

func (s *eventService) GetByCategory(ctx context.Context, category string) ([]model.Event, error) {
	return s.events.FindByCategory(ctx, category)
}

func (s *eventService) GetCreatedBy(ctx context.Context, identityID string) ([]model.Event, error) {
	owner, err := s.users.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	return s.events.FindByOwner(ctx, owner.ID)
}

func (s *eventService) GetParticipatedBy(ctx context.Context, identityID string) ([]model.Event, error) {
	if _, err := s.users.FindByIdentity(ctx, identityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	return s.events.FindParticipatedBy(ctx, identityID)
}

func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
