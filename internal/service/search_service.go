package service

import (
	"log"
	"net/http"
	"time"

	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/pkg/apperror"
	"github.com/meilisearch/meilisearch-go"
)

// SearchService keeps the Meilisearch events index in step with the database
// and signs tenant tokens so browsing clients can query it directly. Indexing
// is a no-op when Meilisearch is not configured; token requests then fail
// with a service-unavailable error.
type SearchService interface {
	IndexEvent(event *model.Event) error
	DeleteEvent(id string) error
	GenerateSearchToken() (string, error)
}

type searchService struct {
	client        meilisearch.ServiceManager
	signingKeyUID string
	signingKey    string
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	if client != nil {
		s.initIndexes()
		s.initSigningKey()
	}
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"category"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index("events").UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update events filterable attributes: %v", err)
	}

	sortableAttrs := []string{"date"}
	if _, err := s.client.Index("events").UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update events sortable attributes: %v", err)
	}
}

func (s *searchService) initSigningKey() {
	resp, err := s.client.GetKeys(&meilisearch.KeysQuery{Limit: 20})
	if err != nil {
		log.Printf("Failed to get meilisearch keys: %v", err)
		return
	}

	for _, key := range resp.Results {
		if key.Name == "EventSearchSigner" {
			s.signingKeyUID = key.UID
			s.signingKey = key.Key
			return
		}
	}

	expiry := time.Now().AddDate(100, 0, 0)

	key, err := s.client.CreateKey(&meilisearch.Key{
		Description: "Key to sign event search tenant tokens",
		Name:        "EventSearchSigner",
		Actions:     []string{"search"},
		Indexes:     []string{"events"},
		ExpiresAt:   expiry,
	})
	if err != nil {
		log.Printf("Failed to create signing key: %v", err)
		return
	}

	s.signingKeyUID = key.UID
	s.signingKey = key.Key
}

type meiliEventDoc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Date        int64  `json:"date"`
	Image       string `json:"image"`
}

func (s *searchService) IndexEvent(event *model.Event) error {
	if s.client == nil {
		return nil
	}

	doc := meiliEventDoc{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		Category:    event.Category,
		Date:        event.Date.Unix(),
		Image:       event.Image,
	}

	task, err := s.client.Index("events").AddDocuments([]meiliEventDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed event %s, task id: %d", event.ID, task.TaskUID)
	return nil
}

func (s *searchService) DeleteEvent(id string) error {
	if s.client == nil {
		return nil
	}

	_, err := s.client.Index("events").DeleteDocument(id)
	return err
}

func (s *searchService) GenerateSearchToken() (string, error) {
	if s.client == nil || s.signingKeyUID == "" || s.signingKey == "" {
		return "", apperror.New(http.StatusServiceUnavailable, "Search is not available", apperror.ErrUpstream)
	}

	searchRules := map[string]any{
		"events": map[string]any{},
	}

	return s.client.GenerateTenantToken(s.signingKeyUID, searchRules, &meilisearch.TenantTokenOptions{
		APIKey:    s.signingKey,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
}

func strPtr(s string) *string {
	return &s
}
