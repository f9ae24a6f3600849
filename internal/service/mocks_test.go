package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/manantri/campusfest/internal/model"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn       func(ctx context.Context, user *model.User) error
	findByIdentity func(ctx context.Context, identityID string) (*model.User, error)
	findAllFn      func(ctx context.Context) ([]*model.User, error)
	findPendingFn  func(ctx context.Context) ([]*model.User, error)
	updateFn       func(ctx context.Context, user *model.User) error
	deleteFn       func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByIdentity(ctx context.Context, identityID string) (*model.User, error) {
	return m.findByIdentity(ctx, identityID)
}
func (m *mockUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	return m.findAllFn(ctx)
}
func (m *mockUserRepo) FindPendingLeadRequests(ctx context.Context) ([]*model.User, error) {
	return m.findPendingFn(ctx)
}
func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.updateFn(ctx, user)
}
func (m *mockUserRepo) DeleteCascade(ctx context.Context, user *model.User) error {
	return m.deleteFn(ctx, user)
}

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn         func(ctx context.Context, event *model.Event) error
	findByIDFn       func(ctx context.Context, id string) (*model.Event, error)
	findAllFn        func(ctx context.Context) ([]model.Event, error)
	findByCategoryFn func(ctx context.Context, category string) ([]model.Event, error)
	findByOwnerFn    func(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error)
	findParticipated func(ctx context.Context, identityID string) ([]model.Event, error)
	updateFn         func(ctx context.Context, event *model.Event) error
	deleteFn         func(ctx context.Context, event *model.Event) error
	registerFn       func(ctx context.Context, eventID uuid.UUID, identityID string, ticket *model.Ticket) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	return m.createFn(ctx, event)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindAll(ctx context.Context) ([]model.Event, error) {
	return m.findAllFn(ctx)
}
func (m *mockEventRepo) FindByCategory(ctx context.Context, category string) ([]model.Event, error) {
	return m.findByCategoryFn(ctx, category)
}
func (m *mockEventRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Event, error) {
	return m.findByOwnerFn(ctx, ownerID)
}
func (m *mockEventRepo) FindParticipatedBy(ctx context.Context, identityID string) ([]model.Event, error) {
	return m.findParticipated(ctx, identityID)
}
func (m *mockEventRepo) Update(ctx context.Context, event *model.Event) error {
	return m.updateFn(ctx, event)
}
func (m *mockEventRepo) Delete(ctx context.Context, event *model.Event) error {
	return m.deleteFn(ctx, event)
}
func (m *mockEventRepo) Register(ctx context.Context, eventID uuid.UUID, identityID string, ticket *model.Ticket) error {
	return m.registerFn(ctx, eventID, identityID, ticket)
}

// --- Mock TicketRepository ---

type mockTicketRepo struct {
	findByTicketFn func(ctx context.Context, ticketID, eventID string) (*model.Ticket, error)
	findByUserFn   func(ctx context.Context, eventID, identityID string) (*model.Ticket, error)
	updateFn       func(ctx context.Context, ticket *model.Ticket) error
}

func (m *mockTicketRepo) FindByTicketAndEvent(ctx context.Context, ticketID, eventID string) (*model.Ticket, error) {
	return m.findByTicketFn(ctx, ticketID, eventID)
}
func (m *mockTicketRepo) FindByEventAndUser(ctx context.Context, eventID, identityID string) (*model.Ticket, error) {
	return m.findByUserFn(ctx, eventID, identityID)
}
func (m *mockTicketRepo) Update(ctx context.Context, ticket *model.Ticket) error {
	return m.updateFn(ctx, ticket)
}

// --- Mock ImageStorage ---

type mockImageStorage struct {
	uploadDataFn  func(ctx context.Context, data, folder string) (string, error)
	deleteImageFn func(ctx context.Context, fileURL string) error
}

func (m *mockImageStorage) UploadDataURI(ctx context.Context, data, folder string) (string, error) {
	return m.uploadDataFn(ctx, data, folder)
}
func (m *mockImageStorage) DeleteImage(ctx context.Context, fileURL string) error {
	return m.deleteImageFn(ctx, fileURL)
}
