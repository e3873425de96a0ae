package services

import (
	"context"

	"github.com/google/uuid"

	"tirtha/internal/cache"
	"tirtha/internal/models/db_models"
	"tirtha/internal/models/response_models"
	"tirtha/internal/repositories"
)

// Hand-written mocks with function fields; tests set only the calls they
// expect, anything else panics on a nil function and fails the test.

type mockDestinationRepository struct {
	CreateFunc        func(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error)
	UpdateFunc        func(ctx context.Context, destination *db_models.Destination) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ListPinsFunc      func(ctx context.Context) ([]db_models.Destination, error)
	GetByIDFunc       func(ctx context.Context, id string) (*db_models.Destination, error)
	GetByIDFullFunc   func(ctx context.Context, id string) (*db_models.Destination, error)
	ListFullByIDsFunc func(ctx context.Context, ids []string) ([]db_models.Destination, error)
	GetLiveFeedFunc   func(ctx context.Context, id string) (*string, error)
}

var _ repositories.DestinationRepository = (*mockDestinationRepository)(nil)

func (m *mockDestinationRepository) Create(ctx context.Context, destination *db_models.Destination) (uuid.UUID, error) {
	return m.CreateFunc(ctx, destination)
}

func (m *mockDestinationRepository) Update(ctx context.Context, destination *db_models.Destination) error {
	return m.UpdateFunc(ctx, destination)
}

func (m *mockDestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockDestinationRepository) ListPins(ctx context.Context) ([]db_models.Destination, error) {
	return m.ListPinsFunc(ctx)
}

func (m *mockDestinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockDestinationRepository) GetByIDFull(ctx context.Context, id string) (*db_models.Destination, error) {
	return m.GetByIDFullFunc(ctx, id)
}

func (m *mockDestinationRepository) ListFullByIDs(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	return m.ListFullByIDsFunc(ctx, ids)
}

func (m *mockDestinationRepository) GetLiveFeed(ctx context.Context, id string) (*string, error) {
	return m.GetLiveFeedFunc(ctx, id)
}

type mockEventRepository struct {
	CreateFunc            func(ctx context.Context, event *db_models.Event) (uuid.UUID, error)
	UpdateFunc            func(ctx context.Context, event *db_models.Event) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc           func(ctx context.Context, id string) (*db_models.Event, error)
	ListByDestinationFunc func(ctx context.Context, destinationID string) ([]db_models.Event, error)
	ListPopularFunc       func(ctx context.Context) ([]db_models.Event, error)
	ListDailyFunc         func(ctx context.Context) ([]db_models.Event, error)
}

var _ repositories.EventRepository = (*mockEventRepository)(nil)

func (m *mockEventRepository) Create(ctx context.Context, event *db_models.Event) (uuid.UUID, error) {
	return m.CreateFunc(ctx, event)
}

func (m *mockEventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return m.UpdateFunc(ctx, event)
}

func (m *mockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*db_models.Event, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockEventRepository) ListByDestination(ctx context.Context, destinationID string) ([]db_models.Event, error) {
	return m.ListByDestinationFunc(ctx, destinationID)
}

func (m *mockEventRepository) ListPopular(ctx context.Context) ([]db_models.Event, error) {
	return m.ListPopularFunc(ctx)
}

func (m *mockEventRepository) ListDaily(ctx context.Context) ([]db_models.Event, error) {
	return m.ListDailyFunc(ctx)
}

type mockReminderRepository struct {
	CreateFunc      func(ctx context.Context, reminder *db_models.Reminder) error
	DeleteFunc      func(ctx context.Context, userID, eventID uuid.UUID) error
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]db_models.Reminder, error)
	ListByEventFunc func(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error)
}

var _ repositories.ReminderRepository = (*mockReminderRepository)(nil)

func (m *mockReminderRepository) Create(ctx context.Context, reminder *db_models.Reminder) error {
	return m.CreateFunc(ctx, reminder)
}

func (m *mockReminderRepository) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, eventID)
}

func (m *mockReminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Reminder, error) {
	return m.ListByUserFunc(ctx, userID)
}

func (m *mockReminderRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Reminder, error) {
	return m.ListByEventFunc(ctx, eventID)
}

type mockSavedPlaceRepository struct {
	CreateFunc     func(ctx context.Context, place *db_models.SavedPlace) error
	DeleteFunc     func(ctx context.Context, userID, destinationID uuid.UUID) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]db_models.SavedPlace, error)
}

var _ repositories.SavedPlaceRepository = (*mockSavedPlaceRepository)(nil)

func (m *mockSavedPlaceRepository) Create(ctx context.Context, place *db_models.SavedPlace) error {
	return m.CreateFunc(ctx, place)
}

func (m *mockSavedPlaceRepository) Delete(ctx context.Context, userID, destinationID uuid.UUID) error {
	return m.DeleteFunc(ctx, userID, destinationID)
}

func (m *mockSavedPlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedPlace, error) {
	return m.ListByUserFunc(ctx, userID)
}

type mockUserRepository struct {
	InsertFunc      func(ctx context.Context, user *db_models.User) error
	UpdateFunc      func(ctx context.Context, user *db_models.User) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	FindByEmailFunc func(ctx context.Context, email string) (*db_models.User, error)
	FindByIDFunc    func(ctx context.Context, id string) (*db_models.User, error)
	ListFunc        func(ctx context.Context, page, pageSize int) ([]db_models.User, error)
}

var _ repositories.UserRepository = (*mockUserRepository)(nil)

func (m *mockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	return m.InsertFunc(ctx, user)
}

func (m *mockUserRepository) Update(ctx context.Context, user *db_models.User) error {
	return m.UpdateFunc(ctx, user)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]db_models.User, error) {
	return m.ListFunc(ctx, page, pageSize)
}

type mockDeityRepository struct {
	ListMarkersFunc func(ctx context.Context) ([]db_models.DeityMarker, error)
}

var _ repositories.DeityRepository = (*mockDeityRepository)(nil)

func (m *mockDeityRepository) ListMarkers(ctx context.Context) ([]db_models.DeityMarker, error) {
	return m.ListMarkersFunc(ctx)
}

// memoryCache is an in-process stand-in for the redis-backed details cache.
type memoryCache struct {
	entries     map[string]*response_models.DestinationFullDetails
	invalidated []string
}

var _ cache.DestinationCache = (*memoryCache)(nil)

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*response_models.DestinationFullDetails)}
}

func (c *memoryCache) Get(ctx context.Context, destinationID string) (*response_models.DestinationFullDetails, bool) {
	details, ok := c.entries[destinationID]
	return details, ok
}

func (c *memoryCache) Set(ctx context.Context, details *response_models.DestinationFullDetails) {
	c.entries[details.ID] = details
}

func (c *memoryCache) Invalidate(ctx context.Context, destinationID string) {
	delete(c.entries, destinationID)
	c.invalidated = append(c.invalidated, destinationID)
}
