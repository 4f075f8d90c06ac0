package delivery

import (
	"context"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of ordering.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.OrderHeader, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.OrderHeader), args.Error(1)
}

func (m *MockOrderRepository) FindByDeliveryTaskID(ctx context.Context, taskID int64) ([]ordering.OrderHeader, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.OrderHeader), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status ordering.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockStoreDirectory is a mock implementation of delivery.StoreDirectory
type MockStoreDirectory struct {
	mock.Mock
}

func (m *MockStoreDirectory) FindStoresBySiteAndApplication(ctx context.Context, externalSiteID string, applicationID int) ([]delivery.StoreDetails, error) {
	args := m.Called(ctx, externalSiteID, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.StoreDetails), args.Error(1)
}

// MockForwarder is a mock implementation of delivery.Forwarder
type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) PostJSON(ctx context.Context, path string, payload any) error {
	args := m.Called(ctx, path, payload)
	return args.Error(0)
}

// MockStatusPublisher is a mock implementation of delivery.StatusPublisher
type MockStatusPublisher struct {
	mock.Mock
}

func (m *MockStatusPublisher) PublishStatusChange(ctx context.Context, change *delivery.OrderStatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of delivery.SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindByStoreID(ctx context.Context, storeID int) (*delivery.Settings, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Settings), args.Error(1)
}

// MockTaskClient is a mock implementation of delivery.TaskClient
type MockTaskClient struct {
	mock.Mock
}

func (m *MockTaskClient) GetTask(ctx context.Context, settings *delivery.Settings, taskID int64) (*delivery.Task, error) {
	args := m.Called(ctx, settings, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Task), args.Error(1)
}

// MockEventRecorder is a mock implementation of EventRecorder
type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) RecordEvent(ctx context.Context, kind delivery.EventKind, result string, duration time.Duration) {
	m.Called(ctx, kind, result, duration)
}

// fakeIdempotencyStore remembers keys forever
type fakeIdempotencyStore struct {
	seen map[string]bool
	err  error
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{seen: make(map[string]bool)}
}

func (f *fakeIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func (f *fakeIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	return f.seen[key], f.err
}

func (f *fakeIdempotencyStore) Close() error { return nil }

func createTestOrder() ordering.OrderHeader {
	return ordering.OrderHeader{
		ID:               uuid.MustParse("5f0c2a36-8c55-4a3e-9d1b-1c2f3e4d5a6b"),
		ExternalOrderRef: "WEB-1001",
		ExternalSiteID:   "site-42",
		ApplicationID:    7,
		DeliveryTaskID:   881,
		Status:           ordering.OrderStatusReadyForDispatch,
		Timestamp:        time.Date(2024, 3, 14, 18, 0, 0, 0, time.UTC),
	}
}

func createTestStore() delivery.StoreDetails {
	return delivery.StoreDetails{ExternalSiteID: "site-42", AndromedaSiteID: 1234, AndroAdminStoreID: 99}
}
