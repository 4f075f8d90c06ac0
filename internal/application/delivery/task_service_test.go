package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type taskFixture struct {
	orders   *MockOrderRepository
	stores   *MockStoreDirectory
	settings *MockSettingsRepository
	client   *MockTaskClient
}

func newTaskFixture() *taskFixture {
	return &taskFixture{
		orders:   new(MockOrderRepository),
		stores:   new(MockStoreDirectory),
		settings: new(MockSettingsRepository),
		client:   new(MockTaskClient),
	}
}

func (f *taskFixture) service() *TaskService {
	resolver := NewResolver(f.orders, f.stores, zap.NewNop())
	return NewTaskService(resolver, f.settings, f.client, zap.NewNop())
}

func validSettings() *delivery.Settings {
	return &delivery.Settings{StoreID: 99, CompanyID: 4411, AccessToken: "token", SecretKey: "secret"}
}

func TestTaskService_GetTask(t *testing.T) {
	ctx := context.Background()
	f := newTaskFixture()
	f.orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return([]ordering.OrderHeader{createTestOrder()}, nil)
	f.stores.On("FindStoresBySiteAndApplication", ctx, "site-42", 7).Return([]delivery.StoreDetails{createTestStore()}, nil)
	f.settings.On("FindByStoreID", ctx, 99).Return(validSettings(), nil)
	f.client.On("GetTask", ctx, validSettings(), int64(881)).Return(&delivery.Task{ID: 881, Title: "WEB-1001"}, nil)

	task, err := f.service().GetTask(ctx, 881)

	require.NoError(t, err)
	assert.Equal(t, int64(881), task.ID)
	f.client.AssertExpectations(t)
}

func TestTaskService_GetTask_Failures(t *testing.T) {
	ctx := context.Background()
	clientErr := errors.New("partner unavailable")

	tests := []struct {
		name    string
		setup   func(f *taskFixture)
		wantErr error
	}{
		{
			name: "order not found",
			setup: func(f *taskFixture) {
				f.orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return([]ordering.OrderHeader{}, nil)
			},
			wantErr: delivery.ErrOrderNotFound,
		},
		{
			name: "store not found",
			setup: func(f *taskFixture) {
				f.orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return([]ordering.OrderHeader{createTestOrder()}, nil)
				f.stores.On("FindStoresBySiteAndApplication", ctx, "site-42", 7).Return([]delivery.StoreDetails{}, nil)
			},
			wantErr: delivery.ErrStoreNotFound,
		},
		{
			name: "settings not found",
			setup: func(f *taskFixture) {
				f.orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return([]ordering.OrderHeader{createTestOrder()}, nil)
				f.stores.On("FindStoresBySiteAndApplication", ctx, "site-42", 7).Return([]delivery.StoreDetails{createTestStore()}, nil)
				f.settings.On("FindByStoreID", ctx, 99).Return(nil, delivery.ErrSettingsNotFound)
			},
			wantErr: delivery.ErrSettingsNotFound,
		},
		{
			name: "settings incomplete",
			setup: func(f *taskFixture) {
				f.orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return([]ordering.OrderHeader{createTestOrder()}, nil)
				f.stores.On("FindStoresBySiteAndApplication", ctx, "site-42", 7).Return([]delivery.StoreDetails{createTestStore()}, nil)
				settings := validSettings()
				settings.SecretKey = ""
				f.settings.On("FindByStoreID", ctx, 99).Return(settings, nil)
			},
			wantErr: delivery.ErrInvalidSettings,
		},
		{
			name: "partner failure",
			setup: func(f *taskFixture) {
				f.orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return([]ordering.OrderHeader{createTestOrder()}, nil)
				f.stores.On("FindStoresBySiteAndApplication", ctx, "site-42", 7).Return([]delivery.StoreDetails{createTestStore()}, nil)
				f.settings.On("FindByStoreID", ctx, 99).Return(validSettings(), nil)
				f.client.On("GetTask", ctx, mock.Anything, int64(881)).Return(nil, clientErr)
			},
			wantErr: clientErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskFixture()
			tt.setup(f)

			task, err := f.service().GetTask(ctx, 881)

			assert.Nil(t, task)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
