package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestResolver_ResolveOrder(t *testing.T) {
	ctx := context.Background()
	newest := createTestOrder()
	older := createTestOrder()
	older.ID = uuid.New()

	tests := []struct {
		name      string
		orders    []ordering.OrderHeader
		err       error
		wantOrder *uuid.UUID
		wantError string
	}{
		{"single match", []ordering.OrderHeader{newest}, nil, &newest.ID, ""},
		{"several matches use most recent", []ordering.OrderHeader{newest, older}, nil, &newest.ID, "several orders match delivery task, using the most recent"},
		{"no match", []ordering.OrderHeader{}, nil, nil, "no order matches delivery task"},
		{"repository failure", nil, errors.New("connection reset"), nil, "failed to look up orders by delivery task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(MockOrderRepository)
			orders.On("FindByDeliveryTaskID", ctx, int64(881)).Return(tt.orders, tt.err)
			log, logs := newObservedLogger()
			r := NewResolver(orders, new(MockStoreDirectory), log)

			order := r.ResolveOrder(ctx, 881)

			if tt.wantOrder == nil {
				assert.Nil(t, order)
			} else {
				require.NotNil(t, order)
				assert.Equal(t, *tt.wantOrder, order.ID)
			}
			if tt.wantError == "" {
				assert.Zero(t, logs.FilterLevelExact(zap.ErrorLevel).Len())
			} else {
				assert.Equal(t, 1, logs.FilterMessage(tt.wantError).Len())
			}
			orders.AssertExpectations(t)
		})
	}
}

func TestResolver_ResolveOrder_ZeroTaskLogged(t *testing.T) {
	ctx := context.Background()
	orders := new(MockOrderRepository)
	orders.On("FindByDeliveryTaskID", ctx, int64(0)).Return([]ordering.OrderHeader{}, nil)
	log, logs := newObservedLogger()

	assert.Nil(t, NewResolver(orders, new(MockStoreDirectory), log).ResolveOrder(ctx, 0))
	assert.Equal(t, 1, logs.FilterMessage("delivery task id is missing").Len())
}

func TestResolver_ResolveStore(t *testing.T) {
	ctx := context.Background()
	order := createTestOrder()
	first := createTestStore()
	second := createTestStore()
	second.AndroAdminStoreID = 100

	tests := []struct {
		name      string
		stores    []delivery.StoreDetails
		err       error
		wantStore int
		wantError string
	}{
		{"single store", []delivery.StoreDetails{first}, nil, 99, ""},
		{"several stores use first", []delivery.StoreDetails{first, second}, nil, 99, "more than one store returned"},
		{"no store", nil, nil, 0, "no stores returned"},
		{"directory failure", nil, errors.New("timeout"), 0, "failed to look up stores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := new(MockStoreDirectory)
			stores.On("FindStoresBySiteAndApplication", ctx, "site-42", 7).Return(tt.stores, tt.err)
			log, logs := newObservedLogger()
			r := NewResolver(new(MockOrderRepository), stores, log)

			store := r.ResolveStore(ctx, &order)

			if tt.wantStore == 0 {
				assert.Nil(t, store)
			} else {
				require.NotNil(t, store)
				assert.Equal(t, tt.wantStore, store.AndroAdminStoreID)
			}
			if tt.wantError != "" {
				assert.Equal(t, 1, logs.FilterMessage(tt.wantError).Len())
			}
			stores.AssertExpectations(t)
		})
	}
}

func TestResolver_ResolveStore_NilOrder(t *testing.T) {
	stores := new(MockStoreDirectory)
	r := NewResolver(new(MockOrderRepository), stores, zap.NewNop())

	assert.Nil(t, r.ResolveStore(context.Background(), nil))
	stores.AssertNumberOfCalls(t, "FindStoresBySiteAndApplication", 0)
}
