package handler

import (
	"context"
	"errors"

	appdelivery "github.com/andromeda/ordersync/internal/application/delivery"
	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/pos"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockWebhookProcessor struct {
	mock.Mock
}

func (m *MockWebhookProcessor) Handle(ctx context.Context, kind delivery.EventKind, taskID int64, body []byte) *appdelivery.Outcome {
	args := m.Called(ctx, kind, taskID, body)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*appdelivery.Outcome)
}

type MockTaskLookup struct {
	mock.Mock
}

func (m *MockTaskLookup) GetTask(ctx context.Context, taskID int64) (*delivery.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Task), args.Error(1)
}

type MockRequestBuilder struct {
	mock.Mock
}

func (m *MockRequestBuilder) BuildRequest(ctx context.Context, orderID uuid.UUID) (*pos.AddOrderRequest, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pos.AddOrderRequest), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping() error { return p.err }

var errBoom = errors.New("boom")
