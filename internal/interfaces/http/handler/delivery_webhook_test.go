package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appdelivery "github.com/andromeda/ordersync/internal/application/delivery"
	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWebhookRouter(processor WebhookProcessor, maxBody int64) *gin.Engine {
	h := NewDeliveryWebhookHandler(processor, maxBody)
	router := gin.New()
	router.POST("/bringg/notifyTaskDoneUrl/:taskId", h.Notify(delivery.EventTaskDone))
	return router
}

func TestDeliveryWebhookHandler_Notify(t *testing.T) {
	body := `{"id":881,"status":4}`
	processor := new(MockWebhookProcessor)
	processor.On("Handle", mock.Anything, delivery.EventTaskDone, int64(881), []byte(body)).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			assert.Equal(t, int64(881), logger.GetTaskID(ctx))
		}).
		Return(&appdelivery.Outcome{Kind: delivery.EventTaskDone, TaskID: 881})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bringg/notifyTaskDoneUrl/881", strings.NewReader(body))
	newWebhookRouter(processor, 0).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	processor.AssertExpectations(t)
}

func TestDeliveryWebhookHandler_AlwaysAcknowledges(t *testing.T) {
	failed := &appdelivery.Outcome{Kind: delivery.EventTaskDone, TaskID: 881}
	failed.Results = append(failed.Results, appdelivery.StageResult{Stage: appdelivery.StageForward, Err: errors.New("downstream 500")})

	processor := new(MockWebhookProcessor)
	processor.On("Handle", mock.Anything, delivery.EventTaskDone, int64(881), mock.Anything).Return(failed)

	w := httptest.NewRecorder()
	newWebhookRouter(processor, 0).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bringg/notifyTaskDoneUrl/881", strings.NewReader("")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeliveryWebhookHandler_NonNumericTaskID(t *testing.T) {
	processor := new(MockWebhookProcessor)

	w := httptest.NewRecorder()
	newWebhookRouter(processor, 0).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bringg/notifyTaskDoneUrl/abc", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	processor.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliveryWebhookHandler_TruncatesBody(t *testing.T) {
	processor := new(MockWebhookProcessor)
	processor.On("Handle", mock.Anything, delivery.EventTaskDone, int64(7), []byte("0123456789")).
		Return(&appdelivery.Outcome{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bringg/notifyTaskDoneUrl/7", strings.NewReader(strings.Repeat("0123456789", 5)))
	newWebhookRouter(processor, 10).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	processor.AssertExpectations(t)
}
