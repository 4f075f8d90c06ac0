package bringg

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.UnixMilli(1710439200000)

func testSettings() *delivery.Settings {
	return &delivery.Settings{StoreID: 10, CompanyID: 4411, AccessToken: "tok", SecretKey: "secret"}
}

func TestSignedQuery(t *testing.T) {
	query := SignedQuery(testSettings(), fixedNow)

	unsigned := "access_token=tok&company_id=4411&timestamp=1710439200000"
	mac := hmac.New(sha1.New, []byte("secret"))
	mac.Write([]byte(unsigned))
	assert.Equal(t, unsigned+"&signature="+hex.EncodeToString(mac.Sum(nil)), query)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/partner_api/", time.Second, zap.NewNop(), WithClock(func() time.Time { return fixedNow }))
}

func TestClient_GetTask(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `{"success":true,"task":{"id":881,"external_id":"WEB-1001","title":"Pizza","status":"3","user_id":55}}`)
	})

	task, err := client.GetTask(context.Background(), testSettings(), 881)

	require.NoError(t, err)
	assert.Equal(t, "/partner_api/tasks/881", gotPath)
	assert.True(t, strings.HasPrefix(gotQuery, "access_token=tok&company_id=4411&timestamp=1710439200000&signature="))
	assert.Equal(t, int64(881), task.ID)
	assert.Equal(t, "WEB-1001", task.ExternalID)
	assert.Equal(t, delivery.TaskStatus(3), task.Status)
	assert.Equal(t, int64(55), task.UserID)
}

func TestClient_GetTask_BareTaskBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":881,"title":"Pizza","status":4}`)
	})

	task, err := client.GetTask(context.Background(), testSettings(), 881)

	require.NoError(t, err)
	assert.Equal(t, delivery.TaskStatus(4), task.Status)
}

func TestClient_GetTask_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"not found status", http.StatusNotFound, `{}`, delivery.ErrTaskNotFound},
		{"unsuccessful envelope", http.StatusOK, `{"success":false,"message":"Task not found"}`, delivery.ErrTaskNotFound},
		{"empty body object", http.StatusOK, `{}`, delivery.ErrTaskNotFound},
		{"unauthorized", http.StatusUnauthorized, `{"message":"bad signature"}`, delivery.ErrPartnerRequest},
		{"server error", http.StatusBadGateway, ``, delivery.ErrPartnerRequest},
		{"garbage", http.StatusOK, `<html>`, delivery.ErrPartnerRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			task, err := client.GetTask(context.Background(), testSettings(), 881)

			assert.Nil(t, task)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetTask_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond, zap.NewNop())

	_, err := client.GetTask(context.Background(), testSettings(), 881)

	assert.ErrorIs(t, err, delivery.ErrPartnerRequest)
}

func TestClient_GetTask_NilSettings(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := client.GetTask(context.Background(), nil, 881)

	assert.ErrorIs(t, err, delivery.ErrInvalidSettings)
}
