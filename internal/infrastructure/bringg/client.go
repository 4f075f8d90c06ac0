// Package bringg is a client for the delivery partner's task API.
package bringg

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"go.uber.org/zap"
)

const maxResponseSize = 1 << 20

// Client implements delivery.TaskClient
type Client struct {
	apiURL     string
	httpClient *http.Client
	now        func() time.Time
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithClock replaces the clock used for request timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a partner API client
func NewClient(apiURL string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
		logger:     logger.Named("bringg"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// taskEnvelope is the partner's response wrapper
type taskEnvelope struct {
	Success *bool          `json:"success"`
	Message string         `json:"message"`
	Task    *delivery.Task `json:"task"`
}

// GetTask fetches a task with the store's credentials
func (c *Client) GetTask(ctx context.Context, settings *delivery.Settings, taskID int64) (*delivery.Task, error) {
	if settings == nil {
		return nil, delivery.ErrInvalidSettings
	}

	endpoint := fmt.Sprintf("%s/tasks/%d?%s", c.apiURL, taskID, SignedQuery(settings, c.now()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("bringg: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", delivery.ErrPartnerRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", delivery.ErrPartnerRequest, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: task %d", delivery.ErrTaskNotFound, taskID)
	case resp.StatusCode >= 400:
		c.logger.Warn("partner task request rejected",
			zap.Int64("task_id", taskID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("%w: HTTP %d", delivery.ErrPartnerRequest, resp.StatusCode)
	}

	return decodeTask(body, taskID)
}

func decodeTask(body []byte, taskID int64) (*delivery.Task, error) {
	var envelope taskEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", delivery.ErrPartnerRequest, err)
	}
	if envelope.Success != nil && !*envelope.Success {
		return nil, fmt.Errorf("%w: task %d: %s", delivery.ErrTaskNotFound, taskID, envelope.Message)
	}
	if envelope.Task != nil {
		return envelope.Task, nil
	}

	var task delivery.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, fmt.Errorf("%w: decode task: %v", delivery.ErrPartnerRequest, err)
	}
	if task.ID == 0 {
		return nil, fmt.Errorf("%w: task %d", delivery.ErrTaskNotFound, taskID)
	}
	return &task, nil
}

// SignedQuery builds the credential query string and appends its
// HMAC-SHA1 signature keyed by the store's secret
func SignedQuery(settings *delivery.Settings, now time.Time) string {
	params := url.Values{}
	params.Set("access_token", settings.AccessToken)
	params.Set("company_id", strconv.FormatInt(settings.CompanyID, 10))
	params.Set("timestamp", strconv.FormatInt(now.UnixMilli(), 10))
	query := params.Encode()

	mac := hmac.New(sha1.New, []byte(settings.SecretKey))
	mac.Write([]byte(query))
	return query + "&signature=" + hex.EncodeToString(mac.Sum(nil))
}

// Ensure Client implements delivery.TaskClient
var _ delivery.TaskClient = (*Client)(nil)
