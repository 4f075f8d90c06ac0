// Package webhook posts delivery payloads to the downstream order receiver.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrForwardFailed is returned when the receiver answers with a non-success status
var ErrForwardFailed = errors.New("webhook: receiver rejected payload")

// StatusError carries the receiver's response for a rejected payload
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned HTTP %d: %s", ErrForwardFailed, e.URL, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrForwardFailed
}

// Config holds forwarder settings
type Config struct {
	BaseAddress string
	Timeout     time.Duration
	// RateLimit is requests per second; 0 disables limiting
	RateLimit        float64
	Burst            int
	MaxResponseBytes int64
}

// Forwarder implements delivery.Forwarder over HTTP
type Forwarder struct {
	baseAddress      string
	client           *http.Client
	limiter          *rate.Limiter
	maxResponseBytes int64
	logger           *zap.Logger
}

// Option configures a Forwarder
type Option func(*Forwarder)

// WithHTTPClient uses a copy of client. The configured timeout is kept when
// the client has none; the caller's client is never modified.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Forwarder) {
		c := *client
		if c.Timeout == 0 {
			c.Timeout = f.client.Timeout
		}
		f.client = &c
	}
}

// NewForwarder creates a new forwarder
func NewForwarder(cfg Config, logger *zap.Logger, opts ...Option) *Forwarder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = 64 << 10
	}

	f := &Forwarder{
		baseAddress:      strings.TrimRight(cfg.BaseAddress, "/"),
		client:           &http.Client{Timeout: timeout},
		maxResponseBytes: maxBytes,
		logger:           logger.Named("webhook"),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PostJSON posts payload as JSON to path below the base address
func (f *Forwarder) PostJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("webhook: rate limit wait: %w", err)
		}
	}

	url := f.resolve(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, f.maxResponseBytes))
	if err != nil {
		return fmt.Errorf("webhook: read response from %s: %w", url, err)
	}

	f.logger.Debug("payload posted",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

func (f *Forwarder) resolve(path string) string {
	if path == "" {
		return f.baseAddress
	}
	return f.baseAddress + "/" + strings.TrimLeft(path, "/")
}

// Ensure Forwarder implements delivery.Forwarder
var _ delivery.Forwarder = (*Forwarder)(nil)
