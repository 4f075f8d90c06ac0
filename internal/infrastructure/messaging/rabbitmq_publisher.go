// Package messaging publishes order status changes to RabbitMQ.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrPublishNacked is returned when the broker refuses a message
var ErrPublishNacked = errors.New("messaging: publish nacked by broker")

// Config holds the exchange the publisher writes to
type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
}

// confirmation is the broker's answer to one publishing
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// channel publishes a message and hands back its own confirmation
type channel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

// amqpChannel adapts *amqp.Channel to channel. Each deferred confirmation is
// bound to its delivery tag, so an abandoned wait cannot leak into the next
// publish.
type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		// channel is not in confirm mode
		return nil, nil
	}
	return dc, nil
}

func (c amqpChannel) Close() error {
	return c.ch.Close()
}

// RabbitMQPublisher implements delivery.StatusPublisher with publisher confirms
type RabbitMQPublisher struct {
	conn       *amqp.Connection
	ch         channel
	exchange   string
	routingKey string
	now        func() time.Time
	logger     *zap.Logger
}

// Dial connects, declares the topic exchange and enables confirms
func Dial(cfg Config, logger *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("messaging: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("messaging: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("messaging: declare exchange %s: %w", cfg.Exchange, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("messaging: enable confirms: %w", err)
	}

	p := newPublisher(amqpChannel{ch: ch}, cfg, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, cfg Config, logger *zap.Logger) *RabbitMQPublisher {
	return &RabbitMQPublisher{
		ch:         ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		now:        time.Now,
		logger:     logger.Named("rabbitmq"),
	}
}

// PublishStatusChange publishes the change and waits for the broker's confirm
func (p *RabbitMQPublisher) PublishStatusChange(ctx context.Context, change *delivery.OrderStatusChange) error {
	msg, err := buildPublishing(change, p.now())
	if err != nil {
		return err
	}

	confirm, err := p.ch.Publish(ctx, p.exchange, p.routingKey, msg)
	if err != nil {
		return fmt.Errorf("messaging: publish: %w", err)
	}
	if confirm == nil {
		return nil
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrPublishNacked
	}
	p.logger.Debug("status change published",
		zap.String("external_order_id", change.ExternalOrderID),
		zap.Int("status", change.Status),
	)
	return nil
}

// Close closes the channel and connection
func (p *RabbitMQPublisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

func buildPublishing(change *delivery.OrderStatusChange, now time.Time) (amqp.Publishing, error) {
	if change == nil {
		return amqp.Publishing{}, fmt.Errorf("messaging: nil status change")
	}
	body, err := json.Marshal(change)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("messaging: encode status change: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now.UTC(),
		Type:         "order.status_changed",
		Headers: amqp.Table{
			"external_site_id":  change.ExternalSiteID,
			"external_order_id": change.ExternalOrderID,
			"status":            int32(change.Status),
		},
		Body: body,
	}, nil
}

var _ delivery.StatusPublisher = (*RabbitMQPublisher)(nil)
