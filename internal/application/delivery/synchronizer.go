package delivery

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/andromeda/ordersync/internal/domain/delivery"
	"github.com/andromeda/ordersync/internal/domain/ordering"
	"github.com/andromeda/ordersync/internal/domain/shared"
	"go.uber.org/zap"
)

// Stage names a step of the webhook pipeline
type Stage string

const (
	StageParse         Stage = "parse"
	StageDedupe        Stage = "dedupe"
	StageResolve       Stage = "resolve"
	StageBuild         Stage = "build"
	StageForward       Stage = "forward"
	StageStatusUpdate  Stage = "status_update"
	StageStatusForward Stage = "status_forward"
	StageStatusPublish Stage = "status_publish"
	// StagePipeline marks a failure no stage caught (a recovered panic)
	StagePipeline Stage = "pipeline"
)

// StageResult is the result of one pipeline stage
type StageResult struct {
	Stage Stage
	Err   error
}

// Outcome aggregates the stage results of one handled event
type Outcome struct {
	Kind    delivery.EventKind
	TaskID  int64
	Results []StageResult
	// Duplicate is set when the event was recognised as a redelivery
	Duplicate bool
	// Notification is the payload forwarded downstream, if one was built
	Notification *delivery.TaskNotification
	// StatusChange is the status payload, for on-the-way and done events
	StatusChange *delivery.OrderStatusChange
}

func (o *Outcome) record(stage Stage, err error) error {
	o.Results = append(o.Results, StageResult{Stage: stage, Err: err})
	return err
}

// Err joins the errors of every failed stage
func (o *Outcome) Err() error {
	var errs []error
	for _, r := range o.Results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Stage, r.Err))
		}
	}
	return errors.Join(errs...)
}

// Failed returns the stages that failed, in order
func (o *Outcome) Failed() []Stage {
	var stages []Stage
	for _, r := range o.Results {
		if r.Err != nil {
			stages = append(stages, r.Stage)
		}
	}
	return stages
}

// Ran reports whether the stage ran
func (o *Outcome) Ran(stage Stage) bool {
	for _, r := range o.Results {
		if r.Stage == stage {
			return true
		}
	}
	return false
}

// EventRecorder records handled events for metrics
type EventRecorder interface {
	RecordEvent(ctx context.Context, kind delivery.EventKind, result string, duration time.Duration)
}

// Event results reported to the recorder
const (
	ResultForwarded = "forwarded"
	ResultDuplicate = "duplicate"
	ResultFailed    = "failed"
)

// Synchronizer handles partner lifecycle events: it resolves the order and
// store, forwards a task notification downstream and, for on-the-way and
// done events, moves the order status. Handle never returns an error; every
// failure is recorded on the Outcome and logged.
type Synchronizer struct {
	resolver  *Resolver
	forwarder delivery.Forwarder
	statuses  ordering.OrderStatusWriter
	endpoints delivery.Endpoints
	publisher delivery.StatusPublisher
	dedupe    shared.IdempotencyStore
	dedupeTTL time.Duration
	recorder  EventRecorder
	logger    *zap.Logger
}

// SynchronizerOption configures a Synchronizer
type SynchronizerOption func(*Synchronizer)

// WithStatusPublisher publishes status changes after they are applied
func WithStatusPublisher(publisher delivery.StatusPublisher) SynchronizerOption {
	return func(s *Synchronizer) {
		s.publisher = publisher
	}
}

// WithDeduplication skips identical redeliveries seen within ttl
func WithDeduplication(store shared.IdempotencyStore, ttl time.Duration) SynchronizerOption {
	return func(s *Synchronizer) {
		s.dedupe = store
		s.dedupeTTL = ttl
	}
}

// WithEventRecorder records every handled event
func WithEventRecorder(recorder EventRecorder) SynchronizerOption {
	return func(s *Synchronizer) {
		s.recorder = recorder
	}
}

// NewSynchronizer creates a new synchronizer
func NewSynchronizer(
	resolver *Resolver,
	forwarder delivery.Forwarder,
	statuses ordering.OrderStatusWriter,
	endpoints delivery.Endpoints,
	logger *zap.Logger,
	opts ...SynchronizerOption,
) *Synchronizer {
	s := &Synchronizer{
		resolver:  resolver,
		forwarder: forwarder,
		statuses:  statuses,
		endpoints: endpoints,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle runs the pipeline for one event
func (s *Synchronizer) Handle(ctx context.Context, kind delivery.EventKind, taskID int64, body []byte) (outcome *Outcome) {
	start := time.Now()
	outcome = &Outcome{Kind: kind, TaskID: taskID}
	log := s.logger.With(zap.String("event", kind.String()), zap.Int64("task_id", taskID))
	log.Debug("delivery webhook received", zap.Int("body_size", len(body)))

	defer func() {
		if r := recover(); r != nil {
			outcome.record(StagePipeline, fmt.Errorf("panic: %v", r))
			log.Error("delivery webhook panicked", zap.Any("panic", r), zap.Stack("stacktrace"))
		}
		s.finish(ctx, log, outcome, time.Since(start))
	}()

	s.run(ctx, log, outcome, body)
	s.remember(ctx, log, outcome, body)
	return outcome
}

func (s *Synchronizer) run(ctx context.Context, log *zap.Logger, outcome *Outcome, body []byte) {
	event, err := delivery.ParseWebhookEvent(body)
	if outcome.record(StageParse, err) != nil {
		return
	}

	if s.dedupe != nil {
		seen, err := s.dedupe.IsProcessed(ctx, dedupeKey(outcome.Kind, outcome.TaskID, body))
		if err != nil {
			log.Warn("dedupe store unavailable, processing event", zap.Error(err))
		}
		outcome.record(StageDedupe, nil)
		if err == nil && seen {
			outcome.Duplicate = true
			return
		}
	}

	order := s.resolver.ResolveOrder(ctx, outcome.TaskID)
	store := s.resolver.ResolveStore(ctx, order)
	outcome.record(StageResolve, nil)

	notification, err := delivery.NewTaskNotification(outcome.TaskID, event, order, store)
	if outcome.record(StageBuild, err) != nil {
		return
	}
	outcome.Notification = notification

	log.Debug("forwarding task notification", zap.String("endpoint", s.endpoints.Task))
	outcome.record(StageForward, s.forwarder.PostJSON(ctx, s.endpoints.Task, notification))

	status, ok := outcome.Kind.StatusChange()
	if !ok {
		return
	}
	s.applyStatus(ctx, log, outcome, order, store, status)
}

// applyStatus runs the status side effects. They are independent of each
// other and of the task forward, so each runs and reports on its own.
func (s *Synchronizer) applyStatus(
	ctx context.Context,
	log *zap.Logger,
	outcome *Outcome,
	order *ordering.OrderHeader,
	store *delivery.StoreDetails,
	status ordering.OrderStatus,
) {
	change, err := delivery.NewOrderStatusChange(order, store, status)
	if err != nil {
		outcome.record(StageStatusForward, err)
		return
	}
	outcome.StatusChange = change

	outcome.record(StageStatusUpdate, s.statuses.UpdateStatus(ctx, order.ID, status))

	log.Debug("forwarding order status change",
		zap.String("endpoint", s.endpoints.OrderStatus),
		zap.Int("status", int(status)),
	)
	outcome.record(StageStatusForward, s.forwarder.PostJSON(ctx, s.endpoints.OrderStatus, change))

	if s.publisher != nil {
		outcome.record(StageStatusPublish, s.publisher.PublishStatusChange(ctx, change))
	}
}

// remember marks the event processed once every stage has succeeded, so a
// failed event is retried when the partner redelivers it
func (s *Synchronizer) remember(ctx context.Context, log *zap.Logger, outcome *Outcome, body []byte) {
	if s.dedupe == nil || outcome.Duplicate || !outcome.Ran(StageDedupe) || outcome.Err() != nil {
		return
	}
	if _, err := s.dedupe.MarkProcessed(ctx, dedupeKey(outcome.Kind, outcome.TaskID, body), s.dedupeTTL); err != nil {
		log.Warn("failed to record processed delivery webhook", zap.Error(err))
	}
}

func (s *Synchronizer) finish(ctx context.Context, log *zap.Logger, outcome *Outcome, elapsed time.Duration) {
	result := ResultForwarded
	switch err := outcome.Err(); {
	case err != nil:
		result = ResultFailed
		log.Error("delivery webhook failed",
			zap.Strings("stages", stageNames(outcome.Failed())),
			zap.Error(err),
		)
	case outcome.Duplicate:
		result = ResultDuplicate
		log.Info("duplicate delivery webhook skipped")
	default:
		log.Debug("delivery webhook handled", zap.Duration("elapsed", elapsed))
	}

	if s.recorder != nil {
		s.recorder.RecordEvent(ctx, outcome.Kind, result, elapsed)
	}
}

func dedupeKey(kind delivery.EventKind, taskID int64, body []byte) string {
	sum := sha256.Sum256(body)
	return "bringg:" + kind.String() + ":" + strconv.FormatInt(taskID, 10) + ":" + hex.EncodeToString(sum[:8])
}

func stageNames(stages []Stage) []string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = string(st)
	}
	return names
}
