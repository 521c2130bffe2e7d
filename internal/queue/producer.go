package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

type EventType string

const (
	EventBugCreated            EventType = "bug.created"
	EventBugUpdated            EventType = "bug.updated"
	EventBugStatusChanged      EventType = "bug.status_changed"
	EventBugDeleted            EventType = "bug.deleted"
	EventBugAnalyzed           EventType = "bug.analyzed"
	EventTestCaseCreated       EventType = "test_case.created"
	EventTestCaseStatusChanged EventType = "test_case.status_changed"
	EventReportGenerated       EventType = "report.generated"
)

// Event is a lifecycle notification about a bug, test case or report.
type Event struct {
	Type     EventType
	EntityID int64
	ActorID  *int64
	Status   string // new status, for status changes
}

// Producer publishes lifecycle events. Callers treat failures as non-fatal.
type Producer interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, evt Event) error {
	fields := eventFields(ctx, evt, time.Now())

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Result()
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.DebugContext(ctx, "published event",
		"stream", p.stream,
		"message_id", id,
		"event_type", evt.Type,
		"entity_id", evt.EntityID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

func eventFields(ctx context.Context, evt Event, now time.Time) map[string]any {
	fields := map[string]any{
		"event_type":  string(evt.Type),
		"entity_id":   strconv.FormatInt(evt.EntityID, 10),
		"occurred_at": now.UTC().Format(time.RFC3339Nano),
	}
	if evt.ActorID != nil {
		fields["actor_id"] = strconv.FormatInt(*evt.ActorID, 10)
	}
	if evt.Status != "" {
		fields["status"] = evt.Status
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields["trace_id"] = sc.TraceID().String()
	}
	return fields
}

type noopProducer struct{}

// NewNoopProducer returns a Producer that drops every event. Used when Redis is not configured.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Publish(context.Context, Event) error { return nil }

func (noopProducer) Close() error { return nil }
