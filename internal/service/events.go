package service

import (
	"context"
	"log/slog"

	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/queue"
)

// publish sends a lifecycle event. Failures are logged and never returned.
func publish(ctx context.Context, producer queue.Producer, evt queue.Event) {
	if producer == nil {
		return
	}
	if err := producer.Publish(ctx, evt); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"error", err,
			"event_type", evt.Type,
			"entity_id", evt.EntityID)
	}
}

func actorID(user *model.User) *int64 {
	if user == nil {
		return nil
	}
	id := user.ID
	return &id
}
