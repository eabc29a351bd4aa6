package services

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/events"
	log "github.com/sirupsen/logrus"
)

// notify publishes an event for a committed write. A failed publish is
// logged and does not fail the request, the write is already durable.
func notify(ctx context.Context, publisher events.Publisher, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"event_type": event.Type,
			"entity_id":  event.ID,
		}).Error("Failed to publish event")
	}
}
