// Package events publishes a message for every committed write so other
// systems can follow changes to restaurants, pizzas and prices.
package events

import (
	"context"
	"fmt"
	"time"
)

// Actions carried in an event type
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes one change to a stored record
type Event struct {
	Type       string      `json:"type"`
	Entity     string      `json:"entity"`
	ID         uint        `json:"id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data,omitempty"`
}

// NewEvent creates an event of type "<entity>.<action>"
func NewEvent(entity, action string, id uint, data interface{}) Event {
	return Event{
		Type:       fmt.Sprintf("%s.%s", entity, action),
		Entity:     entity,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Key is the partition key, keeping events of one record in order
func (e Event) Key() string {
	return fmt.Sprintf("%s-%d", e.Entity, e.ID)
}

// Publisher delivers events somewhere outside the process
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
