package events

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogPublisher only logs events. It is used when no broker is configured.
type LogPublisher struct {
	logger logrus.FieldLogger
}

// NewLogPublisher creates a publisher writing to the given logger
func NewLogPublisher(logger logrus.FieldLogger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.WithFields(logrus.Fields{
		"event_type": event.Type,
		"entity":     event.Entity,
		"entity_id":  event.ID,
	}).Debug("Event published")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// NewPublisher picks the Kafka publisher when brokers are configured and the
// log publisher otherwise
func NewPublisher(brokers []string, topic string, logger logrus.FieldLogger) (Publisher, error) {
	if len(brokers) == 0 {
		logger.Info("No Kafka brokers configured, events will only be logged")
		return NewLogPublisher(logger), nil
	}
	logger.WithFields(logrus.Fields{
		"brokers": brokers,
		"topic":   topic,
	}).Info("Publishing events to Kafka")
	return NewKafkaPublisher(brokers, topic)
}
