package services

import (
	"go.uber.org/zap"
)

// EventPublisher sends storefront events to the message broker.
type EventPublisher interface {
	Publish(eventType string, data interface{}) error
}

// publish sends an event when a publisher is configured. Broker failures are
// logged and swallowed: a lost notification must not fail the visitor's request.
func publish(pub EventPublisher, logger *zap.Logger, eventType string, data interface{}) {
	if pub == nil {
		logger.Debug("no event publisher configured, skipping", zap.String("type", eventType))
		return
	}
	if err := pub.Publish(eventType, data); err != nil {
		logger.Error("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
