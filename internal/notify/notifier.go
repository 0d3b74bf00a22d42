// Package notify fans user-facing notifications out to interested parts of
// the portal. The request authorizer publishes exactly one notification per
// failed request.
package notify

import (
	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const topicUserNotification = "notify:user"

// Level grades a notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	ID      uuid.UUID
	Level   Level
	Code    string
	Message string
}

// Notifier wraps the event bus with a typed publish/subscribe surface.
type Notifier struct {
	bus EventBus.Bus
}

// New creates a notifier with its own bus.
func New() *Notifier {
	return &Notifier{bus: EventBus.New()}
}

// Publish emits one notification to all subscribers.
func (n *Notifier) Publish(level Level, code, message string) {
	n.bus.Publish(topicUserNotification, Notification{
		ID:      uuid.New(),
		Level:   level,
		Code:    code,
		Message: message,
	})
}

// Subscribe registers a handler for every notification.
func (n *Notifier) Subscribe(handler func(Notification)) error {
	return n.bus.Subscribe(topicUserNotification, handler)
}

// RegisterLogging attaches a subscriber that logs each notification.
func RegisterLogging(n *Notifier, logger *zap.Logger) error {
	return n.Subscribe(func(ntf Notification) {
		logger.Warn("user notification",
			zap.String("id", ntf.ID.String()),
			zap.String("level", string(ntf.Level)),
			zap.String("code", ntf.Code),
			zap.String("message", ntf.Message),
		)
	})
}
