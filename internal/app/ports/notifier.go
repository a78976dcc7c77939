package ports

import (
	"context"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type Notification struct {
	ID       string    `json:"id"`
	PetID    string    `json:"pet_id"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// Notifier is the user-facing message sink. Delivery is fire-and-forget;
// display and dismissal timing belong to the consumer, not the core.
type Notifier interface {
	Notify(ctx context.Context, petID string, severity Severity, message string)
}

// NotificationLog is a Notifier whose recent messages can be read back,
// newest first.
type NotificationLog interface {
	Notifier
	Recent(ctx context.Context, petID string, limit int) ([]Notification, error)
}
