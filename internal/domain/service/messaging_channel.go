package service

import (
	"context"
)

// OutboundMessage is a rendered message ready for a delivery channel.
type OutboundMessage struct {
	Recipient string            // Normalized 10-digit contact number.
	Kind      string            // Template kind, e.g. "assignment".
	Body      string            // Rendered text.
	Variables map[string]string // Template variables, forwarded as metadata where the channel supports it.
}

// SendResult reports the outcome of a delivery attempt.
type SendResult struct {
	Success           bool
	ExternalMessageID string
	Provider          string
}

// MessagingChannel delivers messages to recipients (SMS, push).
type MessagingChannel interface {
	Send(ctx context.Context, message *OutboundMessage) (*SendResult, error)

	// Name identifies the channel in logs and metrics.
	Name() string
}
