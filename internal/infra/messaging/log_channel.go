package messaging

import (
	"context"
	"log/slog"

	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/service"

	"github.com/google/uuid"
)

const logChannelName = "log"

type logChannel struct {
	logger *slog.Logger
}

// NewLogChannel creates a channel that only logs messages. Used in development.
func NewLogChannel(logger *slog.Logger) service.MessagingChannel {
	return &logChannel{logger: logger}
}

func (c *logChannel) Send(ctx context.Context, message *service.OutboundMessage) (*service.SendResult, error) {
	id := uuid.NewString()

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Info("Outbound message",
		slog.String("message_id", id),
		slog.String("recipient", message.Recipient),
		slog.String("kind", message.Kind),
		slog.String("body", message.Body),
	)

	return &service.SendResult{
		Success:           true,
		ExternalMessageID: id,
		Provider:          logChannelName,
	}, nil
}

func (c *logChannel) Name() string {
	return logChannelName
}
