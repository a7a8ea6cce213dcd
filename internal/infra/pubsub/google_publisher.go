package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"servicedesk/config"
	"servicedesk/internal/domain/entity"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// newGooglePublisher fails fast when the topic is missing so a typo surfaces at boot.
func newGooglePublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (*googlePublisher, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID),
	})
	if err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "complaint event topic %s is not reachable", cfg.TopicID)
	}

	topic := client.Publisher(cfg.TopicID)
	topic.EnableMessageOrdering = true

	return &googlePublisher{client: client, topic: topic, logger: logger}, nil
}

func (p *googlePublisher) PublishComplaintEvent(ctx context.Context, event *entity.ComplaintEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		if msg.orderingKey != "" {
			p.topic.ResumePublish(msg.orderingKey)
		}

		return errors.Wrapf(err, "failed to publish %s for %s", event.Type, event.ComplaintID)
	}

	p.logger.Debug("Complaint event published",
		slog.String("event_type", string(event.Type)),
		slog.String("complaint_id", event.ComplaintID),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
