package messaging

import (
	"context"

	"servicedesk/config"
	"servicedesk/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const (
	firebaseChannelName = "firebase"
	defaultTopicPrefix  = "contact-"
	notificationTitle   = "Service desk"
)

// topicSender is the subset of the FCM client used for topic pushes.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseChannel struct {
	client      topicSender
	topicPrefix string
}

// NewFirebaseChannel creates a push channel that sends to one FCM topic per contact number.
// Mobile apps subscribe to "<prefix><10-digit number>" after sign-in.
func NewFirebaseChannel(ctx context.Context, cfg config.FirebaseConfig) (service.MessagingChannel, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseChannel(client, cfg.TopicPrefix), nil
}

func newFirebaseChannel(client topicSender, topicPrefix string) *firebaseChannel {
	if topicPrefix == "" {
		topicPrefix = defaultTopicPrefix
	}

	return &firebaseChannel{
		client:      client,
		topicPrefix: topicPrefix,
	}
}

// Send pushes the message to the recipient's topic. Template variables travel as data.
func (c *firebaseChannel) Send(ctx context.Context, message *service.OutboundMessage) (*service.SendResult, error) {
	data := make(map[string]string, len(message.Variables)+1)
	for k, v := range message.Variables {
		data[k] = v
	}
	data["kind"] = message.Kind

	id, err := c.client.Send(ctx, &messaging.Message{
		Topic: c.topicPrefix + message.Recipient,
		Notification: &messaging.Notification{
			Title: notificationTitle,
			Body:  message.Body,
		},
		Data: data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send notification")
	}

	return &service.SendResult{
		Success:           true,
		ExternalMessageID: id,
		Provider:          firebaseChannelName,
	}, nil
}

func (c *firebaseChannel) Name() string {
	return firebaseChannelName
}
