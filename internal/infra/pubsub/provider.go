// Package pubsub fans committed complaint lifecycle events out to downstream consumers.
package pubsub

import (
	"context"
	"log/slog"

	"servicedesk/config"
	"servicedesk/internal/domain/entity"
	"servicedesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// ProviderLocal pushes events to an HTTP endpoint in Pub/Sub push format.
	ProviderLocal = "local"
	// ProviderGoogle publishes events to a Google Cloud Pub/Sub topic.
	ProviderGoogle = "google"
)

// disabledPublisher drops events when no provider is configured.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishComplaintEvent(_ context.Context, event *entity.ComplaintEvent) error {
	p.logger.Debug("Event publishing disabled, dropping complaint event",
		slog.String("event_type", string(event.Type)),
		slog.String("complaint_id", event.ComplaintID),
	)

	return nil
}

func (p *disabledPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func validate(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("local endpoint is required for local provider")
		}
	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("topic ID is required for google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

// NewEventPublisher picks the transport for complaint events from config.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "event_publisher"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Event publishing disabled")

		return &disabledPublisher{logger: logger}, nil
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	var publisher service.EventPublisher
	if cfg.Provider == ProviderLocal {
		publisher = newPushPublisher(cfg.LocalEndpoint, logger)
	} else {
		google, err := newGooglePublisher(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		publisher = google
	}

	logger.Info("Complaint events enabled",
		slog.String("provider", cfg.Provider),
		slog.String("topic_id", cfg.TopicID),
		slog.String("endpoint", cfg.LocalEndpoint),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
