// Package messaging delivers rendered notifications through SMS, push or the log.
package messaging

import (
	"context"
	"log/slog"

	"servicedesk/config"
	"servicedesk/internal/domain/lifecycle"
	"servicedesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// ProviderSNS sends SMS through AWS SNS.
	ProviderSNS = "sns"
	// ProviderFirebase pushes to per-contact FCM topics.
	ProviderFirebase = "firebase"
	// ProviderLog writes messages to the application log.
	ProviderLog = "log"
)

// Params holds dependencies for the messaging channel.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the configured channel, wrapped in a circuit breaker when enabled.
func New(params Params) (service.MessagingChannel, error) {
	cfg := params.Config.Messaging

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var (
		channel service.MessagingChannel
		err     error
	)
	switch cfg.Provider {
	case ProviderSNS:
		channel, err = NewSNSChannel(ctx, cfg)
	case ProviderFirebase:
		channel, err = NewFirebaseChannel(ctx, cfg.Firebase)
	case ProviderLog, "":
		channel = NewLogChannel(params.Logger)
	default:
		return nil, errors.Errorf("unsupported messaging provider: %s", cfg.Provider)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s channel", cfg.Provider)
	}

	if cfg.Breaker.MaxFailures > 0 {
		channel = NewBreakerChannel(channel, cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout, params.Logger)
	}

	params.Logger.Info("Messaging channel ready",
		slog.String("channel", channel.Name()),
		slog.Bool("circuit_breaker", cfg.Breaker.MaxFailures > 0),
	)

	return channel, nil
}
