package messaging

import (
	"context"
	"log/slog"
	"time"

	"servicedesk/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
)

const (
	defaultBreakerOpenTimeout = 60 * time.Second
	breakerHalfOpenRequests   = 1
)

// ErrChannelUnavailable is returned while the breaker is open.
var ErrChannelUnavailable = errors.New("messaging channel temporarily unavailable")

type breakerChannel struct {
	next    service.MessagingChannel
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerChannel stops calling next after maxFailures consecutive errors
// and probes it again once openTimeout has passed.
func NewBreakerChannel(next service.MessagingChannel, maxFailures uint32, openTimeout time.Duration, logger *slog.Logger) service.MessagingChannel {
	if openTimeout <= 0 {
		openTimeout = defaultBreakerOpenTimeout
	}

	settings := gobreaker.Settings{
		Name:        "messaging-" + next.Name(),
		MaxRequests: breakerHalfOpenRequests,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Messaging circuit breaker state changed",
				slog.String("circuit_breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &breakerChannel{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Send forwards to the wrapped channel unless the breaker is open.
// A rejected message is not a channel failure and does not count toward tripping.
func (c *breakerChannel) Send(ctx context.Context, message *service.OutboundMessage) (*service.SendResult, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.next.Send(ctx, message)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrap(ErrChannelUnavailable, c.next.Name())
		}

		return nil, err
	}

	sendResult, _ := result.(*service.SendResult)

	return sendResult, nil
}

func (c *breakerChannel) Name() string {
	return c.next.Name()
}
