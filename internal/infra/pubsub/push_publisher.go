package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "servicedesk/internal/delivery/context"
	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	pushSubscription = "projects/local/subscriptions/complaint-events-push"
	pushTimeout      = 10 * time.Second
)

// pushEnvelope is the body a Pub/Sub push subscription delivers, so local
// consumers can share their handler with production.
type pushEnvelope struct {
	Message      pushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

type pushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime time.Time         `json:"publishTime"`
}

// pushPublisher posts complaint events straight to a consumer endpoint.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func newPushPublisher(endpoint string, logger *slog.Logger) *pushPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger,
	}
}

func (p *pushPublisher) PublishComplaintEvent(ctx context.Context, event *entity.ComplaintEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushEnvelope{
		Subscription: pushSubscription,
		Message: pushMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   uuid.NewString(),
			OrderingKey: msg.orderingKey,
			PublishTime: time.Now().UTC(),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("complaint event consumer answered %d", resp.StatusCode)
	}

	p.logger.Debug("Complaint event pushed",
		slog.String("event_type", string(event.Type)),
		slog.String("complaint_id", event.ComplaintID),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
