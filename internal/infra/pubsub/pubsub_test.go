package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servicedesk/config"
	"servicedesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func resolvedEvent() *entity.ComplaintEvent {
	return &entity.ComplaintEvent{
		Type:        entity.EventComplaintResolved,
		RequestID:   "req-42",
		ID:          uuid.New(),
		ComplaintID: "CMP-KHA-000001",
		Status:      entity.ComplaintStatusResolved,
		ActorID:     uuid.New(),
		ActorRole:   entity.RoleTechnician,
		OccurredAt:  time.Now().UTC(),
	}
}

func TestEncodeEvent(t *testing.T) {
	event := resolvedEvent()
	msg, err := encodeEvent(event)
	require.NoError(t, err)

	assert.Equal(t, "CMP-KHA-000001", msg.orderingKey)
	assert.Equal(t, map[string]string{
		"event_type":   "complaint.resolved",
		"id":           event.ID.String(),
		"actor_role":   "technician",
		"complaint_id": "CMP-KHA-000001",
		"status":       "resolved",
		"request_id":   "req-42",
	}, msg.attributes)

	var decoded entity.ComplaintEvent
	require.NoError(t, json.Unmarshal(msg.data, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
}

func TestEncodeEvent_OmitsEmptyAttributes(t *testing.T) {
	event := resolvedEvent()
	event.RequestID = ""
	event.Status = ""

	msg, err := encodeEvent(event)
	require.NoError(t, err)

	assert.NotContains(t, msg.attributes, "request_id")
	assert.NotContains(t, msg.attributes, "status")
}

func TestPushPublisher_PublishComplaintEvent(t *testing.T) {
	var (
		received  pushEnvelope
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	event := resolvedEvent()
	publisher := newPushPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishComplaintEvent(t.Context(), event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, pushSubscription, received.Subscription)
	assert.Equal(t, "CMP-KHA-000001", received.Message.OrderingKey)
	assert.Equal(t, "complaint.resolved", received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.ComplaintEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, event.Type, decoded.Type)
}

func TestPushPublisher_ConsumerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	err := newPushPublisher(server.URL, discardLogger()).PublishComplaintEvent(t.Context(), resolvedEvent())
	assert.ErrorContains(t, err, "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantErr  string
		disabled bool
	}{
		{name: "not configured", disabled: true},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, disabled: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8081/events"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    t.Context(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			if tt.disabled {
				assert.IsType(t, &disabledPublisher{}, publisher)
				assert.NoError(t, publisher.PublishComplaintEvent(t.Context(), resolvedEvent()))
			} else {
				assert.IsType(t, &pushPublisher{}, publisher)
			}
		})
	}
}
