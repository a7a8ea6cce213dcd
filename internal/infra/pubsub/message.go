package pubsub

import (
	"encoding/json"

	"servicedesk/internal/domain/entity"

	"github.com/pkg/errors"
)

// outbound is a complaint event ready for either transport.
type outbound struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps the events of one complaint in publish order.
	orderingKey string
}

func encodeEvent(event *entity.ComplaintEvent) (outbound, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return outbound{}, errors.Wrapf(err, "failed to encode %s event", event.Type)
	}

	attributes := map[string]string{
		"event_type": string(event.Type),
		"id":         event.ID.String(),
		"actor_role": string(event.ActorRole),
	}
	if event.ComplaintID != "" {
		attributes["complaint_id"] = event.ComplaintID
	}
	if event.Status != "" {
		attributes["status"] = string(event.Status)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return outbound{
		data:        data,
		attributes:  attributes,
		orderingKey: event.ComplaintID,
	}, nil
}
