package messaging

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"servicedesk/config"
	"servicedesk/internal/domain/service"
	mockservice "servicedesk/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func assignmentMessage() *service.OutboundMessage {
	return &service.OutboundMessage{
		Recipient: "9876543210",
		Kind:      "assignment",
		Body:      "Complaint CMP-KHA-000001 at Kharadi has been assigned to you: Leaking tap",
		Variables: map[string]string{"complaintId": "CMP-KHA-000001"},
	}
}

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}

	return &sns.PublishOutput{MessageId: aws.String("sns-1")}, nil
}

func TestSNSChannel_Send(t *testing.T) {
	client := &fakeSNS{}
	channel := newSNSChannel(client, config.MessagingConfig{
		CountryCode: "91",
		SNS:         config.SNSConfig{SenderID: "SRVDSK"},
	})

	result, err := channel.Send(t.Context(), assignmentMessage())
	require.NoError(t, err)

	assert.Equal(t, &service.SendResult{Success: true, ExternalMessageID: "sns-1", Provider: "sns"}, result)
	assert.Equal(t, "+919876543210", aws.ToString(client.input.PhoneNumber))
	assert.Equal(t, assignmentMessage().Body, aws.ToString(client.input.Message))
	assert.Equal(t, "Transactional", aws.ToString(client.input.MessageAttributes[snsAttrSMSType].StringValue))
	assert.Equal(t, "SRVDSK", aws.ToString(client.input.MessageAttributes[snsAttrSenderID].StringValue))
}

func TestSNSChannel_SendError(t *testing.T) {
	channel := newSNSChannel(&fakeSNS{err: errors.New("throttled")}, config.MessagingConfig{CountryCode: "91"})

	result, err := channel.Send(t.Context(), assignmentMessage())
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "throttled")
}

type fakeFCM struct {
	message *messaging.Message
	err     error
}

func (f *fakeFCM) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.message = message
	if f.err != nil {
		return "", f.err
	}

	return "projects/demo/messages/1", nil
}

func TestFirebaseChannel_Send(t *testing.T) {
	client := &fakeFCM{}
	channel := newFirebaseChannel(client, "")

	result, err := channel.Send(t.Context(), assignmentMessage())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "firebase", result.Provider)
	assert.Equal(t, "projects/demo/messages/1", result.ExternalMessageID)
	assert.Equal(t, "contact-9876543210", client.message.Topic)
	assert.Equal(t, assignmentMessage().Body, client.message.Notification.Body)
	assert.Equal(t, map[string]string{"complaintId": "CMP-KHA-000001", "kind": "assignment"}, client.message.Data)
}

func TestLogChannel_Send(t *testing.T) {
	result, err := NewLogChannel(discardLogger()).Send(t.Context(), assignmentMessage())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "log", result.Provider)
	assert.NotEmpty(t, result.ExternalMessageID)
}

func TestBreakerChannel_OpensAfterConsecutiveFailures(t *testing.T) {
	next := mockservice.NewMockMessagingChannel(t)
	next.EXPECT().Name().Return("sns").Maybe()
	next.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, errors.New("gateway timeout")).Times(2)

	channel := NewBreakerChannel(next, 2, time.Minute, discardLogger())

	for range 2 {
		_, err := channel.Send(t.Context(), assignmentMessage())
		assert.ErrorContains(t, err, "gateway timeout")
	}

	_, err := channel.Send(t.Context(), assignmentMessage())
	assert.ErrorIs(t, err, ErrChannelUnavailable)
}

func TestBreakerChannel_PassesResults(t *testing.T) {
	next := mockservice.NewMockMessagingChannel(t)
	next.EXPECT().Name().Return("firebase").Maybe()
	next.EXPECT().Send(mock.Anything, mock.Anything).
		Return(&service.SendResult{Success: false, Provider: "firebase"}, nil).Times(3)

	channel := NewBreakerChannel(next, 1, time.Minute, discardLogger())
	assert.Equal(t, "firebase", channel.Name())

	// Rejections are not failures, so the breaker stays closed.
	for range 3 {
		result, err := channel.Send(t.Context(), assignmentMessage())
		require.NoError(t, err)
		assert.False(t, result.Success)
	}
}

func TestNew_SelectsProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Messaging.Provider = ProviderLog
	cfg.Messaging.Breaker.MaxFailures = 3

	channel, err := New(Params{Config: cfg, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Equal(t, "log", channel.Name())
	assert.IsType(t, &breakerChannel{}, channel)

	cfg.Messaging.Provider = "pager"
	_, err = New(Params{Config: cfg, Logger: discardLogger()})
	assert.ErrorContains(t, err, "unsupported messaging provider")
}
