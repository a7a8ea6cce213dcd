package messaging

import (
	"context"

	"servicedesk/config"
	"servicedesk/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
)

const (
	snsChannelName     = "sns"
	defaultSNSSMSType  = "Transactional"
	snsAttrSMSType     = "AWS.SNS.SMS.SMSType"
	snsAttrSenderID    = "AWS.SNS.SMS.SenderID"
	snsAttrDataTypeStr = "String"
)

// snsPublisher is the subset of the SNS client used for SMS.
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsChannel struct {
	client      snsPublisher
	countryCode string
	senderID    string
	smsType     string
}

// NewSNSChannel creates an SMS channel backed by AWS SNS.
// Explicit credentials are used when configured; otherwise the default AWS chain applies.
func NewSNSChannel(ctx context.Context, cfg config.MessagingConfig) (service.MessagingChannel, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.SNS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.SNS.Region))
	}
	if cfg.SNS.AccessKeyID != "" && cfg.SNS.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SNS.AccessKeyID, cfg.SNS.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return newSNSChannel(sns.NewFromConfig(awsCfg), cfg), nil
}

func newSNSChannel(client snsPublisher, cfg config.MessagingConfig) *snsChannel {
	smsType := cfg.SNS.SMSType
	if smsType == "" {
		smsType = defaultSNSSMSType
	}

	return &snsChannel{
		client:      client,
		countryCode: cfg.CountryCode,
		senderID:    cfg.SNS.SenderID,
		smsType:     smsType,
	}
}

// Send publishes the message as an SMS to the recipient's E.164 number.
func (c *snsChannel) Send(ctx context.Context, message *service.OutboundMessage) (*service.SendResult, error) {
	input := &sns.PublishInput{
		Message:     aws.String(message.Body),
		PhoneNumber: aws.String(e164(c.countryCode, message.Recipient)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			snsAttrSMSType: {
				DataType:    aws.String(snsAttrDataTypeStr),
				StringValue: aws.String(c.smsType),
			},
		},
	}
	if c.senderID != "" {
		input.MessageAttributes[snsAttrSenderID] = types.MessageAttributeValue{
			DataType:    aws.String(snsAttrDataTypeStr),
			StringValue: aws.String(c.senderID),
		}
	}

	output, err := c.client.Publish(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "SNS publish failed")
	}

	return &service.SendResult{
		Success:           true,
		ExternalMessageID: aws.ToString(output.MessageId),
		Provider:          snsChannelName,
	}, nil
}

func (c *snsChannel) Name() string {
	return snsChannelName
}

func e164(countryCode, localNumber string) string {
	return "+" + countryCode + localNumber
}
