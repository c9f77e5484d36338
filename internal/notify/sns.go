package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/AdityasahuX07/Lens-Time/internal"
)

// SNSNotifier publishes notifications to an SNS topic. The SNS message id
// doubles as the notification id.
type SNSNotifier struct {
	client   *sns.Client
	topicARN string
	logger   internal.Logger
}

func NewSNSNotifier(ctx context.Context, region, topicARN string, logger internal.Logger) (*SNSNotifier, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSNotifier{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
		logger:   logger,
	}, nil
}

func (n *SNSNotifier) RequestPermission(ctx context.Context) (bool, error) {
	// Authorization is handled by the topic policy at publish time.
	return true, nil
}

func (n *SNSNotifier) Schedule(ctx context.Context, title, body string) (string, error) {
	out, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(title),
		Message:  aws.String(body),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func (n *SNSNotifier) Cancel(ctx context.Context, id string) error {
	// A published SNS message cannot be recalled.
	n.logger.Warnf("notification [%s] cancel requested, SNS messages cannot be recalled", id)
	return nil
}

var _ Notifier = (*SNSNotifier)(nil)
