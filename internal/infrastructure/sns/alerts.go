package sns

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/maxgala/aspire-provisioner/internal/config"
	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// ReviewAlerter notifies the ops channel when an account is held for
// manual review.
type ReviewAlerter interface {
	Alert(ctx context.Context, accountType domain.AccountType, email string) error
}

type alerter struct {
	client   *sns.Client
	topicARN string
}

func NewAlerter(cfg *config.Config) (ReviewAlerter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.SNSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &alerter{client: sns.NewFromConfig(awsCfg), topicARN: cfg.ReviewTopicARN}, nil
}

func (a *alerter) Alert(ctx context.Context, accountType domain.AccountType, email string) error {
	subject := fmt.Sprintf("Aspire account held for review (%s)", accountType)
	message := fmt.Sprintf("account %s confirmed with user_type %s and was disabled pending manual review", email, accountType)
	_, err := a.client.Publish(ctx, &sns.PublishInput{
		TopicArn: &a.topicARN,
		Subject:  &subject,
		Message:  &message,
	})
	return err
}
