package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/maxgala/aspire-provisioner/internal/config"
	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// Gate mutates user accounts at the Cognito user pool. No enable operation
// is exposed: accounts are enabled only by the pool's own default state at
// confirmation time.
type Gate struct {
	client *cognitoidentityprovider.Client
}

// NewClient creates a Cognito IdP client. When cfg.AWSEndpointURL is set
// (LocalStack), it overrides the endpoint.
func NewClient(cfg *config.Config) *cognitoidentityprovider.Client {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		panic("failed to load AWS config for Cognito: " + err.Error())
	}

	clientOpts := []func(*cognitoidentityprovider.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *cognitoidentityprovider.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}

	return cognitoidentityprovider.NewFromConfig(awsCfg, clientOpts...)
}

func NewGate(client *cognitoidentityprovider.Client) *Gate {
	return &Gate{client: client}
}

// Disable sets the user to a disabled state at the identity provider.
func (g *Gate) Disable(ctx context.Context, userPoolID, userName string) error {
	_, err := g.client.AdminDisableUser(ctx, &cognitoidentityprovider.AdminDisableUserInput{
		UserPoolId: aws.String(userPoolID),
		Username:   aws.String(userName),
	})
	if err != nil {
		return fmt.Errorf("cognito disable user: %w", err)
	}
	return nil
}

// UpdatePicture pushes a new picture URL back to the user's pool attributes.
func (g *Gate) UpdatePicture(ctx context.Context, userPoolID, userName, url string) error {
	_, err := g.client.AdminUpdateUserAttributes(ctx, &cognitoidentityprovider.AdminUpdateUserAttributesInput{
		UserPoolId: aws.String(userPoolID),
		Username:   aws.String(userName),
		UserAttributes: []types.AttributeType{
			{Name: aws.String(domain.AttrPicture), Value: aws.String(url)},
		},
	})
	if err != nil {
		return fmt.Errorf("cognito update picture: %w", err)
	}
	return nil
}
