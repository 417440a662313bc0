package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/maxgala/aspire-provisioner/internal/domain"
)

// ProvisionRepo provides typed DynamoDB operations for the provisions
// audit table.
type ProvisionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProvisionRepo(client *dynamodb.Client, tableName string) *ProvisionRepo {
	return &ProvisionRepo{client: client, tableName: tableName}
}

func (r *ProvisionRepo) Put(ctx context.Context, p *domain.ProvisionRecord) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal provision record: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByUsername queries the username-created_at GSI, newest first.
func (r *ProvisionRepo) ListByUsername(ctx context.Context, username string) ([]domain.ProvisionRecord, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("username-created_at-index"),
		KeyConditionExpression: aws.String("username = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var records []domain.ProvisionRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, err
	}
	return records, nil
}
