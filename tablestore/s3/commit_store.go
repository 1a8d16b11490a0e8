package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CommitStore pairs an S3 store with a DynamoDB commit log so
// concurrent pipeline runs cannot clobber each other's published
// dataset. Cleaned tables are written to S3 under versioned names;
// a DynamoDB conditional write then advances the current pointer,
// providing the compare-and-swap semantics S3 lacks.
//
// Table schema:
//   - Partition key: dataset (string) - the dataset identifier
//   - Sort key: version (number) - monotonically increasing version
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name carwash-commits \
//	  --attribute-definitions AttributeName=dataset,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=dataset,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type CommitStore struct {
	store     *Store
	ddbClient DDBClient
	tableName string
	dataset   string
}

// DDBClient is the interface for DynamoDB operations.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// ErrConcurrentModification is returned when a concurrent publish is
// detected.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// NewCommitStore creates a commit store for the named dataset.
func NewCommitStore(store *Store, ddbClient DDBClient, tableName, dataset string) *CommitStore {
	return &CommitStore{
		store:     store,
		ddbClient: ddbClient,
		tableName: tableName,
		dataset:   dataset,
	}
}

// Store returns the underlying S3 object store.
func (c *CommitStore) Store() *Store { return c.store }

// Current returns the latest published version and its object name.
// Version 0 with an empty name means nothing has been published yet.
func (c *CommitStore) Current(ctx context.Context) (uint64, string, error) {
	resp, err := c.ddbClient.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("dataset = :d"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":d": &types.AttributeValueMemberS{Value: c.dataset},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to query DynamoDB: %w", err)
	}
	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute in DynamoDB")
	}
	nameAttr, ok := item["object_name"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid object_name attribute in DynamoDB")
	}

	var version uint64
	if _, err := fmt.Sscanf(versionAttr.Value, "%d", &version); err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}
	return version, nameAttr.Value, nil
}

// Publish writes the object and atomically advances the current
// pointer to it. Returns the new version, or
// ErrConcurrentModification if another writer published first.
func (c *CommitStore) Publish(ctx context.Context, name string, data []byte) (uint64, error) {
	if err := c.store.Put(ctx, name, data); err != nil {
		return 0, err
	}
	return c.commit(ctx, name)
}

// commit records the object name under the next version using a
// conditional write so exactly one writer wins each version.
func (c *CommitStore) commit(ctx context.Context, name string) (uint64, error) {
	currentVersion, _, err := c.Current(ctx)
	if err != nil {
		return 0, err
	}
	newVersion := currentVersion + 1

	_, err = c.ddbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item: map[string]types.AttributeValue{
			"dataset":     &types.AttributeValueMemberS{Value: c.dataset},
			"version":     &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newVersion)},
			"object_name": &types.AttributeValueMemberS{Value: name},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentModification
		}
		return 0, fmt.Errorf("failed to commit version to DynamoDB: %w", err)
	}
	return newVersion, nil
}
