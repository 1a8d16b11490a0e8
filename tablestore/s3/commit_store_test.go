package s3

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockS3Client is an in-memory S3 mock.
type mockS3Client struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func newMockS3Client() *mockS3Client {
	return &mockS3Client{objects: make(map[string][]byte)}
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (m *mockS3Client) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (m *mockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := aws.ToString(params.Prefix)
	var keys []string
	for key := range m.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for _, key := range keys {
		out.Contents = append(out.Contents, s3types.Object{Key: aws.String(key)})
	}
	return out, nil
}

func (m *mockS3Client) CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return &s3.CreateMultipartUploadOutput{UploadId: aws.String("upload-1")}, nil
}

func (m *mockS3Client) UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return &s3.UploadPartOutput{ETag: aws.String("etag")}, nil
}

func (m *mockS3Client) CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return &s3.CompleteMultipartUploadOutput{}, nil
}

func (m *mockS3Client) AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

// mockDDBClient is an in-memory DynamoDB mock honoring the
// attribute_not_exists conditional write.
type mockDDBClient struct {
	mu    sync.RWMutex
	items map[string]map[string]ddbtypes.AttributeValue
}

func newMockDDBClient() *mockDDBClient {
	return &mockDDBClient{items: make(map[string]map[string]ddbtypes.AttributeValue)}
}

func (m *mockDDBClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dataset := params.Item["dataset"].(*ddbtypes.AttributeValueMemberS).Value
	version := params.Item["version"].(*ddbtypes.AttributeValueMemberN).Value
	key := dataset + ":" + version

	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists(version)" {
		if _, exists := m.items[key]; exists {
			return nil, &ddbtypes.ConditionalCheckFailedException{Message: aws.String("condition failed")}
		}
	}

	m.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (m *mockDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dataset := params.ExpressionAttributeValues[":d"].(*ddbtypes.AttributeValueMemberS).Value

	var items []map[string]ddbtypes.AttributeValue
	for _, item := range m.items {
		if item["dataset"].(*ddbtypes.AttributeValueMemberS).Value == dataset {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		vi, _ := strconv.ParseUint(items[i]["version"].(*ddbtypes.AttributeValueMemberN).Value, 10, 64)
		vj, _ := strconv.ParseUint(items[j]["version"].(*ddbtypes.AttributeValueMemberN).Value, 10, 64)
		return vi > vj
	})
	if params.Limit != nil && int(*params.Limit) < len(items) {
		items = items[:*params.Limit]
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func newTestCommitStore(ddb *mockDDBClient) *CommitStore {
	store := NewStore(newMockS3Client(), "test-bucket", "datasets/")
	return NewCommitStore(store, ddb, "carwash-commits", "vehicles")
}

func TestStoreGetPut(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newMockS3Client(), "test-bucket", "datasets/")

	require.NoError(t, store.Put(ctx, "vehicles.csv", []byte("model\ncamry\n")))

	data, err := store.Get(ctx, "vehicles.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("model\ncamry\n"), data)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"vehicles.csv"}, names)

	require.NoError(t, store.Delete(ctx, "vehicles.csv"))
	_, err = store.Get(ctx, "vehicles.csv")
	require.Error(t, err)
}

func TestCommitStoreFirstPublish(t *testing.T) {
	ctx := context.Background()
	cs := newTestCommitStore(newMockDDBClient())

	version, err := cs.Publish(ctx, "vehicles-v1.csv.gz", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), version)

	current, name, err := cs.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), current)
	assert.Equal(t, "vehicles-v1.csv.gz", name)
}

func TestCommitStoreSequentialPublishes(t *testing.T) {
	ctx := context.Background()
	cs := newTestCommitStore(newMockDDBClient())

	for i := 1; i <= 3; i++ {
		version, err := cs.Publish(ctx, "vehicles.csv.gz", []byte("data"))
		require.NoError(t, err)
		assert.Equal(t, uint64(i), version)
	}
}

// staleReadDDBClient answers Query from a point-in-time snapshot while
// writes land in the live table. This models the race window: another
// writer publishes between our Current read and our conditional put.
type staleReadDDBClient struct {
	*mockDDBClient
	snapshot *mockDDBClient
}

func (c *staleReadDDBClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return c.snapshot.Query(ctx, params, optFns...)
}

func TestCommitStoreConcurrentModification(t *testing.T) {
	ctx := context.Background()

	commitItem := func(version, name string) *dynamodb.PutItemInput {
		return &dynamodb.PutItemInput{
			TableName: aws.String("carwash-commits"),
			Item: map[string]ddbtypes.AttributeValue{
				"dataset":     &ddbtypes.AttributeValueMemberS{Value: "vehicles"},
				"version":     &ddbtypes.AttributeValueMemberN{Value: version},
				"object_name": &ddbtypes.AttributeValueMemberS{Value: name},
			},
		}
	}

	// Both writers read current = version 1.
	live := newMockDDBClient()
	snapshot := newMockDDBClient()
	_, err := live.PutItem(ctx, commitItem("1", "base.csv.gz"))
	require.NoError(t, err)
	_, err = snapshot.PutItem(ctx, commitItem("1", "base.csv.gz"))
	require.NoError(t, err)

	// The racer lands version 2 before our conditional put.
	_, err = live.PutItem(ctx, commitItem("2", "racer.csv.gz"))
	require.NoError(t, err)

	store := NewStore(newMockS3Client(), "test-bucket", "datasets/")
	cs := NewCommitStore(store, &staleReadDDBClient{
		mockDDBClient: live,
		snapshot:      snapshot,
	}, "carwash-commits", "vehicles")

	// We still see version 1, attempt version 2, and lose.
	_, err = cs.Publish(ctx, "mine.csv.gz", []byte("data"))
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
