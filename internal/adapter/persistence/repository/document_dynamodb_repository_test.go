package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	getErr error
	putErr error

	lastGet *dynamodb.GetItemInput
	lastPut *dynamodb.PutItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.lastGet = in
	if f.getErr != nil {
		return nil, f.getErr
	}
	key := in.Key["slot"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := in.Item["slot"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDocumentDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("default table name", func(t *testing.T) {
		repo := NewDocumentDynamoRepository(newFakeDynamo(), "")
		assert.Equal(t, DefaultDraftsTableName, repo.tableName)
	})

	t.Run("missing slot", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewDocumentDynamoRepository(ddb, "drafts")

		raw, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Nil(t, raw)
		assert.Equal(t, "drafts", *ddb.lastGet.TableName)
		assert.True(t, *ddb.lastGet.ConsistentRead)
	})

	t.Run("save then load", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewDocumentDynamoRepository(ddb, "drafts")
		repo.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

		require.NoError(t, repo.Save(ctx, "s1", []byte(`{"notes":"x"}`)))
		updated := ddb.lastPut.Item["updated_at"].(*types.AttributeValueMemberS).Value
		assert.Equal(t, "2024-01-02T03:04:05Z", updated)

		raw, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, `{"notes":"x"}`, string(raw))
	})

	t.Run("errors are returned", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.getErr = errors.New("get")
		ddb.putErr = errors.New("put")
		repo := NewDocumentDynamoRepository(ddb, "drafts")

		_, err := repo.Load(ctx, "s1")
		assert.EqualError(t, err, "get")
		assert.EqualError(t, repo.Save(ctx, "s1", []byte("{}")), "put")
	})
}
