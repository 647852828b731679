package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"smeta/internal/usecase/interfaces"
)

const DefaultDraftsTableName = "estimate_drafts"

// DynamoDBAPI is the part of *dynamodb.Client the drafts repository uses.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type draftItem struct {
	Slot      string `dynamodbav:"slot"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository mirrors draft documents to DynamoDB.
//
// Table requirements:
//   - PK: slot (string)
//
// The document is kept as the serialized JSON string so a stored draft is
// returned exactly as written, corrupt or not.

type DocumentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb DynamoDBAPI, tableName string) *DocumentDynamoRepository {
	if tableName == "" {
		tableName = DefaultDraftsTableName
	}
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       time.Now,
	}
}

func (r *DocumentDynamoRepository) Load(ctx context.Context, slot string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot": &types.AttributeValueMemberS{Value: slot},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	if it.Document == "" {
		return nil, nil
	}
	return []byte(it.Document), nil
}

func (r *DocumentDynamoRepository) Save(ctx context.Context, slot string, document []byte) error {
	av, err := attributevalue.MarshalMap(draftItem{
		Slot:      slot,
		Document:  string(document),
		UpdatedAt: r.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
