package repository

import (
	"context"
	"fmt"
	"sort"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NewDynamoClient loads AWS config and returns a DynamoDB client.
func NewDynamoClient(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// NewDynamoClientFromConfig accepts an AWS SDK config and returns a client.
func NewDynamoClientFromConfig(cfg sdkaws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
}

// DynamoStore is a single-table DynamoDB Store. Records use a string
// partition key `k` and keep their JSON value in attribute `v`. Prefix scans
// use a table Scan with a begins_with filter; key volumes here are small
// (one storefront), so a GSI is not worth the modeling cost.
type DynamoStore struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoStore(client *dynamodb.Client, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

var _ Store = (*DynamoStore)(nil)

type ddbRecord struct {
	Key   string `dynamodbav:"k"`
	Value []byte `dynamodbav:"v"`
}

func (s *DynamoStore) Get(ctx context.Context, key string) ([]byte, error) {
	keyAttr, err := attributevalue.MarshalMap(map[string]string{"k": key})
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.table,
		Key:       keyAttr,
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb GetItem failed: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrKeyNotFound
	}
	var rec ddbRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return rec.Value, nil
}

func (s *DynamoStore) Set(ctx context.Context, key string, value []byte) error {
	item, err := attributevalue.MarshalMap(ddbRecord{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.table,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (s *DynamoStore) Delete(ctx context.Context, key string) error {
	keyAttr, err := attributevalue.MarshalMap(map[string]string{"k": key})
	if err != nil {
		return fmt.Errorf("marshal key: %w", err)
	}
	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.table,
		Key:       keyAttr,
	})
	if err != nil {
		return fmt.Errorf("dynamodb DeleteItem failed: %w", err)
	}
	return nil
}

func (s *DynamoStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	prefixAttr, err := attributevalue.Marshal(prefix)
	if err != nil {
		return nil, fmt.Errorf("marshal prefix: %w", err)
	}

	var entries []Entry
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 &s.table,
			FilterExpression:          sdkaws.String("begins_with(#k, :prefix)"),
			ExpressionAttributeNames:  map[string]string{"#k": "k"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":prefix": prefixAttr},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("dynamodb Scan failed: %w", err)
		}
		for _, item := range out.Items {
			var rec ddbRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal item: %w", err)
			}
			entries = append(entries, Entry{Key: rec.Key, Value: rec.Value})
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}
