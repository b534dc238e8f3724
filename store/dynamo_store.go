package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/theoremus-urban-solutions/sftraintimes/model"
)

// DynamoAPI is the subset of the DynamoDB client DynamoStore uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoStore keeps users in a DynamoDB table keyed by "id".
type DynamoStore struct {
	client DynamoAPI
	table  string
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// TableName returns the stage-suffixed user table name, e.g. User-dev.
func TableName(stage string) string {
	if stage == "" {
		stage = "dev"
	}
	return "User-" + stage
}

func (s *DynamoStore) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		model.FieldID: &types.AttributeValueMemberS{Value: id},
	}
}

func (s *DynamoStore) GetUser(ctx context.Context, id string) (*model.UserHomeConfig, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var u model.UserHomeConfig
	if err := attributevalue.UnmarshalMap(out.Item, &u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	return &u, nil
}

func (s *DynamoStore) AddUser(ctx context.Context, u model.UserHomeConfig) error {
	if u.ID == "" {
		return &model.InvalidInputError{Msg: "user id is required"}
	}
	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		return err
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put user %s: %w", u.ID, err)
	}
	return nil
}

// UpdateUser issues one UpdateItem: SET for non-empty values, REMOVE for
// empty ones. DynamoDB creates the item if it does not exist.
func (s *DynamoStore) UpdateUser(ctx context.Context, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := validateFields(fields); err != nil {
		return err
	}
	in := buildUpdate(s.table, fields)
	in.Key = s.key(id)
	if _, err := s.client.UpdateItem(ctx, in); err != nil {
		return fmt.Errorf("update user %s: %w", id, err)
	}
	return nil
}

func buildUpdate(table string, fields map[string]string) *dynamodb.UpdateItemInput {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	var sets, removes []string
	for _, k := range keys {
		names["#"+k] = k
		if fields[k] == "" {
			removes = append(removes, "#"+k)
			continue
		}
		values[":"+k] = &types.AttributeValueMemberS{Value: fields[k]}
		sets = append(sets, fmt.Sprintf("#%s = :%s", k, k))
	}

	var expr []string
	if len(sets) > 0 {
		expr = append(expr, "SET "+strings.Join(sets, ", "))
	}
	if len(removes) > 0 {
		expr = append(expr, "REMOVE "+strings.Join(removes, ", "))
	}
	in := &dynamodb.UpdateItemInput{
		TableName:                aws.String(table),
		UpdateExpression:         aws.String(strings.Join(expr, " ")),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}
	return in
}
