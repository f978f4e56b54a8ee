package repository

import (
	"context"
	"time"

	"workshop_visits/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// getItem loads one record by its "id" key. found is false when the table
// has no such record.
func getItem[T any](ctx context.Context, ddb DynamoAPI, table, id string) (rec T, found bool, err error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return rec, false, errors.Wrapf(err, "get %s/%s", table, id)
	}
	if len(out.Item) == 0 {
		return rec, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return rec, false, errors.Wrapf(err, "decode %s/%s", table, id)
	}
	return rec, true, nil
}

// putItem writes rec. condition is optional.
func putItem(ctx context.Context, ddb DynamoAPI, table string, rec any, condition string) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return errors.Wrapf(err, "encode %s record", table)
	}
	in := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}
	if condition != "" {
		in.ConditionExpression = aws.String(condition)
		in.ExpressionAttributeNames = map[string]string{"#id": "id"}
	}
	if _, err := ddb.PutItem(ctx, in); err != nil {
		return errors.Wrapf(err, "put %s record", table)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// storedTimes parses the timestamps of one record and remembers the first
// malformed one, so a decoder can read every field and check once.
type storedTimes struct {
	err error
}

func (st *storedTimes) at(field, s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && st.err == nil {
		st.err = errors.Wrapf(err, "stored %s", field)
	}
	return t
}

func (st *storedTimes) ptr(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := st.at(field, s)
	return &t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func moneyFromCents(cents int64, field string) (entities.Money, error) {
	m, err := entities.NewMoney(cents)
	if err != nil {
		return entities.Money{}, errors.Wrapf(err, "stored %s", field)
	}
	return m, nil
}
