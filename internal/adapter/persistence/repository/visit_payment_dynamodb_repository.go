package repository

import (
	"context"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const paymentsVisitIDIndex = "visit_id-index"

type visitPaymentRecord struct {
	ID           string                 `dynamodbav:"id"`
	VisitID      string                 `dynamodbav:"visit_id"`
	StudioID     string                 `dynamodbav:"studio_id"`
	AmountGross  int64                  `dynamodbav:"amount_gross"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// VisitPaymentDynamoRepository persists VisitPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: visit_id-index (PK: visit_id)
type VisitPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVisitPaymentRepository = (*VisitPaymentDynamoRepository)(nil)

func NewVisitPaymentDynamoRepository(ddb DynamoAPI, tableName string) *VisitPaymentDynamoRepository {
	return &VisitPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VisitPaymentDynamoRepository) Create(ctx context.Context, p entities.VisitPayment) (entities.VisitPayment, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toVisitPaymentRecord(p), "attribute_not_exists(#id)"); err != nil {
		return entities.VisitPayment{}, err
	}
	return p, nil
}

func (r *VisitPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.VisitPayment, error) {
	rec, found, err := getItem[visitPaymentRecord](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.VisitPayment{}, err
	}
	return fromVisitPaymentRecord(rec)
}

func (r *VisitPaymentDynamoRepository) ListByVisitID(ctx context.Context, visitID string) ([]entities.VisitPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsVisitIDIndex),
		KeyConditionExpression: aws.String("visit_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: visitID},
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "query payments by visit %s", visitID)
	}

	payments := make([]entities.VisitPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec visitPaymentRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, errors.Wrap(err, "decode payment")
		}
		p, err := fromVisitPaymentRecord(rec)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func toVisitPaymentRecord(p entities.VisitPayment) visitPaymentRecord {
	return visitPaymentRecord{
		ID:           p.ID,
		VisitID:      p.VisitID,
		StudioID:     p.StudioID,
		AmountGross:  p.AmountGross.Cents(),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.ProviderPayload,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromVisitPaymentRecord(rec visitPaymentRecord) (entities.VisitPayment, error) {
	amount, err := moneyFromCents(rec.AmountGross, "amount_gross")
	if err != nil {
		return entities.VisitPayment{}, errors.Wrapf(err, "payment %s", rec.ID)
	}
	var times storedTimes
	p := entities.VisitPayment{
		ID:                 rec.ID,
		VisitID:            rec.VisitID,
		StudioID:           rec.StudioID,
		AmountGross:        amount,
		Date:               times.at("date", rec.Date),
		Status:             entities.PaymentStatus(rec.Status),
		ProviderPayloadRaw: []byte(rec.MPPayloadRaw),
		ProviderPayload:    rec.MPPayload,
	}
	if times.err != nil {
		return entities.VisitPayment{}, errors.Wrapf(times.err, "payment %s", rec.ID)
	}
	return p, nil
}
