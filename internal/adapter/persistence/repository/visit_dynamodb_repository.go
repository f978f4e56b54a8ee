package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	visitsAppointmentIDIndex = "appointment_id-index"
	visitNumberPrefix        = "VIS"
)

type vehicleSnapshotRecord struct {
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	LicensePlate string `dynamodbav:"license_plate"`
	VIN          string `dynamodbav:"vin,omitempty"`
	Year         *int   `dynamodbav:"year,omitempty"`
	Color        string `dynamodbav:"color,omitempty"`
	EngineType   string `dynamodbav:"engine_type,omitempty"`
}

type arrivalRecord struct {
	Mileage             *int64 `dynamodbav:"mileage,omitempty"`
	KeysHandedOver      bool   `dynamodbav:"keys_handed_over"`
	DocumentsHandedOver bool   `dynamodbav:"documents_handed_over"`
	InspectionNotes     string `dynamodbav:"inspection_notes,omitempty"`
	TechnicalNotes      string `dynamodbav:"technical_notes,omitempty"`
}

// serviceItemRecord keeps the final prices for reporting; loading re-derives
// them from the base price and adjustment.
type serviceItemRecord struct {
	ID              string `dynamodbav:"id"`
	ServiceID       string `dynamodbav:"service_id"`
	ServiceName     string `dynamodbav:"service_name"`
	BasePriceNet    int64  `dynamodbav:"base_price_net"`
	VatRate         string `dynamodbav:"vat_rate"`
	AdjustmentType  string `dynamodbav:"adjustment_type"`
	AdjustmentValue int64  `dynamodbav:"adjustment_value"`
	FinalPriceNet   int64  `dynamodbav:"final_price_net"`
	FinalPriceGross int64  `dynamodbav:"final_price_gross"`
	Status          string `dynamodbav:"status"`
	CustomNote      string `dynamodbav:"custom_note,omitempty"`
	CreatedAt       string `dynamodbav:"created_at,omitempty"`
}

type visitRecord struct {
	ID                      string                `dynamodbav:"id"`
	StudioID                string                `dynamodbav:"studio_id"`
	VisitNumber             string                `dynamodbav:"visit_number"`
	CustomerID              string                `dynamodbav:"customer_id"`
	VehicleID               string                `dynamodbav:"vehicle_id"`
	AppointmentID           string                `dynamodbav:"appointment_id,omitempty"`
	Vehicle                 vehicleSnapshotRecord `dynamodbav:"vehicle"`
	ScheduledDate           string                `dynamodbav:"scheduled_date,omitempty"`
	EstimatedCompletionDate string                `dynamodbav:"estimated_completion_date,omitempty"`
	Arrival                 arrivalRecord         `dynamodbav:"arrival"`
	Status                  string                `dynamodbav:"status"`
	ActualCompletionDate    string                `dynamodbav:"actual_completion_date,omitempty"`
	PickupDate              string                `dynamodbav:"pickup_date,omitempty"`
	ServiceItems            []serviceItemRecord   `dynamodbav:"service_items"`
	TotalNet                int64                 `dynamodbav:"total_net"`
	TotalGross              int64                 `dynamodbav:"total_gross"`
	CreatedBy               string                `dynamodbav:"created_by"`
	CreatedAt               string                `dynamodbav:"created_at"`
	UpdatedBy               string                `dynamodbav:"updated_by"`
	UpdatedAt               string                `dynamodbav:"updated_at"`
}

type visitCounterRecord struct {
	ID  string `dynamodbav:"id"`
	Seq int64  `dynamodbav:"seq"`
}

// VisitDynamoRepository persists the Visit aggregate in DynamoDB, one item
// per visit with the service items nested inside it.
//
// Table requirements:
//   - visits PK: id (string)
//   - visits GSI: appointment_id-index (PK: appointment_id)
//   - counters PK: id (string), one item per studio and year
//   - customers PK: id (string), written only together with a visit
type VisitDynamoRepository struct {
	ddb            DynamoAPI
	tableName      string
	countersTable  string
	customersTable string
}

var _ interfaces.IVisitRepository = (*VisitDynamoRepository)(nil)

func NewVisitDynamoRepository(ddb DynamoAPI, tableName, countersTable, customersTable string) *VisitDynamoRepository {
	return &VisitDynamoRepository{ddb: ddb, tableName: tableName, countersTable: countersTable, customersTable: customersTable}
}

// FindByID returns the zero Visit when the id is unknown or belongs to another studio.
func (r *VisitDynamoRepository) FindByID(ctx context.Context, visitID, studioID string) (entities.Visit, error) {
	rec, found, err := getItem[visitRecord](ctx, r.ddb, r.tableName, visitID)
	if err != nil || !found {
		return entities.Visit{}, err
	}
	if rec.StudioID != studioID {
		log.WithFields(log.Fields{"visit_id": visitID, "studio_id": studioID}).Warn("[visit][repository] visit requested from another studio")
		return entities.Visit{}, nil
	}
	return fromVisitRecord(rec)
}

func (r *VisitDynamoRepository) FindByAppointmentID(ctx context.Context, studioID, appointmentID string) (entities.Visit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(visitsAppointmentIDIndex),
		KeyConditionExpression: aws.String("appointment_id = :aid"),
		FilterExpression:       aws.String("studio_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: appointmentID},
			":sid": &types.AttributeValueMemberS{Value: studioID},
		},
	})
	if err != nil {
		return entities.Visit{}, errors.Wrapf(err, "query visits by appointment %s", appointmentID)
	}
	if len(out.Items) == 0 {
		return entities.Visit{}, nil
	}

	var rec visitRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Visit{}, errors.Wrap(err, "decode visit")
	}
	return fromVisitRecord(rec)
}

// Save replaces the whole aggregate in a single write. The last write wins.
func (r *VisitDynamoRepository) Save(ctx context.Context, v entities.Visit) (entities.Visit, error) {
	if err := putItem(ctx, r.ddb, r.tableName, toVisitRecord(v), ""); err != nil {
		return entities.Visit{}, err
	}
	return v, nil
}

// SaveWithCustomer writes the visit and the customer in one transaction, so a
// check-in never leaves a customer behind without its visit.
func (r *VisitDynamoRepository) SaveWithCustomer(ctx context.Context, v entities.Visit, c entities.Customer, isNew bool) (entities.Visit, error) {
	visitItem, err := attributevalue.MarshalMap(toVisitRecord(v))
	if err != nil {
		return entities.Visit{}, errors.Wrapf(err, "encode %s record", r.tableName)
	}
	customerItem, err := attributevalue.MarshalMap(toCustomerRecord(c))
	if err != nil {
		return entities.Visit{}, errors.Wrapf(err, "encode %s record", r.customersTable)
	}

	condition := "attribute_exists(#id)"
	if isNew {
		condition = "attribute_not_exists(#id)"
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      visitItem,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.customersTable),
				Item:                     customerItem,
				ConditionExpression:      aws.String(condition),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		return entities.Visit{}, errors.Wrapf(err, "save visit %s with customer %s", v.ID(), c.ID)
	}
	return v, nil
}

// NextVisitNumber hands out VIS/<year>/<seq> numbers from an atomic
// per-studio, per-year counter.
func (r *VisitDynamoRepository) NextVisitNumber(ctx context.Context, studioID string, at time.Time) (string, error) {
	year := at.UTC().Year()
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: studioID + "#" + strconv.Itoa(year)},
		},
		UpdateExpression:          aws.String("ADD #seq :one"),
		ExpressionAttributeNames:  map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", errors.Wrapf(err, "increment visit counter for studio %s", studioID)
	}

	var counter visitCounterRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return "", errors.Wrap(err, "decode visit counter")
	}
	return formatVisitNumber(year, counter.Seq), nil
}

func formatVisitNumber(year int, seq int64) string {
	return fmt.Sprintf("%s/%d/%05d", visitNumberPrefix, year, seq)
}

func toVisitRecord(v entities.Visit) visitRecord {
	s := v.State()
	d := s.Details

	items := make([]serviceItemRecord, 0, len(s.ServiceItems))
	for _, it := range s.ServiceItems {
		items = append(items, serviceItemRecord{
			ID:              it.ID(),
			ServiceID:       it.ServiceID(),
			ServiceName:     it.ServiceName(),
			BasePriceNet:    it.BasePriceNet().Cents(),
			VatRate:         it.VatRate().String(),
			AdjustmentType:  string(it.AdjustmentType()),
			AdjustmentValue: it.AdjustmentValue(),
			FinalPriceNet:   it.FinalPriceNet().Cents(),
			FinalPriceGross: it.FinalPriceGross().Cents(),
			Status:          string(it.Status()),
			CustomNote:      it.CustomNote(),
			CreatedAt:       formatTime(it.CreatedAt()),
		})
	}

	return visitRecord{
		ID:            d.ID,
		StudioID:      d.StudioID,
		VisitNumber:   d.VisitNumber,
		CustomerID:    d.CustomerID,
		VehicleID:     d.VehicleID,
		AppointmentID: d.AppointmentID,
		Vehicle: vehicleSnapshotRecord{
			Brand:        d.Vehicle.Brand,
			Model:        d.Vehicle.Model,
			LicensePlate: d.Vehicle.LicensePlate,
			VIN:          d.Vehicle.VIN,
			Year:         d.Vehicle.Year,
			Color:        d.Vehicle.Color,
			EngineType:   d.Vehicle.EngineType,
		},
		ScheduledDate:           formatTime(d.ScheduledDate),
		EstimatedCompletionDate: formatTimePtr(d.EstimatedCompletionDate),
		Arrival: arrivalRecord{
			Mileage:             d.Arrival.Mileage,
			KeysHandedOver:      d.Arrival.KeysHandedOver,
			DocumentsHandedOver: d.Arrival.DocumentsHandedOver,
			InspectionNotes:     d.Arrival.InspectionNotes,
			TechnicalNotes:      d.Arrival.TechnicalNotes,
		},
		Status:               string(s.Status),
		ActualCompletionDate: formatTimePtr(s.ActualCompletionDate),
		PickupDate:           formatTimePtr(s.PickupDate),
		ServiceItems:         items,
		TotalNet:             v.CalculateTotalNet().Cents(),
		TotalGross:           v.CalculateTotalGross().Cents(),
		CreatedBy:            s.Audit.CreatedBy,
		CreatedAt:            formatTime(s.Audit.CreatedAt),
		UpdatedBy:            s.Audit.UpdatedBy,
		UpdatedAt:            formatTime(s.Audit.UpdatedAt),
	}
}

func fromVisitRecord(rec visitRecord) (entities.Visit, error) {
	status, err := entities.ParseVisitStatus(rec.Status)
	if err != nil {
		return entities.Visit{}, errors.Wrapf(err, "visit %s", rec.ID)
	}

	items := make([]entities.VisitServiceItem, 0, len(rec.ServiceItems))
	for _, ir := range rec.ServiceItems {
		it, err := fromServiceItemRecord(ir)
		if err != nil {
			return entities.Visit{}, errors.Wrapf(err, "visit %s item %s", rec.ID, ir.ID)
		}
		if it.FinalPriceNet().Cents() != ir.FinalPriceNet || it.FinalPriceGross().Cents() != ir.FinalPriceGross {
			log.WithFields(log.Fields{"visit_id": rec.ID, "item_id": ir.ID}).Warn("[visit][repository] stored final price differs from recalculated price")
		}
		items = append(items, it)
	}

	var times storedTimes
	v := entities.RestoreVisit(entities.VisitState{
		Details: entities.VisitDetails{
			ID:            rec.ID,
			StudioID:      rec.StudioID,
			VisitNumber:   rec.VisitNumber,
			CustomerID:    rec.CustomerID,
			VehicleID:     rec.VehicleID,
			AppointmentID: rec.AppointmentID,
			Vehicle: entities.VehicleSnapshot{
				Brand:        rec.Vehicle.Brand,
				Model:        rec.Vehicle.Model,
				LicensePlate: rec.Vehicle.LicensePlate,
				VIN:          rec.Vehicle.VIN,
				Year:         rec.Vehicle.Year,
				Color:        rec.Vehicle.Color,
				EngineType:   rec.Vehicle.EngineType,
			},
			ScheduledDate:           times.at("scheduled_date", rec.ScheduledDate),
			EstimatedCompletionDate: times.ptr("estimated_completion_date", rec.EstimatedCompletionDate),
			Arrival: entities.ArrivalDetails{
				Mileage:             rec.Arrival.Mileage,
				KeysHandedOver:      rec.Arrival.KeysHandedOver,
				DocumentsHandedOver: rec.Arrival.DocumentsHandedOver,
				InspectionNotes:     rec.Arrival.InspectionNotes,
				TechnicalNotes:      rec.Arrival.TechnicalNotes,
			},
		},
		Status:               status,
		ActualCompletionDate: times.ptr("actual_completion_date", rec.ActualCompletionDate),
		PickupDate:           times.ptr("pickup_date", rec.PickupDate),
		ServiceItems:         items,
		Audit: entities.AuditInfo{
			CreatedBy: rec.CreatedBy,
			CreatedAt: times.at("created_at", rec.CreatedAt),
			UpdatedBy: rec.UpdatedBy,
			UpdatedAt: times.at("updated_at", rec.UpdatedAt),
		},
	})
	if times.err != nil {
		return entities.Visit{}, errors.Wrapf(times.err, "visit %s", rec.ID)
	}
	return v, nil
}

func fromServiceItemRecord(ir serviceItemRecord) (entities.VisitServiceItem, error) {
	base, err := moneyFromCents(ir.BasePriceNet, "base_price_net")
	if err != nil {
		return entities.VisitServiceItem{}, err
	}
	vat, err := entities.ParseVatRate(ir.VatRate)
	if err != nil {
		return entities.VisitServiceItem{}, err
	}
	adjType, err := entities.ParseAdjustmentType(ir.AdjustmentType)
	if err != nil {
		return entities.VisitServiceItem{}, err
	}
	status, err := entities.ParseServiceItemStatus(ir.Status)
	if err != nil {
		return entities.VisitServiceItem{}, err
	}
	var times storedTimes
	createdAt := times.at("created_at", ir.CreatedAt)
	if times.err != nil {
		return entities.VisitServiceItem{}, times.err
	}
	return entities.NewVisitServiceItem(entities.NewServiceItemParams{
		ID:              ir.ID,
		ServiceID:       ir.ServiceID,
		ServiceName:     ir.ServiceName,
		BasePriceNet:    base,
		VatRate:         vat,
		AdjustmentType:  adjType,
		AdjustmentValue: ir.AdjustmentValue,
		Status:          status,
		CustomNote:      ir.CustomNote,
		CreatedAt:       createdAt,
	}), nil
}
