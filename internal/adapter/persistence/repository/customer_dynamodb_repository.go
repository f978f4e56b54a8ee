package repository

import (
	"context"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/interfaces"
)

type customerRecord struct {
	ID        string `dynamodbav:"id"`
	StudioID  string `dynamodbav:"studio_id"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
}

// CustomerDynamoRepository reads customers owned by the customer service.
// Check-in writes them through VisitDynamoRepository.SaveWithCustomer.
type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) FindByID(ctx context.Context, studioID, customerID string) (entities.Customer, error) {
	rec, found, err := getItem[customerRecord](ctx, r.ddb, r.tableName, customerID)
	if err != nil || !found || rec.StudioID != studioID {
		return entities.Customer{}, err
	}
	return fromCustomerRecord(rec), nil
}

func toCustomerRecord(c entities.Customer) customerRecord {
	return customerRecord{
		ID:        c.ID,
		StudioID:  c.StudioID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

func fromCustomerRecord(rec customerRecord) entities.Customer {
	return entities.Customer{
		ID:        rec.ID,
		StudioID:  rec.StudioID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Phone:     rec.Phone,
		Email:     rec.Email,
	}
}
