package repository

import (
	"context"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// Reference data owned by other services. Every table is keyed by id and
// carries a studio_id; a record of another studio reads as missing.

type catalogServiceRecord struct {
	ID           string `dynamodbav:"id"`
	StudioID     string `dynamodbav:"studio_id"`
	Name         string `dynamodbav:"name"`
	BasePriceNet int64  `dynamodbav:"base_price_net"`
	VatRate      string `dynamodbav:"vat_rate"`
	IsActive     bool   `dynamodbav:"is_active"`
}

type ServiceCatalogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceCatalog = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb DynamoAPI, tableName string) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceCatalogDynamoRepository) FindByID(ctx context.Context, studioID, serviceID string) (entities.CatalogService, error) {
	rec, found, err := getItem[catalogServiceRecord](ctx, r.ddb, r.tableName, serviceID)
	if err != nil || !found || rec.StudioID != studioID {
		return entities.CatalogService{}, err
	}
	base, err := moneyFromCents(rec.BasePriceNet, "base_price_net")
	if err != nil {
		return entities.CatalogService{}, errors.Wrapf(err, "service %s", rec.ID)
	}
	vat, err := entities.ParseVatRate(rec.VatRate)
	if err != nil {
		return entities.CatalogService{}, errors.Wrapf(err, "service %s", rec.ID)
	}
	return entities.CatalogService{
		ID:           rec.ID,
		StudioID:     rec.StudioID,
		Name:         rec.Name,
		BasePriceNet: base,
		VatRate:      vat,
		IsActive:     rec.IsActive,
	}, nil
}

type vehicleColorRecord struct {
	ID       string `dynamodbav:"id"`
	StudioID string `dynamodbav:"studio_id"`
	Name     string `dynamodbav:"name"`
}

type VehicleColorDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleColorCatalog = (*VehicleColorDynamoRepository)(nil)

func NewVehicleColorDynamoRepository(ddb DynamoAPI, tableName string) *VehicleColorDynamoRepository {
	return &VehicleColorDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleColorDynamoRepository) FindByID(ctx context.Context, studioID, colorID string) (entities.VehicleColor, error) {
	rec, found, err := getItem[vehicleColorRecord](ctx, r.ddb, r.tableName, colorID)
	if err != nil || !found || rec.StudioID != studioID {
		return entities.VehicleColor{}, err
	}
	return entities.VehicleColor{ID: rec.ID, StudioID: rec.StudioID, Name: rec.Name}, nil
}

type vehicleRecord struct {
	ID           string `dynamodbav:"id"`
	StudioID     string `dynamodbav:"studio_id"`
	Brand        string `dynamodbav:"brand"`
	Model        string `dynamodbav:"model"`
	LicensePlate string `dynamodbav:"license_plate"`
	VIN          string `dynamodbav:"vin,omitempty"`
	Year         *int   `dynamodbav:"year,omitempty"`
	Color        string `dynamodbav:"color,omitempty"`
	EngineType   string `dynamodbav:"engine_type,omitempty"`
}

type VehicleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI, tableName string) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleDynamoRepository) FindByID(ctx context.Context, studioID, vehicleID string) (entities.Vehicle, error) {
	rec, found, err := getItem[vehicleRecord](ctx, r.ddb, r.tableName, vehicleID)
	if err != nil || !found || rec.StudioID != studioID {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{
		ID:           rec.ID,
		StudioID:     rec.StudioID,
		Brand:        rec.Brand,
		Model:        rec.Model,
		LicensePlate: rec.LicensePlate,
		VIN:          rec.VIN,
		Year:         rec.Year,
		Color:        rec.Color,
		EngineType:   rec.EngineType,
	}, nil
}
