package repository

import (
	"context"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

type appointmentLineRecord struct {
	ServiceID       string `dynamodbav:"service_id"`
	ServiceName     string `dynamodbav:"service_name"`
	BasePriceNet    int64  `dynamodbav:"base_price_net"`
	VatRate         string `dynamodbav:"vat_rate"`
	AdjustmentType  string `dynamodbav:"adjustment_type,omitempty"`
	AdjustmentValue int64  `dynamodbav:"adjustment_value"`
	CustomNote      string `dynamodbav:"custom_note,omitempty"`
}

type appointmentRecord struct {
	ID                      string                  `dynamodbav:"id"`
	StudioID                string                  `dynamodbav:"studio_id"`
	CustomerID              string                  `dynamodbav:"customer_id"`
	VehicleID               string                  `dynamodbav:"vehicle_id"`
	ScheduledDate           string                  `dynamodbav:"scheduled_date"`
	EstimatedCompletionDate string                  `dynamodbav:"estimated_completion_date,omitempty"`
	Status                  string                  `dynamodbav:"status"`
	ServiceLines            []appointmentLineRecord `dynamodbav:"service_lines"`
}

// AppointmentDynamoRepository reads appointments (reservations) booked by the
// scheduling service.
type AppointmentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI, tableName string) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AppointmentDynamoRepository) FindByID(ctx context.Context, studioID, appointmentID string) (entities.Appointment, error) {
	rec, found, err := getItem[appointmentRecord](ctx, r.ddb, r.tableName, appointmentID)
	if err != nil || !found || rec.StudioID != studioID {
		return entities.Appointment{}, err
	}

	lines := make([]entities.AppointmentServiceLine, 0, len(rec.ServiceLines))
	for _, lr := range rec.ServiceLines {
		base, err := moneyFromCents(lr.BasePriceNet, "base_price_net")
		if err != nil {
			return entities.Appointment{}, errors.Wrapf(err, "appointment %s", rec.ID)
		}
		vat, err := entities.ParseVatRate(lr.VatRate)
		if err != nil {
			return entities.Appointment{}, errors.Wrapf(err, "appointment %s", rec.ID)
		}
		adjType, err := entities.ParseAdjustmentType(lr.AdjustmentType)
		if err != nil {
			return entities.Appointment{}, errors.Wrapf(err, "appointment %s", rec.ID)
		}
		lines = append(lines, entities.AppointmentServiceLine{
			ServiceID:       lr.ServiceID,
			ServiceName:     lr.ServiceName,
			BasePriceNet:    base,
			VatRate:         vat,
			AdjustmentType:  adjType,
			AdjustmentValue: lr.AdjustmentValue,
			CustomNote:      lr.CustomNote,
		})
	}

	var times storedTimes
	apt := entities.Appointment{
		ID:                      rec.ID,
		StudioID:                rec.StudioID,
		CustomerID:              rec.CustomerID,
		VehicleID:               rec.VehicleID,
		ScheduledDate:           times.at("scheduled_date", rec.ScheduledDate),
		EstimatedCompletionDate: times.ptr("estimated_completion_date", rec.EstimatedCompletionDate),
		Status:                  entities.AppointmentStatus(rec.Status),
		ServiceLines:            lines,
	}
	if times.err != nil {
		return entities.Appointment{}, errors.Wrapf(times.err, "appointment %s", rec.ID)
	}
	return apt, nil
}
