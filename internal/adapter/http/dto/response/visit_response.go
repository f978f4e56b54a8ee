package response

import (
	"time"

	"workshop_visits/internal/domain/entities"
)

type ServiceItemResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	BasePriceNet    int64  `json:"base_price_net"`
	VatRate         string `json:"vat_rate"`
	AdjustmentType  string `json:"adjustment_type"`
	AdjustmentValue int64  `json:"adjustment_value"`
	FinalPriceNet   int64  `json:"final_price_net"`
	FinalPriceGross int64  `json:"final_price_gross"`
	FinalPriceVat   int64  `json:"final_price_vat"`
	Status          string `json:"status"`
	CustomNote      string `json:"custom_note,omitempty"`
}

type TotalsResponse struct {
	Net   int64 `json:"net"`
	Gross int64 `json:"gross"`
	Vat   int64 `json:"vat"`
}

// VisitResponse renders money as integer cents.
type VisitResponse struct {
	ID                      string                   `json:"id"`
	StudioID                string                   `json:"studio_id"`
	VisitNumber             string                   `json:"visit_number"`
	CustomerID              string                   `json:"customer_id"`
	VehicleID               string                   `json:"vehicle_id"`
	AppointmentID           string                   `json:"appointment_id,omitempty"`
	Vehicle                 entities.VehicleSnapshot `json:"vehicle"`
	Arrival                 entities.ArrivalDetails  `json:"arrival"`
	Status                  string                   `json:"status"`
	ScheduledDate           time.Time                `json:"scheduled_date"`
	EstimatedCompletionDate *time.Time               `json:"estimated_completion_date,omitempty"`
	ActualCompletionDate    *time.Time               `json:"actual_completion_date,omitempty"`
	PickupDate              *time.Time               `json:"pickup_date,omitempty"`
	ServiceItems            []ServiceItemResponse    `json:"service_items"`
	PendingServices         int                      `json:"pending_services"`
	CanBeMarkedAsReady      bool                     `json:"can_be_marked_as_ready"`
	Totals                  TotalsResponse           `json:"totals"`
	Audit                   entities.AuditInfo       `json:"audit"`
}

func FromVisit(v entities.Visit) VisitResponse {
	d := v.Details()
	items := v.ServiceItems()
	out := make([]ServiceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ServiceItemResponse{
			ID:              it.ID(),
			ServiceID:       it.ServiceID(),
			ServiceName:     it.ServiceName(),
			BasePriceNet:    it.BasePriceNet().Cents(),
			VatRate:         it.VatRate().String(),
			AdjustmentType:  string(it.AdjustmentType()),
			AdjustmentValue: it.AdjustmentValue(),
			FinalPriceNet:   it.FinalPriceNet().Cents(),
			FinalPriceGross: it.FinalPriceGross().Cents(),
			FinalPriceVat:   it.FinalPriceVat().Cents(),
			Status:          string(it.Status()),
			CustomNote:      it.CustomNote(),
		})
	}

	return VisitResponse{
		ID:                      d.ID,
		StudioID:                d.StudioID,
		VisitNumber:             d.VisitNumber,
		CustomerID:              d.CustomerID,
		VehicleID:               d.VehicleID,
		AppointmentID:           d.AppointmentID,
		Vehicle:                 d.Vehicle,
		Arrival:                 d.Arrival,
		Status:                  string(v.Status()),
		ScheduledDate:           d.ScheduledDate,
		EstimatedCompletionDate: d.EstimatedCompletionDate,
		ActualCompletionDate:    v.ActualCompletionDate(),
		PickupDate:              v.PickupDate(),
		ServiceItems:            out,
		PendingServices:         v.PendingServicesCount(),
		CanBeMarkedAsReady:      v.CanBeMarkedAsReady(),
		Totals: TotalsResponse{
			Net:   v.CalculateTotalNet().Cents(),
			Gross: v.CalculateTotalGross().Cents(),
			Vat:   v.CalculateTotalVat().Cents(),
		},
		Audit: v.Audit(),
	}
}
