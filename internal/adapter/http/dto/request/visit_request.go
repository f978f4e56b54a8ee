package request

import (
	"errors"
	"strings"
	"time"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/command"
)

var (
	ErrUnknownCustomerMode = errors.New("customer.mode must be existing, new or update")
)

// ConvertToVisitRequest opens a visit straight from an appointment.
type ConvertToVisitRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
}

func (r ConvertToVisitRequest) ToCommand(studioID, actorID string) command.ConvertToVisit {
	return command.ConvertToVisit{
		StudioID:      studioID,
		AppointmentID: strings.TrimSpace(r.AppointmentID),
		ActorID:       actorID,
	}
}

// CustomerRequest picks one customer identity variant through Mode.
// For mode "update" only the fields present in the payload change.
type CustomerRequest struct {
	Mode      string  `json:"mode" binding:"required"`
	ID        string  `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

func (r CustomerRequest) ToIdentity() (entities.CustomerIdentity, error) {
	switch strings.ToLower(strings.TrimSpace(r.Mode)) {
	case "existing":
		return entities.ExistingCustomer{ID: r.ID}, nil
	case "new":
		return entities.NewCustomer{
			FirstName: deref(r.FirstName),
			LastName:  deref(r.LastName),
			Phone:     deref(r.Phone),
			Email:     deref(r.Email),
		}, nil
	case "update":
		return entities.UpdateCustomer{
			ID:        r.ID,
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Phone:     r.Phone,
			Email:     r.Email,
		}, nil
	}
	return nil, ErrUnknownCustomerMode
}

type ArrivalRequest struct {
	Mileage             *int64 `json:"mileage"`
	KeysHandedOver      bool   `json:"keys_handed_over"`
	DocumentsHandedOver bool   `json:"documents_handed_over"`
	InspectionNotes     string `json:"inspection_notes"`
	TechnicalNotes      string `json:"technical_notes"`
}

// CheckInRequest is the payload of the check-in flow.
type CheckInRequest struct {
	ReservationID           string          `json:"reservation_id" binding:"required"`
	Customer                CustomerRequest `json:"customer" binding:"required"`
	ColorID                 string          `json:"color_id"`
	Arrival                 ArrivalRequest  `json:"arrival"`
	EstimatedCompletionDate *time.Time      `json:"estimated_completion_date"`
}

func (r CheckInRequest) ToCommand(studioID, actorID string) (command.CreateVisitFromReservation, error) {
	identity, err := r.Customer.ToIdentity()
	if err != nil {
		return command.CreateVisitFromReservation{}, err
	}
	return command.CreateVisitFromReservation{
		StudioID:      studioID,
		ReservationID: strings.TrimSpace(r.ReservationID),
		ActorID:       actorID,
		Customer:      identity,
		ColorID:       strings.TrimSpace(r.ColorID),
		Arrival: entities.ArrivalDetails{
			Mileage:             r.Arrival.Mileage,
			KeysHandedOver:      r.Arrival.KeysHandedOver,
			DocumentsHandedOver: r.Arrival.DocumentsHandedOver,
			InspectionNotes:     strings.TrimSpace(r.Arrival.InspectionNotes),
			TechnicalNotes:      strings.TrimSpace(r.Arrival.TechnicalNotes),
		},
		EstimatedCompletionDate: r.EstimatedCompletionDate,
	}, nil
}

// ServiceLineRequest adds a catalog service. adjustment_type defaults to PERCENT.
type ServiceLineRequest struct {
	ServiceID       string `json:"service_id" binding:"required"`
	AdjustmentType  string `json:"adjustment_type"`
	AdjustmentValue int64  `json:"adjustment_value"`
	CustomNote      string `json:"custom_note"`
}

func (r ServiceLineRequest) ToLine() (command.ServiceLine, error) {
	t, err := entities.ParseAdjustmentType(r.AdjustmentType)
	if err != nil {
		return command.ServiceLine{}, err
	}
	return command.ServiceLine{
		ServiceID:       strings.TrimSpace(r.ServiceID),
		AdjustmentType:  t,
		AdjustmentValue: r.AdjustmentValue,
		CustomNote:      strings.TrimSpace(r.CustomNote),
	}, nil
}

func (r ServiceLineRequest) ToCommand(studioID, visitID, actorID string) (command.AddService, error) {
	line, err := r.ToLine()
	if err != nil {
		return command.AddService{}, err
	}
	return command.AddService{StudioID: studioID, VisitID: visitID, ActorID: actorID, Service: line}, nil
}

type ServiceLineUpdateRequest struct {
	ItemID          string  `json:"item_id" binding:"required"`
	BasePriceNet    *int64  `json:"base_price_net"`
	AdjustmentType  *string `json:"adjustment_type"`
	AdjustmentValue *int64  `json:"adjustment_value"`
	CustomNote      *string `json:"custom_note"`
}

func (r ServiceLineUpdateRequest) ToUpdate() (command.ServiceLineUpdate, error) {
	u := command.ServiceLineUpdate{
		ItemID:          strings.TrimSpace(r.ItemID),
		BasePriceNet:    r.BasePriceNet,
		AdjustmentValue: r.AdjustmentValue,
		CustomNote:      r.CustomNote,
	}
	if r.AdjustmentType != nil {
		t, err := entities.ParseAdjustmentType(*r.AdjustmentType)
		if err != nil {
			return command.ServiceLineUpdate{}, err
		}
		u.AdjustmentType = &t
	}
	return u, nil
}

// SaveServicesChangesRequest applies a batch of line edits in one write.
type SaveServicesChangesRequest struct {
	Added      []ServiceLineRequest       `json:"added" binding:"dive"`
	Updated    []ServiceLineUpdateRequest `json:"updated" binding:"dive"`
	DeletedIDs []string                   `json:"deleted_ids"`
}

func (r SaveServicesChangesRequest) ToCommand(studioID, visitID, actorID string) (command.SaveServicesChanges, error) {
	cmd := command.SaveServicesChanges{
		StudioID:   studioID,
		VisitID:    visitID,
		ActorID:    actorID,
		Added:      make([]command.ServiceLine, 0, len(r.Added)),
		Updated:    make([]command.ServiceLineUpdate, 0, len(r.Updated)),
		DeletedIDs: r.DeletedIDs,
	}
	for _, a := range r.Added {
		line, err := a.ToLine()
		if err != nil {
			return command.SaveServicesChanges{}, err
		}
		cmd.Added = append(cmd.Added, line)
	}
	for _, u := range r.Updated {
		upd, err := u.ToUpdate()
		if err != nil {
			return command.SaveServicesChanges{}, err
		}
		cmd.Updated = append(cmd.Updated, upd)
	}
	return cmd, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
