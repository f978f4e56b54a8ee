// Package command holds the inputs of the visit use cases. They are plain
// data: parsing happens in the HTTP layer, judging in the validation package.
package command

import (
	"time"

	"workshop_visits/internal/domain/entities"
)

// ServiceLine asks for a catalog service to be added to a visit.
type ServiceLine struct {
	ServiceID       string
	AdjustmentType  entities.AdjustmentType
	AdjustmentValue int64
	CustomNote      string
}

// ServiceLineUpdate changes an existing line. Nil fields keep their value;
// a new base price is re-priced with the line's current adjustment.
type ServiceLineUpdate struct {
	ItemID          string
	BasePriceNet    *int64
	AdjustmentType  *entities.AdjustmentType
	AdjustmentValue *int64
	CustomNote      *string
}

type AddService struct {
	StudioID string
	VisitID  string
	ActorID  string
	Service  ServiceLine
}

type SaveServicesChanges struct {
	StudioID   string
	VisitID    string
	ActorID    string
	Added      []ServiceLine
	Updated    []ServiceLineUpdate
	DeletedIDs []string
}

// ReferencedServiceIDs lists the distinct catalog services a batch needs.
func (c SaveServicesChanges) ReferencedServiceIDs() []string {
	seen := make(map[string]struct{}, len(c.Added))
	ids := make([]string, 0, len(c.Added))
	for _, a := range c.Added {
		if a.ServiceID == "" {
			continue
		}
		if _, ok := seen[a.ServiceID]; ok {
			continue
		}
		seen[a.ServiceID] = struct{}{}
		ids = append(ids, a.ServiceID)
	}
	return ids
}

// ConvertToVisit opens a visit straight from an appointment, keeping the
// appointment's prices as CONFIRMED lines.
type ConvertToVisit struct {
	StudioID      string
	AppointmentID string
	ActorID       string
}

// CreateVisitFromReservation is the check-in flow: the customer is present,
// the vehicle is inspected and the reserved services are approved on the spot.
type CreateVisitFromReservation struct {
	StudioID                string
	ReservationID           string
	ActorID                 string
	Customer                entities.CustomerIdentity
	ColorID                 string
	Arrival                 entities.ArrivalDetails
	EstimatedCompletionDate *time.Time
}

// VisitAction targets a visit lifecycle method.
type VisitAction struct {
	StudioID string
	VisitID  string
	ActorID  string
}

// ServiceDecision approves or rejects a single line.
type ServiceDecision struct {
	StudioID string
	VisitID  string
	ItemID   string
	ActorID  string
}
