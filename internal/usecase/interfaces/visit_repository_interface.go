package interfaces

import (
	"context"
	"time"

	"workshop_visits/internal/domain/entities"
)

// IVisitRepository abstracts DynamoDB persistence for the Visit aggregate.
//
// The visit service must be able to:
//   - load a visit inside its studio (a visit of another studio is "not found")
//   - find the visit opened from an appointment (1 visit per appointment)
//   - save the whole aggregate, service items included, in a single write
//   - save a visit together with the customer check-in created or changed
//   - hand out human-readable visit numbers

type IVisitRepository interface {
	FindByID(ctx context.Context, visitID, studioID string) (entities.Visit, error)
	FindByAppointmentID(ctx context.Context, studioID, appointmentID string) (entities.Visit, error)
	Save(ctx context.Context, v entities.Visit) (entities.Visit, error)
	// SaveWithCustomer writes the visit and the customer atomically. isNew
	// makes the customer write fail if the id is taken; otherwise it must exist.
	SaveWithCustomer(ctx context.Context, v entities.Visit, c entities.Customer, isNew bool) (entities.Visit, error)
	NextVisitNumber(ctx context.Context, studioID string, at time.Time) (string, error)
}
