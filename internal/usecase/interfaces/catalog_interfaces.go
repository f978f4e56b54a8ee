package interfaces

import (
	"context"

	"workshop_visits/internal/domain/entities"
)

// Read models owned by other parts of the workshop system. All lookups are
// scoped to a studio and return a zero value (empty ID) when nothing matches.

type IServiceCatalog interface {
	FindByID(ctx context.Context, studioID, serviceID string) (entities.CatalogService, error)
}

type IAppointmentRepository interface {
	FindByID(ctx context.Context, studioID, appointmentID string) (entities.Appointment, error)
}

type IVehicleRepository interface {
	FindByID(ctx context.Context, studioID, vehicleID string) (entities.Vehicle, error)
}

type IVehicleColorCatalog interface {
	FindByID(ctx context.Context, studioID, colorID string) (entities.VehicleColor, error)
}

// Customer writes made by check-in go through IVisitRepository.SaveWithCustomer.
type ICustomerRepository interface {
	FindByID(ctx context.Context, studioID, customerID string) (entities.Customer, error)
}
