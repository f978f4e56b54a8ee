package validation

import (
	"context"
	"strings"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/command"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// CreateVisitFromReservationContext holds the facts the check-in rules need.
type CreateVisitFromReservationContext struct {
	cmd           command.CreateVisitFromReservation
	reservation   entities.Appointment
	existingVisit entities.Visit
	vehicle       entities.Vehicle
	customer      entities.Customer
	color         entities.VehicleColor
}

func (c CreateVisitFromReservationContext) Command() command.CreateVisitFromReservation {
	return c.cmd
}
func (c CreateVisitFromReservationContext) Reservation() entities.Appointment { return c.reservation }
func (c CreateVisitFromReservationContext) Vehicle() entities.Vehicle         { return c.vehicle }

// Customer is the stored customer the identity refers to; empty for a new customer.
func (c CreateVisitFromReservationContext) Customer() entities.Customer  { return c.customer }
func (c CreateVisitFromReservationContext) Color() entities.VehicleColor { return c.color }

type CreateVisitFromReservationContextBuilder struct {
	appointments interfaces.IAppointmentRepository
	visits       interfaces.IVisitRepository
	vehicles     interfaces.IVehicleRepository
	customers    interfaces.ICustomerRepository
	colors       interfaces.IVehicleColorCatalog
}

func NewCreateVisitFromReservationContextBuilder(
	appointments interfaces.IAppointmentRepository,
	visits interfaces.IVisitRepository,
	vehicles interfaces.IVehicleRepository,
	customers interfaces.ICustomerRepository,
	colors interfaces.IVehicleColorCatalog,
) *CreateVisitFromReservationContextBuilder {
	return &CreateVisitFromReservationContextBuilder{
		appointments: appointments,
		visits:       visits,
		vehicles:     vehicles,
		customers:    customers,
		colors:       colors,
	}
}

// Build reads the reservation, any visit already opened from it, the
// referenced customer and the chosen color at once; the vehicle follows in a
// second round because only the reservation knows it.
func (b *CreateVisitFromReservationContextBuilder) Build(ctx context.Context, cmd command.CreateVisitFromReservation) (CreateVisitFromReservationContext, error) {
	out := CreateVisitFromReservationContext{cmd: cmd}

	reads := []func(context.Context) error{
		func(ctx context.Context) error {
			a, err := b.appointments.FindByID(ctx, cmd.StudioID, cmd.ReservationID)
			if err != nil {
				return errors.Wrapf(err, "load reservation %s", cmd.ReservationID)
			}
			out.reservation = a
			return nil
		},
		func(ctx context.Context) error {
			v, err := b.visits.FindByAppointmentID(ctx, cmd.StudioID, cmd.ReservationID)
			if err != nil {
				return errors.Wrapf(err, "find visit for reservation %s", cmd.ReservationID)
			}
			out.existingVisit = v
			return nil
		},
	}
	if customerID := entities.ReferencedCustomerID(cmd.Customer); customerID != "" {
		reads = append(reads, func(ctx context.Context) error {
			c, err := b.customers.FindByID(ctx, cmd.StudioID, customerID)
			if err != nil {
				return errors.Wrapf(err, "load customer %s", customerID)
			}
			out.customer = c
			return nil
		})
	}
	if colorID := strings.TrimSpace(cmd.ColorID); colorID != "" {
		reads = append(reads, func(ctx context.Context) error {
			c, err := b.colors.FindByID(ctx, cmd.StudioID, colorID)
			if err != nil {
				return errors.Wrapf(err, "load color %s", colorID)
			}
			out.color = c
			return nil
		})
	}

	if err := fanOut(ctx, reads...); err != nil {
		return CreateVisitFromReservationContext{}, err
	}

	if out.reservation.ID != "" {
		err := fanOut(ctx, func(ctx context.Context) error {
			v, err := b.vehicles.FindByID(ctx, cmd.StudioID, out.reservation.VehicleID)
			if err != nil {
				return errors.Wrapf(err, "load vehicle %s", out.reservation.VehicleID)
			}
			out.vehicle = v
			return nil
		})
		if err != nil {
			return CreateVisitFromReservationContext{}, err
		}
	}

	return out, nil
}

var CreateVisitFromReservationValidators = []Validator[CreateVisitFromReservationContext]{
	func(c CreateVisitFromReservationContext) error {
		return appointmentExists(c.reservation, c.cmd.ReservationID)
	},
	func(c CreateVisitFromReservationContext) error { return appointmentNotCancelled(c.reservation) },
	func(c CreateVisitFromReservationContext) error {
		return appointmentNotConverted(c.existingVisit, c.cmd.ReservationID)
	},
	func(c CreateVisitFromReservationContext) error {
		return vehicleExists(c.vehicle, c.reservation.VehicleID)
	},
	customerIdentityValid,
	colorValid,
	arrivalValid,
}

func customerIdentityValid(c CreateVisitFromReservationContext) error {
	switch id := c.cmd.Customer.(type) {
	case entities.ExistingCustomer:
		if c.customer.ID == "" {
			return &entities.NotFoundError{Entity: "customer", ID: id.ID}
		}
	case entities.UpdateCustomer:
		if c.customer.ID == "" {
			return &entities.NotFoundError{Entity: "customer", ID: id.ID}
		}
		if updated := id.Apply(c.customer); strings.TrimSpace(updated.Phone) == "" && strings.TrimSpace(updated.Email) == "" {
			return &entities.ValidationError{Err: entities.ErrInvalidCustomerIdent, Details: "phone or email is required"}
		}
	case entities.NewCustomer:
		return id.Validate()
	default:
		return entities.UnknownIdentityError(c.cmd.Customer)
	}
	return nil
}

func colorValid(c CreateVisitFromReservationContext) error {
	colorID := strings.TrimSpace(c.cmd.ColorID)
	if colorID != "" && c.color.ID == "" {
		return &entities.ValidationError{Err: entities.ErrInvalidColor, Details: colorID}
	}
	return nil
}

func arrivalValid(c CreateVisitFromReservationContext) error {
	if m := c.cmd.Arrival.Mileage; m != nil && *m < 0 {
		return &entities.ValidationError{Err: entities.ErrInvalidMileage}
	}
	return nil
}
