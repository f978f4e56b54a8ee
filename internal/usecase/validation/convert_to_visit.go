package validation

import (
	"context"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/command"
	"workshop_visits/internal/usecase/interfaces"

	"github.com/pkg/errors"
)

// ConvertToVisitContext holds the appointment being converted and the
// records it points at.
type ConvertToVisitContext struct {
	cmd           command.ConvertToVisit
	appointment   entities.Appointment
	existingVisit entities.Visit
	vehicle       entities.Vehicle
	customer      entities.Customer
}

func (c ConvertToVisitContext) Command() command.ConvertToVisit   { return c.cmd }
func (c ConvertToVisitContext) Appointment() entities.Appointment { return c.appointment }
func (c ConvertToVisitContext) ExistingVisit() entities.Visit     { return c.existingVisit }
func (c ConvertToVisitContext) Vehicle() entities.Vehicle         { return c.vehicle }
func (c ConvertToVisitContext) Customer() entities.Customer       { return c.customer }

type ConvertToVisitContextBuilder struct {
	appointments interfaces.IAppointmentRepository
	visits       interfaces.IVisitRepository
	vehicles     interfaces.IVehicleRepository
	customers    interfaces.ICustomerRepository
}

func NewConvertToVisitContextBuilder(
	appointments interfaces.IAppointmentRepository,
	visits interfaces.IVisitRepository,
	vehicles interfaces.IVehicleRepository,
	customers interfaces.ICustomerRepository,
) *ConvertToVisitContextBuilder {
	return &ConvertToVisitContextBuilder{appointments: appointments, visits: visits, vehicles: vehicles, customers: customers}
}

// Build reads in two joined rounds: the appointment and any visit already
// opened from it, then the vehicle and customer the appointment names.
func (b *ConvertToVisitContextBuilder) Build(ctx context.Context, cmd command.ConvertToVisit) (ConvertToVisitContext, error) {
	var (
		appointment entities.Appointment
		existing    entities.Visit
		vehicle     entities.Vehicle
		customer    entities.Customer
	)

	err := fanOut(ctx,
		func(ctx context.Context) error {
			a, err := b.appointments.FindByID(ctx, cmd.StudioID, cmd.AppointmentID)
			if err != nil {
				return errors.Wrapf(err, "load appointment %s", cmd.AppointmentID)
			}
			appointment = a
			return nil
		},
		func(ctx context.Context) error {
			v, err := b.visits.FindByAppointmentID(ctx, cmd.StudioID, cmd.AppointmentID)
			if err != nil {
				return errors.Wrapf(err, "find visit for appointment %s", cmd.AppointmentID)
			}
			existing = v
			return nil
		},
	)
	if err != nil {
		return ConvertToVisitContext{}, err
	}

	if appointment.ID != "" {
		err = fanOut(ctx,
			func(ctx context.Context) error {
				v, err := b.vehicles.FindByID(ctx, cmd.StudioID, appointment.VehicleID)
				if err != nil {
					return errors.Wrapf(err, "load vehicle %s", appointment.VehicleID)
				}
				vehicle = v
				return nil
			},
			func(ctx context.Context) error {
				c, err := b.customers.FindByID(ctx, cmd.StudioID, appointment.CustomerID)
				if err != nil {
					return errors.Wrapf(err, "load customer %s", appointment.CustomerID)
				}
				customer = c
				return nil
			},
		)
		if err != nil {
			return ConvertToVisitContext{}, err
		}
	}

	return ConvertToVisitContext{
		cmd:           cmd,
		appointment:   appointment,
		existingVisit: existing,
		vehicle:       vehicle,
		customer:      customer,
	}, nil
}

var ConvertToVisitValidators = []Validator[ConvertToVisitContext]{
	func(c ConvertToVisitContext) error { return appointmentExists(c.appointment, c.cmd.AppointmentID) },
	func(c ConvertToVisitContext) error { return appointmentNotCancelled(c.appointment) },
	func(c ConvertToVisitContext) error { return appointmentNotConverted(c.existingVisit, c.cmd.AppointmentID) },
	func(c ConvertToVisitContext) error { return appointmentHasServices(c.appointment) },
	func(c ConvertToVisitContext) error { return vehicleExists(c.vehicle, c.appointment.VehicleID) },
	func(c ConvertToVisitContext) error {
		if c.customer.ID == "" {
			return &entities.NotFoundError{Entity: "customer", ID: c.appointment.CustomerID}
		}
		return nil
	},
}
