package validation

import (
	"workshop_visits/internal/domain/entities"
)

// Rules shared by the flows that open a visit from an appointment.

func appointmentExists(a entities.Appointment, requestedID string) error {
	if a.ID == "" {
		return &entities.NotFoundError{Entity: "appointment", ID: requestedID}
	}
	return nil
}

func appointmentNotCancelled(a entities.Appointment) error {
	if a.Status == entities.AppointmentCancelled {
		return &entities.ValidationError{Err: entities.ErrAppointmentCancelled, Details: a.ID}
	}
	return nil
}

func appointmentNotConverted(existing entities.Visit, appointmentID string) error {
	if existing.ID() != "" {
		return &entities.ValidationError{
			Err:     entities.ErrAppointmentConverted,
			Details: "appointment " + appointmentID + " already has visit " + existing.VisitNumber(),
		}
	}
	return nil
}

func appointmentHasServices(a entities.Appointment) error {
	if len(a.ServiceLines) == 0 {
		return &entities.ValidationError{Err: entities.ErrAppointmentNoServices, Details: a.ID}
	}
	return nil
}

func vehicleExists(v entities.Vehicle, requestedID string) error {
	if v.ID == "" {
		return &entities.NotFoundError{Entity: "vehicle", ID: requestedID}
	}
	return nil
}
