package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNegativeMoney           = errors.New("money amount cannot be negative")
	ErrValidation              = errors.New("validation failed")
	ErrNotFound                = errors.New("not found")
	ErrIllegalStateTransition  = errors.New("illegal visit status transition")
	ErrServicesPendingApproval = errors.New("visit has services pending customer approval")

	ErrInvalidVatRate        = fmt.Errorf("%w: invalid vat rate", ErrValidation)
	ErrInvalidAdjustment     = fmt.Errorf("%w: invalid price adjustment", ErrValidation)
	ErrInvalidVisitStatus    = fmt.Errorf("%w: invalid visit status", ErrValidation)
	ErrInvalidServiceStatus  = fmt.Errorf("%w: invalid service item status", ErrValidation)
	ErrInvalidCustomerIdent  = fmt.Errorf("%w: invalid customer identity", ErrValidation)
	ErrServiceInactive       = fmt.Errorf("%w: service is not active", ErrValidation)
	ErrAppointmentCancelled  = fmt.Errorf("%w: appointment is cancelled", ErrValidation)
	ErrAppointmentConverted  = fmt.Errorf("%w: appointment already converted to a visit", ErrValidation)
	ErrAppointmentNoServices = fmt.Errorf("%w: appointment has no services", ErrValidation)
	ErrInvalidColor          = fmt.Errorf("%w: vehicle color is not valid", ErrValidation)
	ErrInvalidMileage        = fmt.Errorf("%w: mileage cannot be negative", ErrValidation)
	ErrAmountOutOfRange      = fmt.Errorf("%w: amount is out of range", ErrValidation)
)

// ValidationError carries a human readable reason next to the sentinel it wraps.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a referenced entity missing within the studio.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// StateTransitionError names the rejected transition and what would have been legal.
type StateTransitionError struct {
	From    VisitStatus
	To      VisitStatus
	Allowed []VisitStatus
}

func (e *StateTransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, string(s))
	}
	return fmt.Sprintf("cannot change visit status from %s to %s (allowed: [%s])", e.From, e.To, strings.Join(allowed, ", "))
}

func (e *StateTransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}

// PendingServicesError blocks READY_FOR_PICKUP while items await approval.
type PendingServicesError struct {
	Count int
}

func (e *PendingServicesError) Error() string {
	return fmt.Sprintf("cannot mark visit as ready for pickup: %d service(s) still pending approval", e.Count)
}

func (e *PendingServicesError) Unwrap() error {
	return ErrServicesPendingApproval
}
