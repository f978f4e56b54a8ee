package entities

import "time"

// CatalogService is a priced service offered by a studio. Visits copy its
// price at the moment a line is created and never look back.
type CatalogService struct {
	ID           string
	StudioID     string
	Name         string
	BasePriceNet Money
	VatRate      VatRate
	IsActive     bool
}

type AppointmentStatus string

const (
	AppointmentCreated   AppointmentStatus = "CREATED"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
)

// AppointmentServiceLine is a service already priced when the appointment was booked.
type AppointmentServiceLine struct {
	ServiceID       string
	ServiceName     string
	BasePriceNet    Money
	VatRate         VatRate
	AdjustmentType  AdjustmentType
	AdjustmentValue int64
	CustomNote      string
}

// Appointment is the reservation a visit is opened from.
type Appointment struct {
	ID                      string
	StudioID                string
	CustomerID              string
	VehicleID               string
	ScheduledDate           time.Time
	EstimatedCompletionDate *time.Time
	Status                  AppointmentStatus
	ServiceLines            []AppointmentServiceLine
}

type Vehicle struct {
	ID           string
	StudioID     string
	Brand        string
	Model        string
	LicensePlate string
	VIN          string
	Year         *int
	Color        string
	EngineType   string
}

type Customer struct {
	ID        string
	StudioID  string
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

type VehicleColor struct {
	ID       string
	StudioID string
	Name     string
}
