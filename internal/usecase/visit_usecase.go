package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"workshop_visits/internal/domain/entities"
	"workshop_visits/internal/usecase/command"
	"workshop_visits/internal/usecase/interfaces"
	"workshop_visits/internal/usecase/validation"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidStudioID      = errors.New("invalid studio id")
	ErrInvalidVisitID       = errors.New("invalid visit id")
	ErrInvalidAppointmentID = errors.New("invalid appointment id")
	ErrInvalidItemID        = errors.New("invalid service item id")
	ErrMissingCustomer      = errors.New("customer identity is required")
)

// IVisitUseCase exposes the visit lifecycle.
//
// Every mutating operation loads the aggregate, lets it decide, and saves the
// whole result in one write. Nothing is saved when a rule fails.
type IVisitUseCase interface {
	ConvertToVisit(ctx context.Context, cmd command.ConvertToVisit) (entities.Visit, error)
	CreateVisitFromReservation(ctx context.Context, cmd command.CreateVisitFromReservation) (entities.Visit, error)
	AddService(ctx context.Context, cmd command.AddService) (entities.Visit, error)
	SaveServicesChanges(ctx context.Context, cmd command.SaveServicesChanges) (entities.Visit, error)
	ApproveService(ctx context.Context, cmd command.ServiceDecision) (entities.Visit, error)
	RejectService(ctx context.Context, cmd command.ServiceDecision) (entities.Visit, error)
	MarkAsReadyForPickup(ctx context.Context, cmd command.VisitAction) (entities.Visit, error)
	Complete(ctx context.Context, cmd command.VisitAction) (entities.Visit, error)
	Reject(ctx context.Context, cmd command.VisitAction) (entities.Visit, error)
	Archive(ctx context.Context, cmd command.VisitAction) (entities.Visit, error)
	ReturnToInProgress(ctx context.Context, cmd command.VisitAction) (entities.Visit, error)
	GetByID(ctx context.Context, studioID, visitID string) (entities.Visit, error)
}

// VisitUseCaseDeps lists the collaborators of VisitUseCase.
type VisitUseCaseDeps struct {
	Visits       interfaces.IVisitRepository
	Catalog      interfaces.IServiceCatalog
	Appointments interfaces.IAppointmentRepository
	Vehicles     interfaces.IVehicleRepository
	Customers    interfaces.ICustomerRepository
	Colors       interfaces.IVehicleColorCatalog
	IDs          interfaces.IIDGenerator
	Clock        interfaces.IClock
}

type VisitUseCase struct {
	visits interfaces.IVisitRepository
	ids    interfaces.IIDGenerator
	clock  interfaces.IClock

	addService *validation.AddServiceContextBuilder
	convert    *validation.ConvertToVisitContextBuilder
	checkIn    *validation.CreateVisitFromReservationContextBuilder
}

var _ IVisitUseCase = (*VisitUseCase)(nil)

func NewVisitUseCase(d VisitUseCaseDeps) *VisitUseCase {
	return &VisitUseCase{
		visits:     d.Visits,
		ids:        d.IDs,
		clock:      d.Clock,
		addService: validation.NewAddServiceContextBuilder(d.Visits, d.Catalog),
		convert:    validation.NewConvertToVisitContextBuilder(d.Appointments, d.Visits, d.Vehicles, d.Customers),
		checkIn:    validation.NewCreateVisitFromReservationContextBuilder(d.Appointments, d.Visits, d.Vehicles, d.Customers, d.Colors),
	}
}

func (u *VisitUseCase) ConvertToVisit(ctx context.Context, cmd command.ConvertToVisit) (entities.Visit, error) {
	cmd.StudioID = strings.TrimSpace(cmd.StudioID)
	cmd.AppointmentID = strings.TrimSpace(cmd.AppointmentID)
	if cmd.StudioID == "" {
		return entities.Visit{}, ErrInvalidStudioID
	}
	if cmd.AppointmentID == "" {
		return entities.Visit{}, ErrInvalidAppointmentID
	}
	logger := log.WithFields(log.Fields{"studio_id": cmd.StudioID, "appointment_id": cmd.AppointmentID})
	logger.Info("[visit][usecase] convert appointment start")

	vc, err := u.convert.Build(ctx, cmd)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] convert context build failed")
		return entities.Visit{}, err
	}
	if err := validation.Run(vc, validation.ConvertToVisitValidators); err != nil {
		logger.WithError(err).Warn("[visit][usecase] convert rejected")
		return entities.Visit{}, err
	}

	now := u.clock.Now()
	appointment := vc.Appointment()
	items := u.itemsFromAppointment(appointment, entities.ServiceItemConfirmed, now)

	number, err := u.visits.NextVisitNumber(ctx, cmd.StudioID, now)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] visit number allocation failed")
		return entities.Visit{}, err
	}

	visit := entities.NewVisit(entities.VisitDetails{
		ID:                      u.ids.NewID(),
		StudioID:                cmd.StudioID,
		VisitNumber:             number,
		CustomerID:              vc.Customer().ID,
		VehicleID:               vc.Vehicle().ID,
		AppointmentID:           appointment.ID,
		Vehicle:                 entities.SnapshotOf(vc.Vehicle()),
		ScheduledDate:           appointment.ScheduledDate,
		EstimatedCompletionDate: appointment.EstimatedCompletionDate,
	}, items, cmd.ActorID, now)

	saved, err := u.visits.Save(ctx, visit)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] save failed")
		return entities.Visit{}, err
	}
	logger.WithFields(log.Fields{"visit_id": saved.ID(), "visit_number": saved.VisitNumber()}).Info("[visit][usecase] convert appointment success")
	return saved, nil
}

// CreateVisitFromReservation checks a reserved vehicle in. The reserved
// services are opened as APPROVED since the customer agreed to them at the
// counter. A created or updated customer is saved in the same write as the visit.
func (u *VisitUseCase) CreateVisitFromReservation(ctx context.Context, cmd command.CreateVisitFromReservation) (entities.Visit, error) {
	cmd.StudioID = strings.TrimSpace(cmd.StudioID)
	cmd.ReservationID = strings.TrimSpace(cmd.ReservationID)
	if cmd.StudioID == "" {
		return entities.Visit{}, ErrInvalidStudioID
	}
	if cmd.ReservationID == "" {
		return entities.Visit{}, ErrInvalidAppointmentID
	}
	if cmd.Customer == nil {
		return entities.Visit{}, ErrMissingCustomer
	}
	logger := log.WithFields(log.Fields{"studio_id": cmd.StudioID, "reservation_id": cmd.ReservationID})
	logger.Info("[visit][usecase] check-in start")

	vc, err := u.checkIn.Build(ctx, cmd)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] check-in context build failed")
		return entities.Visit{}, err
	}
	if err := validation.Run(vc, validation.CreateVisitFromReservationValidators); err != nil {
		logger.WithError(err).Warn("[visit][usecase] check-in rejected")
		return entities.Visit{}, err
	}

	customer, write, err := u.resolveCustomer(vc)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] customer resolution failed")
		return entities.Visit{}, err
	}

	now := u.clock.Now()
	reservation := vc.Reservation()
	items := u.itemsFromAppointment(reservation, entities.ServiceItemApproved, now)

	snapshot := entities.SnapshotOf(vc.Vehicle())
	if color := vc.Color(); color.ID != "" {
		snapshot.Color = color.Name
	}
	estimated := reservation.EstimatedCompletionDate
	if cmd.EstimatedCompletionDate != nil {
		estimated = cmd.EstimatedCompletionDate
	}

	number, err := u.visits.NextVisitNumber(ctx, cmd.StudioID, now)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] visit number allocation failed")
		return entities.Visit{}, err
	}

	visit := entities.NewVisit(entities.VisitDetails{
		ID:                      u.ids.NewID(),
		StudioID:                cmd.StudioID,
		VisitNumber:             number,
		CustomerID:              customer.ID,
		VehicleID:               vc.Vehicle().ID,
		AppointmentID:           reservation.ID,
		Vehicle:                 snapshot,
		ScheduledDate:           reservation.ScheduledDate,
		EstimatedCompletionDate: estimated,
		Arrival:                 cmd.Arrival,
	}, items, cmd.ActorID, now)

	var saved entities.Visit
	switch write {
	case customerUnchanged:
		saved, err = u.visits.Save(ctx, visit)
	default:
		saved, err = u.visits.SaveWithCustomer(ctx, visit, customer, write == customerCreated)
	}
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] save failed")
		return entities.Visit{}, err
	}
	logger.WithFields(log.Fields{"visit_id": saved.ID(), "visit_number": saved.VisitNumber(), "customer_id": customer.ID}).Info("[visit][usecase] check-in success")
	return saved, nil
}

type customerWrite int

const (
	customerUnchanged customerWrite = iota
	customerCreated
	customerUpdated
)

// resolveCustomer works out who the visit belongs to and what, if anything,
// has to be written for them. It does no I/O.
func (u *VisitUseCase) resolveCustomer(vc validation.CreateVisitFromReservationContext) (entities.Customer, customerWrite, error) {
	switch id := vc.Command().Customer.(type) {
	case entities.ExistingCustomer:
		return vc.Customer(), customerUnchanged, nil
	case entities.UpdateCustomer:
		return id.Apply(vc.Customer()), customerUpdated, nil
	case entities.NewCustomer:
		return entities.Customer{
			ID:        u.ids.NewID(),
			StudioID:  vc.Command().StudioID,
			FirstName: strings.TrimSpace(id.FirstName),
			LastName:  strings.TrimSpace(id.LastName),
			Phone:     strings.TrimSpace(id.Phone),
			Email:     strings.TrimSpace(id.Email),
		}, customerCreated, nil
	default:
		return entities.Customer{}, customerUnchanged, entities.UnknownIdentityError(id)
	}
}

func (u *VisitUseCase) itemsFromAppointment(a entities.Appointment, status entities.ServiceItemStatus, now time.Time) []entities.VisitServiceItem {
	items := make([]entities.VisitServiceItem, 0, len(a.ServiceLines))
	for _, line := range a.ServiceLines {
		items = append(items, entities.NewVisitServiceItem(entities.NewServiceItemParams{
			ID:              u.ids.NewID(),
			ServiceID:       line.ServiceID,
			ServiceName:     line.ServiceName,
			BasePriceNet:    line.BasePriceNet,
			VatRate:         line.VatRate,
			AdjustmentType:  entities.AdjustmentOrDefault(line.AdjustmentType),
			AdjustmentValue: line.AdjustmentValue,
			Status:          status,
			CustomNote:      line.CustomNote,
			CreatedAt:       now,
		}))
	}
	return items
}

// AddService appends one catalog service to a visit as a PENDING line.
func (u *VisitUseCase) AddService(ctx context.Context, cmd command.AddService) (entities.Visit, error) {
	return u.SaveServicesChanges(ctx, command.SaveServicesChanges{
		StudioID: cmd.StudioID,
		VisitID:  cmd.VisitID,
		ActorID:  cmd.ActorID,
		Added:    []command.ServiceLine{cmd.Service},
	})
}

func (u *VisitUseCase) SaveServicesChanges(ctx context.Context, cmd command.SaveServicesChanges) (entities.Visit, error) {
	cmd.StudioID = strings.TrimSpace(cmd.StudioID)
	cmd.VisitID = strings.TrimSpace(cmd.VisitID)
	if cmd.StudioID == "" {
		return entities.Visit{}, ErrInvalidStudioID
	}
	if cmd.VisitID == "" {
		return entities.Visit{}, ErrInvalidVisitID
	}
	for i := range cmd.Added {
		cmd.Added[i].ServiceID = strings.TrimSpace(cmd.Added[i].ServiceID)
		cmd.Added[i].AdjustmentType = entities.AdjustmentOrDefault(cmd.Added[i].AdjustmentType)
	}
	logger := log.WithFields(log.Fields{
		"studio_id": cmd.StudioID,
		"visit_id":  cmd.VisitID,
		"added":     len(cmd.Added),
		"updated":   len(cmd.Updated),
		"deleted":   len(cmd.DeletedIDs),
	})
	logger.Info("[visit][usecase] service changes start")

	sc, err := u.addService.Build(ctx, cmd)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] service context build failed")
		return entities.Visit{}, err
	}
	if err := validation.Run(sc, validation.AddServiceValidators); err != nil {
		logger.WithError(err).Warn("[visit][usecase] service changes rejected")
		return entities.Visit{}, err
	}

	now := u.clock.Now()
	visit := sc.Visit()
	if visit.Status().IsTerminal() {
		logger.WithField("status", visit.Status()).Warn("[visit][usecase] changing services of a closed visit")
	}

	added := make([]entities.VisitServiceItem, 0, len(cmd.Added))
	for _, line := range cmd.Added {
		service, _ := sc.Service(line.ServiceID)
		added = append(added, entities.NewVisitServiceItem(entities.NewServiceItemParams{
			ID:              u.ids.NewID(),
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			BasePriceNet:    service.BasePriceNet,
			VatRate:         service.VatRate,
			AdjustmentType:  line.AdjustmentType,
			AdjustmentValue: line.AdjustmentValue,
			CustomNote:      strings.TrimSpace(line.CustomNote),
			CreatedAt:       now,
		}))
	}

	updated := make([]entities.VisitServiceItem, 0, len(cmd.Updated))
	for _, change := range cmd.Updated {
		item, err := applyLineUpdate(visit, change)
		if err != nil {
			return entities.Visit{}, err
		}
		updated = append(updated, item)
	}

	next, err := visit.SaveServicesChanges(added, updated, cmd.DeletedIDs, cmd.ActorID, now)
	if err != nil {
		logger.WithError(err).Warn("[visit][usecase] service changes rejected by visit")
		return entities.Visit{}, err
	}

	saved, err := u.visits.Save(ctx, next)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] save failed")
		return entities.Visit{}, err
	}
	logger.WithField("total_gross", saved.CalculateTotalGross().String()).Info("[visit][usecase] service changes success")
	return saved, nil
}

func applyLineUpdate(visit entities.Visit, change command.ServiceLineUpdate) (entities.VisitServiceItem, error) {
	item, ok := visit.FindServiceItem(change.ItemID)
	if !ok {
		return entities.VisitServiceItem{}, &entities.NotFoundError{Entity: "service item", ID: change.ItemID}
	}
	if change.BasePriceNet != nil {
		base, err := entities.NewMoney(*change.BasePriceNet)
		if err != nil {
			return entities.VisitServiceItem{}, err
		}
		item = item.Reprice(base)
	}
	if change.AdjustmentType != nil || change.AdjustmentValue != nil {
		adjType, value := item.AdjustmentType(), item.AdjustmentValue()
		if change.AdjustmentType != nil {
			adjType = entities.AdjustmentOrDefault(*change.AdjustmentType)
		}
		if change.AdjustmentValue != nil {
			value = *change.AdjustmentValue
		}
		item = item.WithAdjustment(adjType, value)
	}
	if change.CustomNote != nil {
		item = item.WithCustomNote(strings.TrimSpace(*change.CustomNote))
	}
	return item, nil
}

func (u *VisitUseCase) ApproveService(ctx context.Context, cmd command.ServiceDecision) (entities.Visit, error) {
	return u.decideService(ctx, cmd, "approve-service", entities.Visit.ApproveService)
}

func (u *VisitUseCase) RejectService(ctx context.Context, cmd command.ServiceDecision) (entities.Visit, error) {
	return u.decideService(ctx, cmd, "reject-service", entities.Visit.RejectService)
}

func (u *VisitUseCase) decideService(
	ctx context.Context,
	cmd command.ServiceDecision,
	op string,
	decide func(v entities.Visit, itemID, actor string, now time.Time) (entities.Visit, error),
) (entities.Visit, error) {
	cmd.ItemID = strings.TrimSpace(cmd.ItemID)
	if cmd.ItemID == "" {
		return entities.Visit{}, ErrInvalidItemID
	}
	return u.mutate(ctx, cmd.StudioID, cmd.VisitID, op, log.Fields{"item_id": cmd.ItemID}, func(v entities.Visit, now time.Time) (entities.Visit, error) {
		return decide(v, cmd.ItemID, cmd.ActorID, now)
	})
}

func (u *VisitUseCase) MarkAsReadyForPickup(ctx context.Context, cmd command.VisitAction) (entities.Visit, error) {
	return u.lifecycle(ctx, cmd, "ready-for-pickup", entities.Visit.MarkAsReadyForPickup)
}

func (u *VisitUseCase) Complete(ctx context.Context, cmd command.VisitAction) (entities.Visit, error) {
	return u.lifecycle(ctx, cmd, "complete", entities.Visit.Complete)
}

func (u *VisitUseCase) Reject(ctx context.Context, cmd command.VisitAction) (entities.Visit, error) {
	return u.lifecycle(ctx, cmd, "reject", entities.Visit.Reject)
}

func (u *VisitUseCase) Archive(ctx context.Context, cmd command.VisitAction) (entities.Visit, error) {
	return u.lifecycle(ctx, cmd, "archive", entities.Visit.Archive)
}

func (u *VisitUseCase) ReturnToInProgress(ctx context.Context, cmd command.VisitAction) (entities.Visit, error) {
	return u.lifecycle(ctx, cmd, "return-to-progress", entities.Visit.ReturnToInProgress)
}

func (u *VisitUseCase) lifecycle(
	ctx context.Context,
	cmd command.VisitAction,
	op string,
	transition func(v entities.Visit, actor string, now time.Time) (entities.Visit, error),
) (entities.Visit, error) {
	return u.mutate(ctx, cmd.StudioID, cmd.VisitID, op, nil, func(v entities.Visit, now time.Time) (entities.Visit, error) {
		return transition(v, cmd.ActorID, now)
	})
}

// mutate is the load, decide, save cycle shared by single-visit commands.
func (u *VisitUseCase) mutate(
	ctx context.Context,
	studioID, visitID, op string,
	fields log.Fields,
	apply func(v entities.Visit, now time.Time) (entities.Visit, error),
) (entities.Visit, error) {
	logger := log.WithFields(log.Fields{"studio_id": studioID, "visit_id": visitID, "op": op}).WithFields(fields)
	visit, err := u.GetByID(ctx, studioID, visitID)
	if err != nil {
		logger.WithError(err).Warn("[visit][usecase] load failed")
		return entities.Visit{}, err
	}

	next, err := apply(visit, u.clock.Now())
	if err != nil {
		logger.WithError(err).WithField("status", visit.Status()).Warn("[visit][usecase] rejected")
		return entities.Visit{}, err
	}

	saved, err := u.visits.Save(ctx, next)
	if err != nil {
		logger.WithError(err).Error("[visit][usecase] save failed")
		return entities.Visit{}, err
	}
	logger.WithField("status", saved.Status()).Info("[visit][usecase] success")
	return saved, nil
}

func (u *VisitUseCase) GetByID(ctx context.Context, studioID, visitID string) (entities.Visit, error) {
	studioID = strings.TrimSpace(studioID)
	visitID = strings.TrimSpace(visitID)
	if studioID == "" {
		return entities.Visit{}, ErrInvalidStudioID
	}
	if visitID == "" {
		return entities.Visit{}, ErrInvalidVisitID
	}

	v, err := u.visits.FindByID(ctx, visitID, studioID)
	if err != nil {
		return entities.Visit{}, err
	}
	if v.ID() == "" {
		return entities.Visit{}, &entities.NotFoundError{Entity: "visit", ID: visitID}
	}
	return v, nil
}
