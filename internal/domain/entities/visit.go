package entities

import "time"

// VehicleSnapshot freezes the vehicle as it was when the visit was opened.
// It is never re-synced from the live vehicle record.
type VehicleSnapshot struct {
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin,omitempty"`
	Year         *int   `json:"year,omitempty"`
	Color        string `json:"color,omitempty"`
	EngineType   string `json:"engine_type,omitempty"`
}

func SnapshotOf(v Vehicle) VehicleSnapshot {
	return VehicleSnapshot{
		Brand:        v.Brand,
		Model:        v.Model,
		LicensePlate: v.LicensePlate,
		VIN:          v.VIN,
		Year:         v.Year,
		Color:        v.Color,
		EngineType:   v.EngineType,
	}
}

// ArrivalDetails is what the workshop recorded when the vehicle was handed over.
type ArrivalDetails struct {
	Mileage             *int64 `json:"mileage,omitempty"`
	KeysHandedOver      bool   `json:"keys_handed_over"`
	DocumentsHandedOver bool   `json:"documents_handed_over"`
	InspectionNotes     string `json:"inspection_notes,omitempty"`
	TechnicalNotes      string `json:"technical_notes,omitempty"`
}

type AuditInfo struct {
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VisitDetails holds the fields fixed when a visit is opened.
type VisitDetails struct {
	ID                      string
	StudioID                string
	VisitNumber             string
	CustomerID              string
	VehicleID               string
	AppointmentID           string
	Vehicle                 VehicleSnapshot
	ScheduledDate           time.Time
	EstimatedCompletionDate *time.Time
	Arrival                 ArrivalDetails
}

// VisitState is the full persisted shape of a visit.
type VisitState struct {
	Details              VisitDetails
	Status               VisitStatus
	ActualCompletionDate *time.Time
	PickupDate           *time.Time
	ServiceItems         []VisitServiceItem
	Audit                AuditInfo
}

// Visit is the aggregate root for a vehicle's stay in the workshop.
//
// A Visit is a value: every operation returns a new Visit and leaves the
// receiver untouched. It exclusively owns its service items.
type Visit struct {
	details              VisitDetails
	status               VisitStatus
	actualCompletionDate *time.Time
	pickupDate           *time.Time
	serviceItems         []VisitServiceItem
	audit                AuditInfo
}

// NewVisit opens a visit in IN_PROGRESS.
func NewVisit(details VisitDetails, items []VisitServiceItem, actor string, now time.Time) Visit {
	return Visit{
		details:      details,
		status:       VisitInProgress,
		serviceItems: cloneItems(items),
		audit: AuditInfo{
			CreatedBy: actor,
			CreatedAt: now,
			UpdatedBy: actor,
			UpdatedAt: now,
		},
	}
}

// RestoreVisit rebuilds a visit loaded from storage.
func RestoreVisit(s VisitState) Visit {
	return Visit{
		details:              s.Details,
		status:               s.Status,
		actualCompletionDate: s.ActualCompletionDate,
		pickupDate:           s.PickupDate,
		serviceItems:         cloneItems(s.ServiceItems),
		audit:                s.Audit,
	}
}

func (v Visit) State() VisitState {
	return VisitState{
		Details:              v.details,
		Status:               v.status,
		ActualCompletionDate: v.actualCompletionDate,
		PickupDate:           v.pickupDate,
		ServiceItems:         cloneItems(v.serviceItems),
		Audit:                v.audit,
	}
}

func (v Visit) ID() string                       { return v.details.ID }
func (v Visit) StudioID() string                 { return v.details.StudioID }
func (v Visit) VisitNumber() string              { return v.details.VisitNumber }
func (v Visit) Details() VisitDetails            { return v.details }
func (v Visit) Status() VisitStatus              { return v.status }
func (v Visit) ActualCompletionDate() *time.Time { return v.actualCompletionDate }
func (v Visit) PickupDate() *time.Time           { return v.pickupDate }
func (v Visit) Audit() AuditInfo                 { return v.audit }
func (v Visit) ServiceItems() []VisitServiceItem { return cloneItems(v.serviceItems) }

func (v Visit) FindServiceItem(itemID string) (VisitServiceItem, bool) {
	for _, it := range v.serviceItems {
		if it.id == itemID {
			return it, true
		}
	}
	return VisitServiceItem{}, false
}

func (v Visit) PendingServicesCount() int {
	n := 0
	for _, it := range v.serviceItems {
		if it.status == ServiceItemPending {
			n++
		}
	}
	return n
}

func (v Visit) CanBeMarkedAsReady() bool {
	return v.PendingServicesCount() == 0
}

// MarkAsReadyForPickup requires every service to be decided by the customer.
func (v Visit) MarkAsReadyForPickup(actor string, now time.Time) (Visit, error) {
	if err := ValidateTransition(v.status, VisitReadyForPickup); err != nil {
		return Visit{}, err
	}
	if pending := v.PendingServicesCount(); pending > 0 {
		return Visit{}, &PendingServicesError{Count: pending}
	}
	next := v.withStatus(VisitReadyForPickup, actor, now)
	completedAt := now
	next.actualCompletionDate = &completedAt
	return next, nil
}

func (v Visit) Complete(actor string, now time.Time) (Visit, error) {
	if err := ValidateTransition(v.status, VisitCompleted); err != nil {
		return Visit{}, err
	}
	next := v.withStatus(VisitCompleted, actor, now)
	pickedUpAt := now
	next.pickupDate = &pickedUpAt
	return next, nil
}

func (v Visit) Reject(actor string, now time.Time) (Visit, error) {
	return v.transition(VisitRejected, actor, now)
}

func (v Visit) Archive(actor string, now time.Time) (Visit, error) {
	return v.transition(VisitArchived, actor, now)
}

func (v Visit) ReturnToInProgress(actor string, now time.Time) (Visit, error) {
	return v.transition(VisitInProgress, actor, now)
}

func (v Visit) ApproveService(itemID, actor string, now time.Time) (Visit, error) {
	return v.setServiceStatus(itemID, ServiceItemApproved, actor, now)
}

func (v Visit) RejectService(itemID, actor string, now time.Time) (Visit, error) {
	return v.setServiceStatus(itemID, ServiceItemRejected, actor, now)
}

// SaveServicesChanges applies a batch edit of the service list: deletions
// first, then in-place replacements, then appends. Added and updated items
// always go back to PENDING because any line change needs re-approval.
//
// The visit status is deliberately not checked here.
func (v Visit) SaveServicesChanges(added, updated []VisitServiceItem, deletedIDs []string, actor string, now time.Time) (Visit, error) {
	deleted := make(map[string]struct{}, len(deletedIDs))
	for _, id := range deletedIDs {
		if _, ok := v.FindServiceItem(id); !ok {
			return Visit{}, &NotFoundError{Entity: "service item", ID: id}
		}
		deleted[id] = struct{}{}
	}

	items := make([]VisitServiceItem, 0, len(v.serviceItems)+len(added))
	for _, it := range v.serviceItems {
		if _, gone := deleted[it.id]; !gone {
			items = append(items, it)
		}
	}

	for _, u := range updated {
		idx := indexOfItem(items, u.id)
		if idx < 0 {
			return Visit{}, &NotFoundError{Entity: "service item", ID: u.id}
		}
		items[idx] = u.WithStatus(ServiceItemPending)
	}

	for _, a := range added {
		items = append(items, a.WithStatus(ServiceItemPending))
	}

	next := v.clone()
	next.serviceItems = items
	next.touch(actor, now)
	return next, nil
}

// CalculateTotalNet sums billable (APPROVED or CONFIRMED) items only.
// Every billing path must go through these totals.
func (v Visit) CalculateTotalNet() Money {
	total := Zero
	for _, it := range v.serviceItems {
		if it.status.IsBillable() {
			total = total.Add(it.finalPriceNet)
		}
	}
	return total
}

func (v Visit) CalculateTotalGross() Money {
	total := Zero
	for _, it := range v.serviceItems {
		if it.status.IsBillable() {
			total = total.Add(it.finalPriceGross)
		}
	}
	return total
}

func (v Visit) CalculateTotalVat() Money {
	total := Zero
	for _, it := range v.serviceItems {
		if it.status.IsBillable() {
			total = total.Add(it.FinalPriceVat())
		}
	}
	return total
}

func (v Visit) transition(to VisitStatus, actor string, now time.Time) (Visit, error) {
	if err := ValidateTransition(v.status, to); err != nil {
		return Visit{}, err
	}
	return v.withStatus(to, actor, now), nil
}

func (v Visit) withStatus(to VisitStatus, actor string, now time.Time) Visit {
	next := v.clone()
	next.status = to
	next.touch(actor, now)
	return next
}

func (v Visit) setServiceStatus(itemID string, status ServiceItemStatus, actor string, now time.Time) (Visit, error) {
	idx := indexOfItem(v.serviceItems, itemID)
	if idx < 0 {
		return Visit{}, &NotFoundError{Entity: "service item", ID: itemID}
	}
	next := v.clone()
	next.serviceItems[idx] = next.serviceItems[idx].WithStatus(status)
	next.touch(actor, now)
	return next, nil
}

func (v Visit) clone() Visit {
	v.serviceItems = cloneItems(v.serviceItems)
	return v
}

func (v *Visit) touch(actor string, now time.Time) {
	v.audit.UpdatedBy = actor
	v.audit.UpdatedAt = now
}

func cloneItems(items []VisitServiceItem) []VisitServiceItem {
	if items == nil {
		return nil
	}
	out := make([]VisitServiceItem, len(items))
	copy(out, items)
	return out
}

func indexOfItem(items []VisitServiceItem, id string) int {
	for i, it := range items {
		if it.id == id {
			return i
		}
	}
	return -1
}
