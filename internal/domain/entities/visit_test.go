package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var visitNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newItem(t *testing.T, id string, net int64, status ServiceItemStatus) VisitServiceItem {
	t.Helper()
	return NewVisitServiceItem(NewServiceItemParams{
		ID:             id,
		ServiceID:      "svc-" + id,
		ServiceName:    "Service " + id,
		BasePriceNet:   mustMoney(t, net),
		VatRate:        Vat23,
		AdjustmentType: AdjustmentPercent,
		Status:         status,
		CreatedAt:      visitNow,
	})
}

func newTestVisit(items ...VisitServiceItem) Visit {
	return NewVisit(VisitDetails{
		ID:          "visit-1",
		StudioID:    "studio-1",
		VisitNumber: "VIS/2026/00001",
		CustomerID:  "cust-1",
		VehicleID:   "veh-1",
		Vehicle:     VehicleSnapshot{Brand: "Skoda", Model: "Octavia", LicensePlate: "WX 12345"},
	}, items, "creator", visitNow.Add(-time.Hour))
}

func TestNewVisit(t *testing.T) {
	v := newTestVisit()
	assert.Equal(t, VisitInProgress, v.Status())
	assert.Equal(t, "creator", v.Audit().CreatedBy)
	assert.Nil(t, v.ActualCompletionDate())
	assert.Nil(t, v.PickupDate())
	assert.True(t, v.CanBeMarkedAsReady())
}

func TestVisit_TotalsCountOnlyBillableItems(t *testing.T) {
	v := newTestVisit(
		newItem(t, "a", 1000, ServiceItemApproved),
		newItem(t, "b", 2000, ServiceItemPending),
		newItem(t, "c", 4000, ServiceItemConfirmed),
		newItem(t, "d", 8000, ServiceItemRejected),
	)

	assert.Equal(t, int64(5000), v.CalculateTotalNet().Cents())
	assert.Equal(t, int64(6150), v.CalculateTotalGross().Cents())
	assert.Equal(t, int64(1150), v.CalculateTotalVat().Cents())
}

func TestVisit_ScenarioC_PendingItemBlocksReady(t *testing.T) {
	v := newTestVisit(
		newItem(t, "a", 1000, ServiceItemApproved),
		newItem(t, "b", 2000, ServiceItemPending),
	)

	assert.Equal(t, int64(1000), v.CalculateTotalNet().Cents())
	assert.False(t, v.CanBeMarkedAsReady())

	_, err := v.MarkAsReadyForPickup("mechanic", visitNow)
	var pendingErr *PendingServicesError
	require.True(t, errors.As(err, &pendingErr))
	assert.Equal(t, 1, pendingErr.Count)
	assert.ErrorIs(t, err, ErrServicesPendingApproval)
	assert.NotErrorIs(t, err, ErrIllegalStateTransition)
}

func TestVisit_PendingPriceChangeDoesNotMoveTotal(t *testing.T) {
	v := newTestVisit(
		newItem(t, "a", 1000, ServiceItemApproved),
		newItem(t, "b", 2000, ServiceItemPending),
	)
	before := v.CalculateTotalNet()

	b, _ := v.FindServiceItem("b")
	next, err := v.SaveServicesChanges(nil, []VisitServiceItem{b.Reprice(mustMoney(t, 99999))}, nil, "advisor", visitNow)
	require.NoError(t, err)
	assert.Equal(t, before, next.CalculateTotalNet())
}

func TestVisit_ScenarioD_ArchiveFromInProgress(t *testing.T) {
	v := newTestVisit()
	_, err := v.Archive("manager", visitNow)

	var transitionErr *StateTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, []VisitStatus{VisitReadyForPickup, VisitRejected}, transitionErr.Allowed)
}

func TestVisit_Lifecycle(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemApproved))

	ready, err := v.MarkAsReadyForPickup("mechanic", visitNow)
	require.NoError(t, err)
	assert.Equal(t, VisitReadyForPickup, ready.Status())
	require.NotNil(t, ready.ActualCompletionDate())
	assert.Equal(t, visitNow, *ready.ActualCompletionDate())
	assert.Equal(t, "mechanic", ready.Audit().UpdatedBy)

	assert.Equal(t, VisitInProgress, v.Status(), "receiver must not change")

	back, err := ready.ReturnToInProgress("advisor", visitNow.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, VisitInProgress, back.Status())

	ready, err = back.MarkAsReadyForPickup("mechanic", visitNow.Add(2*time.Minute))
	require.NoError(t, err)

	done, err := ready.Complete("advisor", visitNow.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, VisitCompleted, done.Status())
	require.NotNil(t, done.PickupDate())
	assert.Equal(t, visitNow.Add(3*time.Minute), *done.PickupDate())

	archived, err := done.Archive("manager", visitNow.Add(4*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, VisitArchived, archived.Status())

	for _, op := range []func(Visit) (Visit, error){
		func(x Visit) (Visit, error) { return x.Reject("m", visitNow) },
		func(x Visit) (Visit, error) { return x.Complete("m", visitNow) },
		func(x Visit) (Visit, error) { return x.ReturnToInProgress("m", visitNow) },
		func(x Visit) (Visit, error) { return x.MarkAsReadyForPickup("m", visitNow) },
		func(x Visit) (Visit, error) { return x.Archive("m", visitNow) },
	} {
		_, err := op(archived)
		assert.ErrorIs(t, err, ErrIllegalStateTransition)
	}
}

func TestVisit_RejectThenArchive(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemPending))

	rejected, err := v.Reject("advisor", visitNow)
	require.NoError(t, err)
	assert.Equal(t, VisitRejected, rejected.Status())

	_, err = rejected.Complete("advisor", visitNow)
	assert.ErrorIs(t, err, ErrIllegalStateTransition)

	archived, err := rejected.Archive("advisor", visitNow)
	require.NoError(t, err)
	assert.Equal(t, VisitArchived, archived.Status())
}

func TestVisit_CompleteRequiresReady(t *testing.T) {
	_, err := newTestVisit().Complete("advisor", visitNow)
	assert.ErrorIs(t, err, ErrIllegalStateTransition)
}

func TestVisit_ApproveAndRejectService(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemPending), newItem(t, "b", 500, ServiceItemPending))

	approved, err := v.ApproveService("a", "customer", visitNow)
	require.NoError(t, err)
	item, _ := approved.FindServiceItem("a")
	assert.Equal(t, ServiceItemApproved, item.Status())
	assert.Equal(t, VisitInProgress, approved.Status())

	original, _ := v.FindServiceItem("a")
	assert.Equal(t, ServiceItemPending, original.Status())

	rejected, err := approved.RejectService("b", "customer", visitNow)
	require.NoError(t, err)
	item, _ = rejected.FindServiceItem("b")
	assert.Equal(t, ServiceItemRejected, item.Status())
	assert.True(t, rejected.CanBeMarkedAsReady())
	assert.Equal(t, int64(1000), rejected.CalculateTotalNet().Cents())

	_, err = v.ApproveService("missing", "customer", visitNow)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVisit_SaveServicesChanges(t *testing.T) {
	v := newTestVisit(
		newItem(t, "a", 1000, ServiceItemApproved),
		newItem(t, "b", 2000, ServiceItemConfirmed),
		newItem(t, "c", 3000, ServiceItemApproved),
	)

	b, _ := v.FindServiceItem("b")
	updated := b.Reprice(mustMoney(t, 2500))
	added := newItem(t, "d", 700, ServiceItemApproved)

	next, err := v.SaveServicesChanges([]VisitServiceItem{added}, []VisitServiceItem{updated}, []string{"a"}, "advisor", visitNow)
	require.NoError(t, err)

	items := next.ServiceItems()
	require.Len(t, items, 3)
	assert.Equal(t, "b", items[0].ID())
	assert.Equal(t, "c", items[1].ID())
	assert.Equal(t, "d", items[2].ID())

	assert.Equal(t, ServiceItemPending, items[0].Status())
	assert.Equal(t, int64(2500), items[0].FinalPriceNet().Cents())
	assert.Equal(t, ServiceItemApproved, items[1].Status())
	assert.Equal(t, ServiceItemPending, items[2].Status())

	assert.Equal(t, int64(3000), next.CalculateTotalNet().Cents())
	assert.Len(t, v.ServiceItems(), 3, "receiver must not change")
	assert.Equal(t, "advisor", next.Audit().UpdatedBy)
}

func TestVisit_SaveServicesChangesNotGatedByStatus(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemApproved))
	ready, err := v.MarkAsReadyForPickup("m", visitNow)
	require.NoError(t, err)
	done, err := ready.Complete("m", visitNow)
	require.NoError(t, err)

	next, err := done.SaveServicesChanges([]VisitServiceItem{newItem(t, "x", 10, ServiceItemApproved)}, nil, nil, "m", visitNow)
	require.NoError(t, err)
	assert.Len(t, next.ServiceItems(), 2)
	assert.Equal(t, VisitCompleted, next.Status())
}

func TestVisit_SaveServicesChangesUnknownIDs(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemApproved))

	_, err := v.SaveServicesChanges(nil, nil, []string{"nope"}, "m", visitNow)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = v.SaveServicesChanges(nil, []VisitServiceItem{newItem(t, "zzz", 1, ServiceItemPending)}, nil, "m", visitNow)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVisit_ServiceItemsIsACopy(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemApproved))
	items := v.ServiceItems()
	items[0] = items[0].WithStatus(ServiceItemRejected)

	item, _ := v.FindServiceItem("a")
	assert.Equal(t, ServiceItemApproved, item.Status())
}

func TestRestoreVisit_RoundTripsState(t *testing.T) {
	v := newTestVisit(newItem(t, "a", 1000, ServiceItemApproved))
	ready, err := v.MarkAsReadyForPickup("m", visitNow)
	require.NoError(t, err)

	restored := RestoreVisit(ready.State())
	assert.Equal(t, ready, restored)
}

func TestVisitServiceItem_RepriceKeepsAdjustment(t *testing.T) {
	item := NewVisitServiceItem(NewServiceItemParams{
		ID:              "i",
		BasePriceNet:    mustMoney(t, 10000),
		VatRate:         Vat23,
		AdjustmentType:  AdjustmentPercent,
		AdjustmentValue: -10,
	})
	assert.Equal(t, ServiceItemPending, item.Status())
	assert.Equal(t, int64(9000), item.FinalPriceNet().Cents())
	assert.Equal(t, int64(11070), item.FinalPriceGross().Cents())

	repriced := item.Reprice(mustMoney(t, 20000))
	assert.Equal(t, int64(18000), repriced.FinalPriceNet().Cents())
	assert.Equal(t, int64(10000), item.BasePriceNet().Cents())

	set := repriced.WithAdjustment(AdjustmentSetNet, 5000)
	assert.Equal(t, int64(20000), set.BasePriceNet().Cents())
	assert.Equal(t, int64(5000), set.FinalPriceNet().Cents())
}

func TestParseServiceItemStatus(t *testing.T) {
	for raw, want := range map[string]ServiceItemStatus{"PENDING": ServiceItemPending, " approved ": ServiceItemApproved, "Rejected": ServiceItemRejected, "CONFIRMED": ServiceItemConfirmed} {
		got, err := ParseServiceItemStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "GARBAGE", "DONE"} {
		_, err := ParseServiceItemStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidServiceStatus, raw)
		assert.ErrorIs(t, err, ErrValidation, raw)
	}
}
