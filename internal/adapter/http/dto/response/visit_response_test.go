package response

import (
	"encoding/json"
	"testing"
	"time"

	"workshop_visits/internal/domain/entities"
)

func money(t *testing.T, cents int64) entities.Money {
	t.Helper()
	m, err := entities.NewMoney(cents)
	if err != nil {
		t.Fatalf("money: %v", err)
	}
	return m
}

func TestFromVisit(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	items := []entities.VisitServiceItem{
		entities.NewVisitServiceItem(entities.NewServiceItemParams{
			ID: "item-1", ServiceID: "svc-1", ServiceName: "Oil change",
			BasePriceNet: money(t, 10000), VatRate: entities.Vat23,
			AdjustmentType: entities.AdjustmentPercent, Status: entities.ServiceItemApproved,
		}),
		entities.NewVisitServiceItem(entities.NewServiceItemParams{
			ID: "item-2", ServiceID: "svc-2", ServiceName: "Wash",
			BasePriceNet: money(t, 2000), VatRate: entities.Vat8,
			AdjustmentType: entities.AdjustmentPercent,
		}),
	}
	v := entities.NewVisit(entities.VisitDetails{
		ID: "visit-1", StudioID: "studio-1", VisitNumber: "VIS/2026/00001",
		CustomerID: "cust-1", VehicleID: "veh-1", ScheduledDate: now,
		Vehicle: entities.VehicleSnapshot{Brand: "Skoda", Model: "Octavia", LicensePlate: "WX 12345"},
	}, items, "user-1", now)

	res := FromVisit(v)
	if res.ID != "visit-1" || res.VisitNumber != "VIS/2026/00001" || res.Status != "IN_PROGRESS" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.ServiceItems) != 2 || res.ServiceItems[0].FinalPriceGross != 12300 || res.ServiceItems[0].FinalPriceVat != 2300 {
		t.Fatalf("unexpected items: %+v", res.ServiceItems)
	}
	if res.ServiceItems[1].Status != "PENDING" || res.ServiceItems[1].VatRate != "8" {
		t.Fatalf("unexpected pending item: %+v", res.ServiceItems[1])
	}
	if res.Totals != (TotalsResponse{Net: 10000, Gross: 12300, Vat: 2300}) {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if res.PendingServices != 1 || res.CanBeMarkedAsReady {
		t.Fatalf("unexpected readiness: %+v", res)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["appointment_id"]; ok {
		t.Fatalf("appointment_id should be omitted: %s", b)
	}
}

func TestFromVisitPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.VisitPayment{
		ID:                 "pay-1",
		VisitID:            "visit-1",
		StudioID:           "studio-1",
		AmountGross:        money(t, 24600),
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":123}`),
		ProviderPayload:    map[string]interface{}{"a": "b"},
	}

	res := FromVisitPayment(p)
	if res.PaymentID != "pay-1" || res.VisitID != "visit-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.AmountGross != 24600 || !res.Date.Equal(now) {
		t.Fatalf("unexpected amount/date: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":123}` || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}
