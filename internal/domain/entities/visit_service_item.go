package entities

import (
	"fmt"
	"strings"
	"time"
)

// ServiceItemStatus tracks customer approval of a priced line.
type ServiceItemStatus string

const (
	ServiceItemPending   ServiceItemStatus = "PENDING"
	ServiceItemApproved  ServiceItemStatus = "APPROVED"
	ServiceItemRejected  ServiceItemStatus = "REJECTED"
	ServiceItemConfirmed ServiceItemStatus = "CONFIRMED"
)

func ParseServiceItemStatus(raw string) (ServiceItemStatus, error) {
	s := ServiceItemStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case ServiceItemPending, ServiceItemApproved, ServiceItemRejected, ServiceItemConfirmed:
		return s, nil
	}
	return "", &ValidationError{Err: ErrInvalidServiceStatus, Details: fmt.Sprintf("unknown service item status %q", raw)}
}

// IsBillable reports whether items in this status count toward visit totals.
func (s ServiceItemStatus) IsBillable() bool {
	return s == ServiceItemApproved || s == ServiceItemConfirmed
}

// NewServiceItemParams is the unpriced description of a line.
type NewServiceItemParams struct {
	ID              string
	ServiceID       string
	ServiceName     string
	BasePriceNet    Money
	VatRate         VatRate
	AdjustmentType  AdjustmentType
	AdjustmentValue int64
	Status          ServiceItemStatus
	CustomNote      string
	CreatedAt       time.Time
}

// VisitServiceItem is one billable unit of work on a visit.
//
// Final prices are frozen at creation and only change through Reprice or
// WithAdjustment, both of which run the price calculator again.
type VisitServiceItem struct {
	id              string
	serviceID       string
	serviceName     string
	basePriceNet    Money
	vatRate         VatRate
	adjustmentType  AdjustmentType
	adjustmentValue int64
	finalPriceNet   Money
	finalPriceGross Money
	status          ServiceItemStatus
	customNote      string
	createdAt       time.Time
}

func NewVisitServiceItem(p NewServiceItemParams) VisitServiceItem {
	status := p.Status
	if status == "" {
		status = ServiceItemPending
	}
	item := VisitServiceItem{
		id:              p.ID,
		serviceID:       p.ServiceID,
		serviceName:     p.ServiceName,
		basePriceNet:    p.BasePriceNet,
		vatRate:         p.VatRate,
		adjustmentType:  p.AdjustmentType,
		adjustmentValue: p.AdjustmentValue,
		status:          status,
		customNote:      p.CustomNote,
		createdAt:       p.CreatedAt,
	}
	return item.priced()
}

func (i VisitServiceItem) priced() VisitServiceItem {
	i.finalPriceNet, i.finalPriceGross = CalculateFinalPrice(i.basePriceNet, i.vatRate, i.adjustmentType, i.adjustmentValue)
	return i
}

func (i VisitServiceItem) ID() string                     { return i.id }
func (i VisitServiceItem) ServiceID() string              { return i.serviceID }
func (i VisitServiceItem) ServiceName() string            { return i.serviceName }
func (i VisitServiceItem) BasePriceNet() Money            { return i.basePriceNet }
func (i VisitServiceItem) VatRate() VatRate               { return i.vatRate }
func (i VisitServiceItem) AdjustmentType() AdjustmentType { return i.adjustmentType }
func (i VisitServiceItem) AdjustmentValue() int64         { return i.adjustmentValue }
func (i VisitServiceItem) FinalPriceNet() Money           { return i.finalPriceNet }
func (i VisitServiceItem) FinalPriceGross() Money         { return i.finalPriceGross }
func (i VisitServiceItem) Status() ServiceItemStatus      { return i.status }
func (i VisitServiceItem) CustomNote() string             { return i.customNote }
func (i VisitServiceItem) CreatedAt() time.Time           { return i.createdAt }
func (i VisitServiceItem) FinalPriceVat() Money           { return i.vatRate.CalculateVat(i.finalPriceNet) }

// Reprice keeps the adjustment and applies it to a new base price.
func (i VisitServiceItem) Reprice(base Money) VisitServiceItem {
	i.basePriceNet = base
	return i.priced()
}

func (i VisitServiceItem) WithAdjustment(t AdjustmentType, value int64) VisitServiceItem {
	i.adjustmentType = t
	i.adjustmentValue = value
	return i.priced()
}

func (i VisitServiceItem) WithCustomNote(note string) VisitServiceItem {
	i.customNote = note
	return i
}

func (i VisitServiceItem) WithStatus(status ServiceItemStatus) VisitServiceItem {
	i.status = status
	return i
}
