package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// VisitPayment is a charge of a visit's billable gross total.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (visit_id-index): visit_id
//
// ProviderPayloadRaw keeps the gateway response verbatim for audit;
// ProviderPayload is the parsed form used for debugging.
type VisitPayment struct {
	ID          string        `json:"id"`
	VisitID     string        `json:"visit_id"`
	StudioID    string        `json:"studio_id"`
	AmountGross Money         `json:"-"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
