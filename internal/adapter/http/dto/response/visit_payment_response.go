package response

import (
	"time"

	"workshop_visits/internal/domain/entities"
)

type VisitPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	VisitID     string    `json:"visit_id"`
	StudioID    string    `json:"studio_id"`
	AmountGross int64     `json:"amount_gross"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromVisitPayment(p entities.VisitPayment) VisitPaymentResponse {
	return VisitPaymentResponse{
		PaymentID:    p.ID,
		VisitID:      p.VisitID,
		StudioID:     p.StudioID,
		AmountGross:  p.AmountGross.Cents(),
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}
