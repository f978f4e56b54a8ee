package request

import "encoding/json"

// VisitPaymentCreateRequest is the payload of the "charge visit" route.
//
// `mp_payload` is forwarded to Mercado Pago after amount and reference are
// filled in from the visit. A bare payload without the envelope is accepted too.
type VisitPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
