package request

import "encoding/json"

// CheckoutRequest is the optional envelope of the checkout route. Clients may also post the
// provider payload directly.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type CheckoutRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
