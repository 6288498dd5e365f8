package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreateFeeRequest struct {
	ServiceID   string          `json:"service_id" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// PayFeeRequest carries the provider-specific payment payload verbatim; the
// gateway layer is responsible for interpreting it.
type PayFeeRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}
