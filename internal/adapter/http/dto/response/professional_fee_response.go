package response

import (
	"time"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProfessionalFeeResponse struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service_id"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func FromProfessionalFee(fee entities.ProfessionalFee) ProfessionalFeeResponse {
	return ProfessionalFeeResponse{
		ID:          fee.ID,
		ServiceID:   fee.ServiceID,
		Description: fee.Description,
		Amount:      fee.Amount,
		Status:      string(fee.Status),
		CreatedAt:   fee.CreatedAt,
		UpdatedAt:   fee.UpdatedAt,
	}
}
