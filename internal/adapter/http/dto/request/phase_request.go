package request

import "github.com/shopspring/decimal"

type CreatePhaseRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Sequence  int    `json:"sequence"`
}

type SetAllocationRequest struct {
	Amounts CategoryAmountsRequest `json:"amounts"`
}

type UpdatePhaseStatusRequest struct {
	Status               string          `json:"status" binding:"required"`
	CompletionPercentage decimal.Decimal `json:"completion_percentage"`
}
