package request

import "github.com/shopspring/decimal"

type AllocateCapitalRequest struct {
	InvestorID     string           `json:"investor_id" binding:"required"`
	ProjectID      string           `json:"project_id" binding:"required"`
	Amount         decimal.Decimal  `json:"amount" binding:"required"`
	LoanPercentage *decimal.Decimal `json:"loan_percentage"`
}

type UpdateAllocationRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
