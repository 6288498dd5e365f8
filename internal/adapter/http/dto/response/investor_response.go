package response

import (
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase"

	"github.com/shopspring/decimal"
)

type InvestorAllocationResponse struct {
	ID             string           `json:"id"`
	InvestorID     string           `json:"investor_id"`
	ProjectID      string           `json:"project_id"`
	Amount         decimal.Decimal  `json:"amount"`
	LoanPercentage *decimal.Decimal `json:"loan_percentage,omitempty"`
	AllocatedAt    time.Time        `json:"allocated_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromInvestorAllocation(alloc entities.InvestorAllocation) InvestorAllocationResponse {
	return InvestorAllocationResponse{
		ID:             alloc.ID,
		InvestorID:     alloc.InvestorID,
		ProjectID:      alloc.ProjectID,
		Amount:         alloc.Amount,
		LoanPercentage: alloc.LoanPercentage,
		AllocatedAt:    alloc.AllocatedAt,
		UpdatedAt:      alloc.UpdatedAt,
	}
}

func FromInvestorAllocations(allocs []entities.InvestorAllocation) []InvestorAllocationResponse {
	out := make([]InvestorAllocationResponse, 0, len(allocs))
	for _, alloc := range allocs {
		out = append(out, FromInvestorAllocation(alloc))
	}
	return out
}

// UpdateAllocationResponse reports the removal validation that ran when the
// amount decreased; removal is omitted for increases.
type UpdateAllocationResponse struct {
	Allocation InvestorAllocationResponse `json:"allocation"`
	Removal    *usecase.RemovalResult     `json:"removal,omitempty"`
}

func FromUpdateAllocationResult(res usecase.UpdateAllocationResult) UpdateAllocationResponse {
	return UpdateAllocationResponse{
		Allocation: FromInvestorAllocation(res.Allocation),
		Removal:    res.Removal,
	}
}
