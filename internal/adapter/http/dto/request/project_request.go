package request

import (
	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryAmountsRequest mirrors the budget schema. Omitted categories default
// to zero, which is a valid configured amount.
type CategoryAmountsRequest struct {
	Materials       decimal.Decimal `json:"materials"`
	Labour          decimal.Decimal `json:"labour"`
	Equipment       decimal.Decimal `json:"equipment"`
	Subcontractors  decimal.Decimal `json:"subcontractors"`
	Preconstruction decimal.Decimal `json:"preconstruction"`
	Indirect        decimal.Decimal `json:"indirect"`
	Contingency     decimal.Decimal `json:"contingency"`
}

func (r CategoryAmountsRequest) ToCategoryAmounts() entities.CategoryAmounts {
	return entities.CategoryAmounts{
		Materials:       r.Materials,
		Labour:          r.Labour,
		Equipment:       r.Equipment,
		Subcontractors:  r.Subcontractors,
		Preconstruction: r.Preconstruction,
		Indirect:        r.Indirect,
		Contingency:     r.Contingency,
	}
}

type SetBudgetRequest struct {
	Amounts CategoryAmountsRequest `json:"amounts"`
}

// ValidateSpendRequest asks whether a proposed spend fits the remaining
// capital or budget of its scope.
type ValidateSpendRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ValidateRemovalRequest asks whether capital can be withdrawn from a project
// without under-funding committed spend.
type ValidateRemovalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}
