package response

import (
	"time"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PhaseResponse struct {
	ID                   string                    `json:"id"`
	ProjectID            string                    `json:"project_id"`
	Name                 string                    `json:"name"`
	Sequence             int                       `json:"sequence"`
	AllocationConfigured bool                      `json:"allocation_configured"`
	BudgetAllocation     entities.CategoryAmounts  `json:"budget_allocation"`
	ActualSpending       entities.CategoryAmounts  `json:"actual_spending"`
	ActualTotal          decimal.Decimal           `json:"actual_total"`
	CommittedCost        decimal.Decimal           `json:"committed_cost"`
	EstimatedCost        decimal.Decimal           `json:"estimated_cost"`
	RemainingBudget      decimal.Decimal           `json:"remaining_budget"`
	CompletionPercentage decimal.Decimal           `json:"completion_percentage"`
	Status               string                    `json:"status"`
	Summary              entities.FinancialSummary `json:"summary"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

func FromPhase(ph entities.Phase) PhaseResponse {
	return PhaseResponse{
		ID:                   ph.ID,
		ProjectID:            ph.ProjectID,
		Name:                 ph.Name,
		Sequence:             ph.Sequence,
		AllocationConfigured: ph.BudgetAllocation.Configured,
		BudgetAllocation:     ph.BudgetAllocation.Amounts,
		ActualSpending:       ph.ActualSpending,
		ActualTotal:          ph.ActualSpending.Total(),
		CommittedCost:        ph.FinancialStates.Committed,
		EstimatedCost:        ph.FinancialStates.Estimated,
		RemainingBudget:      ph.FinancialStates.Remaining,
		CompletionPercentage: ph.CompletionPercentage,
		Status:               string(ph.Status),
		Summary:              ph.Summary,
		CreatedAt:            ph.CreatedAt,
		UpdatedAt:            ph.UpdatedAt,
	}
}

func FromPhases(phases []entities.Phase) []PhaseResponse {
	out := make([]PhaseResponse, 0, len(phases))
	for _, ph := range phases {
		out = append(out, FromPhase(ph))
	}
	return out
}
