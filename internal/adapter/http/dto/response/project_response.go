package response

import (
	"time"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProjectResponse struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	BudgetConfigured bool                      `json:"budget_configured"`
	Budget           entities.CategoryAmounts  `json:"budget"`
	Capital          *decimal.Decimal          `json:"capital"`
	CommittedCost    entities.CategoryAmounts  `json:"committed_cost"`
	CommittedTotal   decimal.Decimal           `json:"committed_total"`
	ActualSpending   entities.CategoryAmounts  `json:"actual_spending"`
	ActualTotal      decimal.Decimal           `json:"actual_total"`
	Summary          entities.FinancialSummary `json:"summary"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		BudgetConfigured: p.Budget.Configured,
		Budget:           p.Budget.Amounts,
		CommittedCost:    p.CommittedCost,
		CommittedTotal:   p.CommittedCost.Total(),
		ActualSpending:   p.ActualSpending,
		ActualTotal:      p.ActualSpending.Total(),
		Summary:          p.Summary,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.Capital.IsSet() {
		capital := p.Capital.Amount()
		resp.Capital = &capital
	}
	return resp
}
