package usecase

import (
	"context"
	"log"
	"strings"

	"construfin/internal/domain/entities"
	"construfin/internal/domain/ledger"
	"construfin/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IRecalculationUseCase re-derives the financial summary of a scope from its
// currently persisted components and writes it back. Idempotent: two calls
// with no intervening mutation produce identical summaries.
type IRecalculationUseCase interface {
	RecalculateProject(ctx context.Context, projectID string) (entities.FinancialSummary, error)
	RecalculatePhase(ctx context.Context, phaseID string) (entities.FinancialSummary, error)
}

type RecalculationUseCase struct {
	projects interfaces.IProjectRepository
	phases   interfaces.IPhaseRepository
	forecast interfaces.IForecastProvider
}

var _ IRecalculationUseCase = (*RecalculationUseCase)(nil)

// NewRecalculationUseCase wires the engine. forecast may be nil; project
// recalculation then reports the forecast as unavailable.
func NewRecalculationUseCase(projects interfaces.IProjectRepository, phases interfaces.IPhaseRepository, forecast interfaces.IForecastProvider) *RecalculationUseCase {
	return &RecalculationUseCase{projects: projects, phases: phases, forecast: forecast}
}

func (u *RecalculationUseCase) RecalculatePhase(ctx context.Context, phaseID string) (entities.FinancialSummary, error) {
	phaseID = strings.TrimSpace(phaseID)
	if phaseID == "" {
		return entities.FinancialSummary{}, ErrInvalidID
	}

	ph, err := u.phases.GetByID(ctx, phaseID)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	if ph.ID == "" {
		return entities.FinancialSummary{}, ErrPhaseNotFound
	}

	summary, states := derivePhase(ph)
	if err := u.phases.UpdateSummary(ctx, ph.ID, states, summary); err != nil {
		return entities.FinancialSummary{}, err
	}
	return summary, nil
}

func (u *RecalculationUseCase) RecalculateProject(ctx context.Context, projectID string) (entities.FinancialSummary, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.FinancialSummary{}, ErrInvalidID
	}

	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.FinancialSummary{}, err
	}
	if p.ID == "" {
		return entities.FinancialSummary{}, ErrProjectNotFound
	}

	phases, err := u.phases.ListByProjectID(ctx, projectID)
	if err != nil {
		return entities.FinancialSummary{}, err
	}

	actual := p.ActualSpending.Total()
	committed := p.CommittedCost.Total()
	budget := p.Budget.Ceiling()

	utilization := ledger.Utilization(actual, budget)
	summary := entities.FinancialSummary{
		ActualTotal:    actual,
		CommittedTotal: committed,
		Variance:       ledger.Variance(actual, budget),
		UtilizationPct: utilization,
		Remaining:      ledger.Remaining(budget, actual, committed),
		RiskLevel:      ledger.Risk(utilization),
	}

	for _, ph := range phases {
		summary.Risks = append(summary.Risks, ledger.PhaseRiskIndicators(ph)...)
	}

	if budget.IsSet() {
		allocatedTotal := decimal.Zero
		for _, ph := range phases {
			if ph.BudgetAllocation.Configured {
				allocatedTotal = allocatedTotal.Add(ph.BudgetAllocation.Amounts.Total())
			}
		}
		unallocated := budget.Amount().Sub(allocatedTotal)
		summary.UnallocatedBudget = &unallocated
	}

	// Forecast is a degrading collaborator: its failure never aborts the
	// recalculation.
	if u.forecast != nil {
		projected, ferr := u.forecast.ProjectedSpend(ctx, projectID)
		if ferr != nil {
			log.Printf("[recalc][usecase] forecast unavailable project_id=%s err=%v", projectID, ferr)
		} else {
			summary.ForecastAvailable = true
			summary.ForecastTotal = &projected
		}
	}

	if err := u.projects.UpdateSummary(ctx, p.ID, summary); err != nil {
		return entities.FinancialSummary{}, err
	}
	return summary, nil
}

func derivePhase(ph entities.Phase) (entities.FinancialSummary, entities.FinancialStates) {
	actual := ph.ActualSpending.Total()
	committed := ph.FinancialStates.Committed
	budget := ph.BudgetAllocation.Ceiling()

	utilization := ledger.Utilization(actual, budget)
	remaining := ledger.Remaining(budget, actual, committed)

	summary := entities.FinancialSummary{
		ActualTotal:    actual,
		CommittedTotal: committed,
		Variance:       ledger.Variance(actual, budget),
		UtilizationPct: utilization,
		Remaining:      remaining,
		RiskLevel:      ledger.Risk(utilization),
	}

	states := entities.FinancialStates{
		Committed: committed,
		Estimated: actual.Add(committed),
	}
	if remaining != nil {
		states.Remaining = *remaining
	}
	return summary, states
}
