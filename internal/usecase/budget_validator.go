package usecase

import (
	"context"
	"strings"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// BudgetValidator checks proposed spends against phase and project budget
// ceilings. Same optional-constraint policy as capital: an unconfigured
// budget never blocks, it only skips the ceiling check.
type BudgetValidator struct {
	projects interfaces.IProjectRepository
	phases   interfaces.IPhaseRepository
}

func NewBudgetValidator(projects interfaces.IProjectRepository, phases interfaces.IPhaseRepository) *BudgetValidator {
	return &BudgetValidator{projects: projects, phases: phases}
}

func (v *BudgetValidator) ValidatePhaseAvailability(ctx context.Context, phaseID string, proposed decimal.Decimal) (AvailabilityResult, error) {
	phaseID = strings.TrimSpace(phaseID)
	if phaseID == "" {
		return AvailabilityResult{}, ErrInvalidID
	}

	ph, err := v.phases.GetByID(ctx, phaseID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	if ph.ID == "" {
		return AvailabilityResult{}, ErrPhaseNotFound
	}

	return availabilityAgainst(ph.BudgetAllocation.Ceiling(),
		ph.ActualSpending.Total().Add(ph.FinancialStates.Committed), proposed), nil
}

func (v *BudgetValidator) ValidateProjectAvailability(ctx context.Context, projectID string, proposed decimal.Decimal) (AvailabilityResult, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return AvailabilityResult{}, ErrInvalidID
	}

	p, err := v.projects.GetByID(ctx, projectID)
	if err != nil {
		return AvailabilityResult{}, err
	}
	if p.ID == "" {
		return AvailabilityResult{}, ErrProjectNotFound
	}

	return availabilityAgainst(p.Budget.Ceiling(),
		p.ActualSpending.Total().Add(p.CommittedCost.Total()), proposed), nil
}

func availabilityAgainst(ceiling entities.Ceiling, spent, proposed decimal.Decimal) AvailabilityResult {
	if !ceiling.IsSet() {
		return AvailabilityResult{IsValid: true, ConstraintNotSet: true, Required: proposed}
	}
	available := ceiling.Amount().Sub(spent)
	return AvailabilityResult{
		IsValid:   proposed.LessThanOrEqual(available),
		Available: available,
		Required:  proposed,
	}
}
