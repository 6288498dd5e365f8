package usecase

import (
	"context"
	"fmt"
	"strings"

	"construfin/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// CapitalRemovalWarnRatio triggers an advisory message when a permitted
// removal would leave less than this share of the previously available
// capital. Product heuristic carried over as-is; advisory only, never
// blocking.
var CapitalRemovalWarnRatio = decimal.NewFromFloat(0.20)

// AvailabilityResult is the outcome of a ceiling check. ConstraintNotSet
// means no ceiling is configured for the scope: the spend is permitted and
// only the blocking check was skipped.
type AvailabilityResult struct {
	IsValid          bool            `json:"is_valid"`
	Available        decimal.Decimal `json:"available"`
	Required         decimal.Decimal `json:"required"`
	ConstraintNotSet bool            `json:"constraint_not_set"`
}

// RemovalResult is the outcome of a capital-removal check. Removal
// validation always runs; it protects against double-obligation, not
// against ceiling overrun.
type RemovalResult struct {
	CanRemove             bool            `json:"can_remove"`
	CurrentAvailable      decimal.Decimal `json:"current_available"`
	AvailableAfterRemoval decimal.Decimal `json:"available_after_removal"`
	Message               string          `json:"message,omitempty"`
}

// CapitalValidator checks proposed spends and capital removals against a
// project's allocated investor capital.
type CapitalValidator struct {
	projects interfaces.IProjectRepository
}

func NewCapitalValidator(projects interfaces.IProjectRepository) *CapitalValidator {
	return &CapitalValidator{projects: projects}
}

func (v *CapitalValidator) ValidateAvailability(ctx context.Context, projectID string, proposed decimal.Decimal) (AvailabilityResult, error) {
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

	if !p.Capital.IsSet() {
		return AvailabilityResult{IsValid: true, ConstraintNotSet: true, Required: proposed}, nil
	}

	available := p.CapitalAvailable()
	return AvailabilityResult{
		IsValid:   proposed.LessThanOrEqual(available),
		Available: available,
		Required:  proposed,
	}, nil
}

func (v *CapitalValidator) ValidateCapitalRemoval(ctx context.Context, projectID string, amountToRemove decimal.Decimal) (RemovalResult, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return RemovalResult{}, ErrInvalidID
	}
	if !amountToRemove.IsPositive() {
		return RemovalResult{}, ErrInvalidAmount
	}

	p, err := v.projects.GetByID(ctx, projectID)
	if err != nil {
		return RemovalResult{}, err
	}
	if p.ID == "" {
		return RemovalResult{}, ErrProjectNotFound
	}

	// Obligated money counts even when no capital ceiling is configured.
	obligated := p.CommittedCost.Total().Add(p.ActualSpending.Total())
	currentAvailable := p.Capital.Amount().Sub(obligated)
	availableAfter := currentAvailable.Sub(amountToRemove)

	res := RemovalResult{
		CurrentAvailable:      currentAvailable,
		AvailableAfterRemoval: availableAfter,
	}

	if availableAfter.IsNegative() {
		res.CanRemove = false
		res.Message = fmt.Sprintf("removal of %s would under-fund committed spend; only %s is uncommitted",
			amountToRemove, currentAvailable)
		return res, nil
	}

	res.CanRemove = true
	if currentAvailable.IsPositive() && availableAfter.LessThan(currentAvailable.Mul(CapitalRemovalWarnRatio)) {
		res.Message = fmt.Sprintf("removal leaves %s available, below %s%% of current capital headroom",
			availableAfter, CapitalRemovalWarnRatio.Mul(decimal.NewFromInt(100)))
	}
	return res, nil
}
