// Package ledger holds the pure financial primitives: totals, variances,
// utilization and risk classification. No I/O, no side effects; everything
// here is safe to run inline inside a transaction.
package ledger

import (
	"fmt"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Fixed policy constants. Percentages run 0-100+, unbounded above 100 to
// express over-budget magnitude.
var (
	OverBudgetUtilizationPct = decimal.NewFromInt(100)
	AtRiskUtilizationPct     = decimal.NewFromInt(80)
	PhaseVarianceRiskPct     = decimal.NewFromInt(15)

	hundred = decimal.NewFromInt(100)
)

// Variance is actual minus budget. Nil when the budget ceiling is unset.
func Variance(actualTotal decimal.Decimal, budget entities.Ceiling) *decimal.Decimal {
	if !budget.IsSet() {
		return nil
	}
	v := actualTotal.Sub(budget.Amount())
	return &v
}

// Utilization is actual spend as a percentage of the budget ceiling.
// Nil when the ceiling is unset or zero.
func Utilization(actualTotal decimal.Decimal, budget entities.Ceiling) *decimal.Decimal {
	if !budget.IsSet() || !budget.Amount().IsPositive() {
		return nil
	}
	u := actualTotal.Div(budget.Amount()).Mul(hundred)
	return &u
}

// Remaining is budget minus actual minus committed. It can go negative;
// negative remaining is a reportable state, not an error. Nil when the
// ceiling is unset.
func Remaining(budget entities.Ceiling, actualTotal, committedTotal decimal.Decimal) *decimal.Decimal {
	if !budget.IsSet() {
		return nil
	}
	r := budget.Amount().Sub(actualTotal).Sub(committedTotal)
	return &r
}

// Risk classifies a utilization percentage. A nil utilization (no ceiling)
// is on_track by definition.
func Risk(utilizationPct *decimal.Decimal) entities.RiskLevel {
	if utilizationPct == nil {
		return entities.RiskOnTrack
	}
	switch {
	case utilizationPct.GreaterThan(OverBudgetUtilizationPct):
		return entities.RiskOverBudget
	case utilizationPct.GreaterThan(AtRiskUtilizationPct):
		return entities.RiskAtRisk
	default:
		return entities.RiskOnTrack
	}
}

// PhaseRiskIndicators derives the per-phase findings aggregated into the
// project summary: variance above 15% of the allocation, and utilization
// above 80% on a phase that is not completed.
func PhaseRiskIndicators(ph entities.Phase) []entities.RiskIndicator {
	budget := ph.BudgetAllocation.Ceiling()
	if !budget.IsSet() || !budget.Amount().IsPositive() {
		return nil
	}

	var out []entities.RiskIndicator
	actual := ph.ActualSpending.Total()

	variancePct := actual.Sub(budget.Amount()).Div(budget.Amount()).Mul(hundred)
	if variancePct.GreaterThan(PhaseVarianceRiskPct) {
		out = append(out, entities.RiskIndicator{
			PhaseID:  ph.ID,
			Kind:     "variance_exceeded",
			Severity: entities.RiskSeverityMedium,
			Detail:   fmt.Sprintf("phase variance %s%% above allocation", variancePct.Round(2)),
		})
	}

	utilization := actual.Div(budget.Amount()).Mul(hundred)
	if utilization.GreaterThan(AtRiskUtilizationPct) && ph.Status != entities.PhaseStatusCompleted {
		out = append(out, entities.RiskIndicator{
			PhaseID:  ph.ID,
			Kind:     "high_utilization",
			Severity: entities.RiskSeverityMedium,
			Detail:   fmt.Sprintf("utilization %s%% on a phase still in %s", utilization.Round(2), ph.Status),
		})
	}
	return out
}
