package entities

import "github.com/shopspring/decimal"

// RiskLevel classifies budget utilization. Thresholds are fixed policy
// constants in the ledger package.

type RiskLevel string

const (
	RiskOnTrack    RiskLevel = "on_track"
	RiskAtRisk     RiskLevel = "at_risk"
	RiskOverBudget RiskLevel = "over_budget"
)

type RiskSeverity string

const (
	RiskSeverityMedium RiskSeverity = "medium"
	RiskSeverityHigh   RiskSeverity = "high"
)

// RiskIndicator is a per-phase finding surfaced by project recalculation.
type RiskIndicator struct {
	PhaseID  string       `json:"phase_id"`
	Kind     string       `json:"kind"`
	Severity RiskSeverity `json:"severity"`
	Detail   string       `json:"detail"`
}

// FinancialSummary is the derived summary written back by recalculation.
//
// Variance, UtilizationPct and Remaining are nil when no budget ceiling is
// configured for the scope. Negative Remaining is a valid, reportable state.
type FinancialSummary struct {
	ActualTotal       decimal.Decimal  `json:"actual_total"`
	CommittedTotal    decimal.Decimal  `json:"committed_total"`
	Variance          *decimal.Decimal `json:"variance"`
	UtilizationPct    *decimal.Decimal `json:"utilization_percentage"`
	Remaining         *decimal.Decimal `json:"remaining"`
	RiskLevel         RiskLevel        `json:"risk_level"`
	UnallocatedBudget *decimal.Decimal `json:"unallocated_budget,omitempty"`
	Risks             []RiskIndicator  `json:"risks,omitempty"`
	ForecastAvailable bool             `json:"forecast_available"`
	ForecastTotal     *decimal.Decimal `json:"forecast_total,omitempty"`
}
