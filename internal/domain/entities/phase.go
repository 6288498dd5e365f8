package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PhaseStatus string

const (
	PhaseStatusNotStarted PhaseStatus = "not_started"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusCompleted  PhaseStatus = "completed"
	PhaseStatusOnHold     PhaseStatus = "on_hold"
	PhaseStatusCancelled  PhaseStatus = "cancelled"
)

// FinancialStates carries the phase-level financial aggregates.
// Estimated is derived (committed + actual), never stored independently.
type FinancialStates struct {
	Committed decimal.Decimal `json:"committed"`
	Estimated decimal.Decimal `json:"estimated"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Phase is a project phase with its own optional budget allocation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (project_id-index): project_id
//
// The sum of phase allocations may exceed or undershoot the project budget;
// that gap is reported as "unallocated" during recalculation, not rejected.
type Phase struct {
	ID                   string           `json:"id"`
	ProjectID            string           `json:"project_id"`
	Name                 string           `json:"name"`
	Sequence             int              `json:"sequence"`
	BudgetAllocation     BudgetAllocation `json:"budget_allocation"`
	ActualSpending       CategoryAmounts  `json:"actual_spending"`
	FinancialStates      FinancialStates  `json:"financial_states"`
	CompletionPercentage decimal.Decimal  `json:"completion_percentage"`
	Status               PhaseStatus      `json:"status"`
	Summary              FinancialSummary `json:"summary"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}
