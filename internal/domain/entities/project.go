package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the top-level financial scope.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Budget is optional; Configured=false means no ceiling is enforced.
//   - Capital is the total investor capital allocated to the project; it is
//     unset until the first allocation lands.
//   - CommittedCost and ActualSpending are mutated only by the spending
//     ledger store inside a transaction session, never by direct overwrite.
type Project struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Budget         BudgetAllocation `json:"budget"`
	Capital        Ceiling          `json:"-"`
	CommittedCost  CategoryAmounts  `json:"committed_cost"`
	ActualSpending CategoryAmounts  `json:"actual_spending"`
	Summary        FinancialSummary `json:"summary"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CapitalAvailable is the capital left after committed and actual spend.
// Only meaningful when Capital is set.
func (p Project) CapitalAvailable() decimal.Decimal {
	return p.Capital.Amount().
		Sub(p.CommittedCost.Total()).
		Sub(p.ActualSpending.Total())
}
