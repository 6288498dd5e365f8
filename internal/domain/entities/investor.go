package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investor holds the total capital an investor has committed across all
// projects. The sum of their allocations may never exceed it.
type Investor struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvestorAllocation assigns part of an investor's capital to a project.
// Decreasing Amount is validated against the project's committed/spent
// totals first: capital already obligated cannot be removed.
type InvestorAllocation struct {
	ID             string           `json:"id"`
	InvestorID     string           `json:"investor_id"`
	ProjectID      string           `json:"project_id"`
	Amount         decimal.Decimal  `json:"amount"`
	LoanPercentage *decimal.Decimal `json:"loan_percentage,omitempty"`
	AllocatedAt    time.Time        `json:"allocated_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
