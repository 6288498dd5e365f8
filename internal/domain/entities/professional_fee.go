package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type FeeStatus string

const (
	FeeStatusPending  FeeStatus = "PENDING"
	FeeStatusApproved FeeStatus = "APPROVED"
	FeeStatusPaid     FeeStatus = "PAID"
	FeeStatusRejected FeeStatus = "REJECTED"
)

// ProfessionalFee is a fee owed against a professional service engagement.
// Payment transitions it to PAID and moves its amount from the owning
// service's pending counter to the paid counter, in one transaction.
type ProfessionalFee struct {
	ID          string          `json:"id"`
	ServiceID   string          `json:"service_id"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      FeeStatus       `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProfessionalService carries the paid/pending fee counters for an
// engagement (architect, engineer, surveyor...).
type ProfessionalService struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Name        string          `json:"name"`
	FeesPaid    decimal.Decimal `json:"fees_paid"`
	FeesPending decimal.Decimal `json:"fees_pending"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
