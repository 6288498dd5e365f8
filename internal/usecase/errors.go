package usecase

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrPhaseNotFound      = errors.New("phase not found")
	ErrOrderNotFound      = errors.New("purchase order not found")
	ErrBatchNotFound      = errors.New("labour batch not found")
	ErrFeeNotFound        = errors.New("professional fee not found")
	ErrServiceNotFound    = errors.New("professional service not found")
	ErrInvestorNotFound   = errors.New("investor not found")
	ErrAllocationNotFound = errors.New("investor allocation not found")

	ErrInvalidID               = errors.New("invalid id")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrMissingRejectionReason  = errors.New("rejection reason category is required")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrNoPendingModification   = errors.New("no pending supplier modification")
	ErrBatchNotPending         = errors.New("labour batch is not pending")
	ErrFeeNotPayable           = errors.New("professional fee is not approved for payment")
	ErrOrderNotRetryable       = errors.New("purchase order rejection is not retryable")
	ErrAllocationExceedsTotal  = errors.New("allocation exceeds investor total invested")
)

// InsufficientFundsError reports a configured ceiling (budget or capital)
// that a proposed spend would exceed. Available and Required feed the
// user-facing message; it never occurs when the ceiling is unconfigured.
type InsufficientFundsError struct {
	Scope     string
	ScopeID   string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for %s %s: required %s, available %s",
		e.Scope, e.ScopeID, e.Required, e.Available)
}

// CapitalRemovalBlockedError reports a capital decrease that would under-fund
// spend already committed in the target project. Always enforced, regardless
// of whether the capital ceiling itself is configured.
type CapitalRemovalBlockedError struct {
	ProjectID        string
	Requested        decimal.Decimal
	CurrentAvailable decimal.Decimal
}

func (e *CapitalRemovalBlockedError) Error() string {
	return fmt.Sprintf("cannot remove %s from project %s: only %s is uncommitted",
		e.Requested, e.ProjectID, e.CurrentAvailable)
}
