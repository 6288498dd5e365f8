package handlers

import (
	"errors"
	"net/http"

	"construfin/internal/usecase"
	"construfin/internal/usecase/interfaces"
	"construfin/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates usecase errors into the HTTP error envelope.
// Validation failures that carry structured detail (insufficient funds,
// blocked removals) surface as 422 so clients can distinguish them from
// malformed requests.
func mapDomainError(err error) *pkg.AppError {
	var funds *usecase.InsufficientFundsError
	if errors.As(err, &funds) {
		return pkg.NewDomainError("INSUFFICIENT_FUNDS", funds.Error(), err, http.StatusUnprocessableEntity)
	}
	var removal *usecase.CapitalRemovalBlockedError
	if errors.As(err, &removal) {
		return pkg.NewDomainError("CAPITAL_REMOVAL_BLOCKED", removal.Error(), err, http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRejectionReason):
		return pkg.NewDomainErrorSimple("MISSING_REJECTION_REASON", "Rejection reason category is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPhaseNotFound):
		return pkg.NewDomainErrorSimple("PHASE_NOT_FOUND", "Phase not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Labour batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFeeNotFound):
		return pkg.NewDomainErrorSimple("FEE_NOT_FOUND", "Professional fee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Professional service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvestorNotFound):
		return pkg.NewDomainErrorSimple("INVESTOR_NOT_FOUND", "Investor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAllocationNotFound):
		return pkg.NewDomainErrorSimple("ALLOCATION_NOT_FOUND", "Investor allocation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingModification):
		return pkg.NewDomainErrorSimple("NO_PENDING_MODIFICATION", "No pending supplier modification", http.StatusConflict)
	case errors.Is(err, usecase.ErrBatchNotPending):
		return pkg.NewDomainErrorSimple("BATCH_NOT_PENDING", "Labour batch is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrFeeNotPayable):
		return pkg.NewDomainErrorSimple("FEE_NOT_PAYABLE", "Professional fee is not approved for payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotRetryable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_RETRYABLE", "Rejection is not retryable", http.StatusConflict)
	case errors.Is(err, usecase.ErrAllocationExceedsTotal):
		return pkg.NewDomainErrorSimple("ALLOCATION_EXCEEDS_TOTAL", "Allocation exceeds investor total invested", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrTransactionConflict):
		return pkg.NewDomainErrorSimple("TRANSACTION_CONFLICT", "Concurrent update detected, retry the operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
