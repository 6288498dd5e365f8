package interfaces

import (
	"context"
	"errors"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionConflict wraps a store-level transaction cancellation.
	// The caller must retry the whole logical operation, not just the
	// failed sub-step.
	ErrTransactionConflict = errors.New("transaction conflict")

	// ErrUnknownCategory marks a ledger adjustment against a category key
	// outside the budget schema. Configuration error, never dropped.
	ErrUnknownCategory = errors.New("unknown spending category")

	// ErrInvalidSession marks a session handle not produced by the
	// coordinator implementation in use.
	ErrInvalidSession = errors.New("invalid transaction session")
)

// TxSession is an opaque handle to one atomic unit of work. Writes staged on
// a session all persist or none do.
type TxSession interface {
	TxSession()
}

// ITransactionCoordinator runs fn against a fresh session and commits the
// staged writes as a single atomic set. Any error from fn discards the
// session and propagates unmodified; a commit conflict surfaces wrapped in
// ErrTransactionConflict.
type ITransactionCoordinator interface {
	Run(ctx context.Context, fn func(sess TxSession) error) error
}

// ISpendingLedgerStore is the only permitted mutator of phase/project
// spending aggregates. Every adjustment stages an increment of both the
// category field and the running total, exactly once per call.
type ISpendingLedgerStore interface {
	AdjustPhaseSpending(sess TxSession, phaseID string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error
	AdjustPhaseCommitted(sess TxSession, phaseID string, amount decimal.Decimal, dir entities.AdjustDirection) error
	AdjustProjectSpending(sess TxSession, projectID string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error
	AdjustProjectCommitted(sess TxSession, projectID string, category entities.Category, amount decimal.Decimal, dir entities.AdjustDirection) error
}
