package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AllocateCapitalInput struct {
	InvestorID     string
	ProjectID      string
	Amount         decimal.Decimal
	LoanPercentage *decimal.Decimal
}

// UpdateAllocationResult reports the removal validation that ran when the
// amount decreased; nil for increases.
type UpdateAllocationResult struct {
	Allocation entities.InvestorAllocation
	Removal    *RemovalResult
}

type IInvestorAllocationUseCase interface {
	Allocate(ctx context.Context, in AllocateCapitalInput) (entities.InvestorAllocation, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.InvestorAllocation, error)
	UpdateAmount(ctx context.Context, allocationID string, newAmount decimal.Decimal) (UpdateAllocationResult, error)
}

type InvestorAllocationUseCase struct {
	investors interfaces.IInvestorRepository
	projects  interfaces.IProjectRepository
	capital   *CapitalValidator
	tx        interfaces.ITransactionCoordinator
	queue     *RecalcQueue
}

var _ IInvestorAllocationUseCase = (*InvestorAllocationUseCase)(nil)

func NewInvestorAllocationUseCase(
	investors interfaces.IInvestorRepository,
	projects interfaces.IProjectRepository,
	capital *CapitalValidator,
	tx interfaces.ITransactionCoordinator,
	queue *RecalcQueue,
) *InvestorAllocationUseCase {
	return &InvestorAllocationUseCase{
		investors: investors,
		projects:  projects,
		capital:   capital,
		tx:        tx,
		queue:     queue,
	}
}

// Allocate assigns investor capital to a project. The allocation row and the
// project's capital total move together in one transaction.
func (u *InvestorAllocationUseCase) Allocate(ctx context.Context, in AllocateCapitalInput) (entities.InvestorAllocation, error) {
	in.InvestorID = strings.TrimSpace(in.InvestorID)
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	if in.InvestorID == "" || in.ProjectID == "" {
		return entities.InvestorAllocation{}, ErrInvalidID
	}
	if !in.Amount.IsPositive() {
		return entities.InvestorAllocation{}, ErrInvalidAmount
	}

	investor, err := u.investors.GetByID(ctx, in.InvestorID)
	if err != nil {
		return entities.InvestorAllocation{}, err
	}
	if investor.ID == "" {
		return entities.InvestorAllocation{}, ErrInvestorNotFound
	}

	if err := u.checkInvestorHeadroom(ctx, investor, in.Amount, ""); err != nil {
		return entities.InvestorAllocation{}, err
	}

	project, err := u.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return entities.InvestorAllocation{}, err
	}
	if project.ID == "" {
		return entities.InvestorAllocation{}, ErrProjectNotFound
	}

	now := time.Now().UTC()
	alloc := entities.InvestorAllocation{
		ID:             uuid.NewString(),
		InvestorID:     in.InvestorID,
		ProjectID:      in.ProjectID,
		Amount:         in.Amount,
		LoanPercentage: in.LoanPercentage,
		AllocatedAt:    now,
		UpdatedAt:      now,
	}

	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.investors.StagePutAllocation(sess, alloc); err != nil {
			return err
		}
		return u.projects.StageAdjustCapital(sess, in.ProjectID, in.Amount)
	})
	if err != nil {
		return entities.InvestorAllocation{}, err
	}

	if u.queue != nil {
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: in.ProjectID})
	}
	return alloc, nil
}

// ListByProjectID reports which investors fund a project and with how much.
func (u *InvestorAllocationUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.InvestorAllocation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidID
	}
	return u.investors.ListAllocationsByProjectID(ctx, projectID)
}

// UpdateAmount changes an allocation. Decreases are capital removals and are
// always validated against the project's committed/spent totals first:
// capital already obligated cannot be pulled back.
func (u *InvestorAllocationUseCase) UpdateAmount(ctx context.Context, allocationID string, newAmount decimal.Decimal) (UpdateAllocationResult, error) {
	allocationID = strings.TrimSpace(allocationID)
	if allocationID == "" {
		return UpdateAllocationResult{}, ErrInvalidID
	}
	if !newAmount.IsPositive() {
		return UpdateAllocationResult{}, ErrInvalidAmount
	}

	alloc, err := u.investors.GetAllocationByID(ctx, allocationID)
	if err != nil {
		return UpdateAllocationResult{}, err
	}
	if alloc.ID == "" {
		return UpdateAllocationResult{}, ErrAllocationNotFound
	}

	delta := newAmount.Sub(alloc.Amount)
	if delta.IsZero() {
		return UpdateAllocationResult{Allocation: alloc}, nil
	}

	var removal *RemovalResult
	if delta.IsNegative() {
		res, err := u.capital.ValidateCapitalRemoval(ctx, alloc.ProjectID, delta.Neg())
		if err != nil {
			return UpdateAllocationResult{}, err
		}
		if !res.CanRemove {
			return UpdateAllocationResult{}, &CapitalRemovalBlockedError{
				ProjectID:        alloc.ProjectID,
				Requested:        delta.Neg(),
				CurrentAvailable: res.CurrentAvailable,
			}
		}
		if res.Message != "" {
			log.Printf("[investor][usecase] capital removal warning allocation_id=%s: %s", alloc.ID, res.Message)
		}
		removal = &res
	} else {
		investor, err := u.investors.GetByID(ctx, alloc.InvestorID)
		if err != nil {
			return UpdateAllocationResult{}, err
		}
		if investor.ID == "" {
			return UpdateAllocationResult{}, ErrInvestorNotFound
		}
		if err := u.checkInvestorHeadroom(ctx, investor, newAmount, alloc.ID); err != nil {
			return UpdateAllocationResult{}, err
		}
	}

	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.investors.StageAllocationAmount(sess, alloc.ID, newAmount); err != nil {
			return err
		}
		return u.projects.StageAdjustCapital(sess, alloc.ProjectID, delta)
	})
	if err != nil {
		return UpdateAllocationResult{}, err
	}

	updated := alloc
	updated.Amount = newAmount
	updated.UpdatedAt = time.Now().UTC()

	if u.queue != nil {
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: alloc.ProjectID})
	}
	return UpdateAllocationResult{Allocation: updated, Removal: removal}, nil
}

// checkInvestorHeadroom enforces: sum of an investor's allocations never
// exceeds their total invested. excludeID skips the allocation being
// rewritten.
func (u *InvestorAllocationUseCase) checkInvestorHeadroom(ctx context.Context, investor entities.Investor, extra decimal.Decimal, excludeID string) error {
	allocations, err := u.investors.ListAllocationsByInvestorID(ctx, investor.ID)
	if err != nil {
		return err
	}
	allocated := decimal.Zero
	for _, a := range allocations {
		if a.ID == excludeID {
			continue
		}
		allocated = allocated.Add(a.Amount)
	}
	if allocated.Add(extra).GreaterThan(investor.TotalInvested) {
		return ErrAllocationExceedsTotal
	}
	return nil
}
