package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LabourEntryInput struct {
	WorkerID      string
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal
}

type CreateLabourBatchInput struct {
	ProjectID      string
	PhaseID        string
	SourceReportID string
	Entries        []LabourEntryInput
}

type ILabourUseCase interface {
	CreateBatch(ctx context.Context, in CreateLabourBatchInput) (entities.LabourBatch, error)
	GetBatchByID(ctx context.Context, id string) (entities.LabourBatch, error)
	ApproveBatch(ctx context.Context, batchID string) (entities.LabourBatch, error)
}

type LabourUseCase struct {
	labour   interfaces.ILabourRepository
	budget   *BudgetValidator
	ledger   interfaces.ISpendingLedgerStore
	tx       interfaces.ITransactionCoordinator
	queue    *RecalcQueue
	audit    interfaces.IAuditRecorder
	notifier interfaces.INotifier
}

var _ ILabourUseCase = (*LabourUseCase)(nil)

func NewLabourUseCase(
	labour interfaces.ILabourRepository,
	budget *BudgetValidator,
	ledgerStore interfaces.ISpendingLedgerStore,
	tx interfaces.ITransactionCoordinator,
	queue *RecalcQueue,
	audit interfaces.IAuditRecorder,
	notifier interfaces.INotifier,
) *LabourUseCase {
	return &LabourUseCase{
		labour:   labour,
		budget:   budget,
		ledger:   ledgerStore,
		tx:       tx,
		queue:    queue,
		audit:    audit,
		notifier: notifier,
	}
}

func (u *LabourUseCase) CreateBatch(ctx context.Context, in CreateLabourBatchInput) (entities.LabourBatch, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.PhaseID = strings.TrimSpace(in.PhaseID)
	if in.ProjectID == "" || in.PhaseID == "" {
		return entities.LabourBatch{}, ErrInvalidID
	}
	if len(in.Entries) == 0 {
		return entities.LabourBatch{}, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	batch := entities.LabourBatch{
		ID:             uuid.NewString(),
		ProjectID:      in.ProjectID,
		PhaseID:        in.PhaseID,
		SourceReportID: strings.TrimSpace(in.SourceReportID),
		Status:         entities.LabourStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	entries := make([]entities.LabourEntry, 0, len(in.Entries))
	for _, e := range in.Entries {
		if strings.TrimSpace(e.WorkerID) == "" {
			return entities.LabourBatch{}, ErrInvalidID
		}
		if e.RegularHours.IsNegative() || e.OvertimeHours.IsNegative() {
			return entities.LabourBatch{}, ErrInvalidQuantity
		}
		if !e.HourlyRate.IsPositive() {
			return entities.LabourBatch{}, ErrInvalidAmount
		}
		overtimeRate := e.OvertimeRate
		if overtimeRate.IsZero() {
			overtimeRate = e.HourlyRate
		}

		totalHours := e.RegularHours.Add(e.OvertimeHours)
		totalCost := e.RegularHours.Mul(e.HourlyRate).Add(e.OvertimeHours.Mul(overtimeRate))
		if !totalCost.IsPositive() {
			return entities.LabourBatch{}, ErrInvalidAmount
		}

		entries = append(entries, entities.LabourEntry{
			ID:            uuid.NewString(),
			BatchID:       batch.ID,
			WorkerID:      strings.TrimSpace(e.WorkerID),
			RegularHours:  e.RegularHours,
			OvertimeHours: e.OvertimeHours,
			HourlyRate:    e.HourlyRate,
			OvertimeRate:  overtimeRate,
			TotalHours:    totalHours,
			TotalCost:     totalCost,
			Status:        entities.LabourStatusPending,
		})
		batch.TotalHours = batch.TotalHours.Add(totalHours)
		batch.TotalCost = batch.TotalCost.Add(totalCost)
	}

	return u.labour.CreateBatch(ctx, batch, entries)
}

func (u *LabourUseCase) GetBatchByID(ctx context.Context, id string) (entities.LabourBatch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LabourBatch{}, ErrInvalidID
	}
	batch, err := u.labour.GetBatchByID(ctx, id)
	if err != nil {
		return entities.LabourBatch{}, err
	}
	if batch.ID == "" {
		return entities.LabourBatch{}, ErrBatchNotFound
	}
	return batch, nil
}

// ApproveBatch commits the batch total into the phase and project spending
// ledgers. Batch status, entry statuses, both ledger adjustments and the
// source-report marker land in one transaction: all of it persists or none
// of it does. Downstream summaries refresh on the background queue.
func (u *LabourUseCase) ApproveBatch(ctx context.Context, batchID string) (entities.LabourBatch, error) {
	batch, err := u.GetBatchByID(ctx, batchID)
	if err != nil {
		return entities.LabourBatch{}, err
	}
	if batch.Status != entities.LabourStatusPending {
		return entities.LabourBatch{}, ErrBatchNotPending
	}

	entries, err := u.labour.ListEntriesByBatchID(ctx, batch.ID)
	if err != nil {
		return entities.LabourBatch{}, err
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.TotalCost)
	}
	if !total.IsPositive() {
		return entities.LabourBatch{}, ErrInvalidAmount
	}

	check, err := u.budget.ValidatePhaseAvailability(ctx, batch.PhaseID, total)
	if err != nil {
		return entities.LabourBatch{}, err
	}
	if !check.IsValid {
		return entities.LabourBatch{}, &InsufficientFundsError{
			Scope:     "phase",
			ScopeID:   batch.PhaseID,
			Available: check.Available,
			Required:  check.Required,
		}
	}

	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.labour.StageBatchStatus(sess, batch.ID, entities.LabourStatusApproved); err != nil {
			return err
		}
		for _, e := range entries {
			if err := u.labour.StageEntryStatus(sess, e.ID, entities.LabourStatusApproved); err != nil {
				return err
			}
		}
		if err := u.ledger.AdjustPhaseSpending(sess, batch.PhaseID, entities.CategoryLabour, total, entities.DirectionAdd); err != nil {
			return err
		}
		if err := u.ledger.AdjustProjectSpending(sess, batch.ProjectID, entities.CategoryLabour, total, entities.DirectionAdd); err != nil {
			return err
		}
		if batch.SourceReportID != "" {
			return u.labour.StageMarkReportConverted(sess, batch.SourceReportID)
		}
		return nil
	})
	if err != nil {
		return entities.LabourBatch{}, err
	}

	approved := batch
	approved.Status = entities.LabourStatusApproved
	approved.TotalCost = total
	approved.UpdatedAt = time.Now().UTC()

	u.recordAudit(ctx, batch, approved)
	u.notify(ctx, approved)

	if u.queue != nil {
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopePhase, ID: batch.PhaseID})
		u.queue.Enqueue(RecalcTask{Scope: RecalcScopeProject, ID: batch.ProjectID})
	}
	return approved, nil
}

func (u *LabourUseCase) recordAudit(ctx context.Context, before, after entities.LabourBatch) {
	if u.audit == nil {
		return
	}
	b, _ := json.Marshal(before)
	a, _ := json.Marshal(after)
	entry := entities.AuditEntry{
		Actor:      "api",
		Action:     "labour_batch.approve",
		EntityType: "labour_batch",
		EntityID:   after.ID,
		Before:     string(b),
		After:      string(a),
		RecordedAt: time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, entry); err != nil {
		log.Printf("[labour][usecase] audit record failed batch_id=%s err=%v", after.ID, err)
	}
}

func (u *LabourUseCase) notify(ctx context.Context, batch entities.LabourBatch) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, entities.NotificationEvent{
		Kind:       "labour_batch_approved",
		EntityType: "labour_batch",
		EntityID:   batch.ID,
		Message:    "labour batch approved and spend recorded",
	}); err != nil {
		log.Printf("[labour][usecase] notification failed batch_id=%s err=%v", batch.ID, err)
	}
}
