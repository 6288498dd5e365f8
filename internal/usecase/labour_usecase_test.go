package usecase

import (
	"context"
	"errors"
	"testing"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"
	"construfin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type labourTestDeps struct {
	labour   *mocks.MockILabourRepository
	projects *mocks.MockIProjectRepository
	phases   *mocks.MockIPhaseRepository
	ledger   *mocks.MockISpendingLedgerStore
	tx       *mocks.MockITransactionCoordinator
	audit    *mocks.MockIAuditRecorder
	notifier *mocks.MockINotifier
	sess     *mocks.MockTxSession
}

func newLabourTestDeps(ctrl *gomock.Controller) (*LabourUseCase, *labourTestDeps) {
	d := &labourTestDeps{
		labour:   mocks.NewMockILabourRepository(ctrl),
		projects: mocks.NewMockIProjectRepository(ctrl),
		phases:   mocks.NewMockIPhaseRepository(ctrl),
		ledger:   mocks.NewMockISpendingLedgerStore(ctrl),
		tx:       mocks.NewMockITransactionCoordinator(ctrl),
		audit:    mocks.NewMockIAuditRecorder(ctrl),
		notifier: mocks.NewMockINotifier(ctrl),
		sess:     mocks.NewMockTxSession(ctrl),
	}
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	u := NewLabourUseCase(
		d.labour,
		NewBudgetValidator(d.projects, d.phases),
		d.ledger,
		d.tx,
		nil,
		d.audit,
		d.notifier,
	)
	return u, d
}

func (d *labourTestDeps) runTx() *gomock.Call {
	return d.tx.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(interfaces.TxSession) error) error {
			return fn(d.sess)
		})
}

func TestLabourUseCase_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	u, d := newLabourTestDeps(ctrl)
	ctx := context.Background()

	t.Run("splits regular and overtime pay per entry", func(t *testing.T) {
		d.labour.EXPECT().CreateBatch(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch entities.LabourBatch, entries []entities.LabourEntry) (entities.LabourBatch, error) {
				if len(entries) != 2 {
					t.Fatalf("expected 2 entries, got %d", len(entries))
				}
				// 8h * 25 + 2h * 37.50 = 275
				if !entries[0].TotalCost.Equal(dec("275")) {
					t.Fatalf("expected entry cost 275, got %s", entries[0].TotalCost)
				}
				// Overtime rate defaults to the hourly rate: 40h * 20 = 800.
				if !entries[1].OvertimeRate.Equal(dec("20")) {
					t.Fatalf("expected defaulted overtime rate 20, got %s", entries[1].OvertimeRate)
				}
				if !batch.TotalCost.Equal(dec("1075")) {
					t.Fatalf("expected batch cost 1075, got %s", batch.TotalCost)
				}
				if !batch.TotalHours.Equal(dec("50")) {
					t.Fatalf("expected batch hours 50, got %s", batch.TotalHours)
				}
				if batch.Status != entities.LabourStatusPending {
					t.Fatalf("new batches start pending, got %s", batch.Status)
				}
				return batch, nil
			})

		_, err := u.CreateBatch(ctx, CreateLabourBatchInput{
			ProjectID: "proj-1",
			PhaseID:   "phase-1",
			Entries: []LabourEntryInput{
				{WorkerID: "w-1", RegularHours: dec("8"), OvertimeHours: dec("2"), HourlyRate: dec("25"), OvertimeRate: dec("37.50")},
				{WorkerID: "w-2", RegularHours: dec("40"), HourlyRate: dec("20")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := u.CreateBatch(ctx, CreateLabourBatchInput{ProjectID: "proj-1", PhaseID: "phase-1"})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("negative hours are rejected", func(t *testing.T) {
		_, err := u.CreateBatch(ctx, CreateLabourBatchInput{
			ProjectID: "proj-1",
			PhaseID:   "phase-1",
			Entries: []LabourEntryInput{
				{WorkerID: "w-1", RegularHours: dec("-1"), HourlyRate: dec("25")},
			},
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestLabourUseCase_ApproveBatch(t *testing.T) {
	ctx := context.Background()

	pendingBatch := entities.LabourBatch{
		ID:             "batch-1",
		ProjectID:      "proj-1",
		PhaseID:        "phase-1",
		SourceReportID: "report-1",
		Status:         entities.LabourStatusPending,
	}
	entries := []entities.LabourEntry{
		{ID: "entry-1", BatchID: "batch-1", TotalCost: dec("275")},
		{ID: "entry-2", BatchID: "batch-1", TotalCost: dec("800")},
	}
	roomyPhase := entities.Phase{
		ID: "phase-1",
		BudgetAllocation: entities.BudgetAllocation{
			Configured: true,
			Amounts:    entities.CategoryAmounts{Labour: dec("10000")},
		},
	}

	t.Run("phase and project ledgers move by the same total in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newLabourTestDeps(ctrl)

		d.labour.EXPECT().GetBatchByID(ctx, "batch-1").Return(pendingBatch, nil)
		d.labour.EXPECT().ListEntriesByBatchID(ctx, "batch-1").Return(entries, nil)
		d.phases.EXPECT().GetByID(ctx, "phase-1").Return(roomyPhase, nil)

		d.runTx()
		d.labour.EXPECT().StageBatchStatus(d.sess, "batch-1", entities.LabourStatusApproved).Return(nil)
		d.labour.EXPECT().StageEntryStatus(d.sess, "entry-1", entities.LabourStatusApproved).Return(nil)
		d.labour.EXPECT().StageEntryStatus(d.sess, "entry-2", entities.LabourStatusApproved).Return(nil)
		d.ledger.EXPECT().
			AdjustPhaseSpending(d.sess, "phase-1", entities.CategoryLabour, eqDec("1075"), entities.DirectionAdd).
			Return(nil)
		d.ledger.EXPECT().
			AdjustProjectSpending(d.sess, "proj-1", entities.CategoryLabour, eqDec("1075"), entities.DirectionAdd).
			Return(nil)
		d.labour.EXPECT().StageMarkReportConverted(d.sess, "report-1").Return(nil)

		approved, err := u.ApproveBatch(ctx, "batch-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if approved.Status != entities.LabourStatusApproved {
			t.Fatalf("expected approved, got %s", approved.Status)
		}
		if !approved.TotalCost.Equal(dec("1075")) {
			t.Fatalf("expected total 1075, got %s", approved.TotalCost)
		}
	})

	t.Run("a failed stage aborts the whole approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newLabourTestDeps(ctrl)

		d.labour.EXPECT().GetBatchByID(ctx, "batch-1").Return(pendingBatch, nil)
		d.labour.EXPECT().ListEntriesByBatchID(ctx, "batch-1").Return(entries, nil)
		d.phases.EXPECT().GetByID(ctx, "phase-1").Return(roomyPhase, nil)

		boom := errors.New("conditional check failed")
		d.runTx()
		d.labour.EXPECT().StageBatchStatus(d.sess, "batch-1", entities.LabourStatusApproved).Return(boom)
		// No ledger expectations: nothing else may be staged after the failure.

		_, err := u.ApproveBatch(ctx, "batch-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected staging error to propagate, got %v", err)
		}
	})

	t.Run("batch total above phase budget is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newLabourTestDeps(ctrl)

		d.labour.EXPECT().GetBatchByID(ctx, "batch-1").Return(pendingBatch, nil)
		d.labour.EXPECT().ListEntriesByBatchID(ctx, "batch-1").Return(entries, nil)
		d.phases.EXPECT().GetByID(ctx, "phase-1").Return(entities.Phase{
			ID: "phase-1",
			BudgetAllocation: entities.BudgetAllocation{
				Configured: true,
				Amounts:    entities.CategoryAmounts{Labour: dec("1000")},
			},
		}, nil)

		_, err := u.ApproveBatch(ctx, "batch-1")
		var funds *InsufficientFundsError
		if !errors.As(err, &funds) {
			t.Fatalf("expected InsufficientFundsError, got %v", err)
		}
		if funds.Scope != "phase" || !funds.Required.Equal(dec("1075")) {
			t.Fatalf("unexpected error detail: %+v", funds)
		}
	})

	t.Run("unconfigured phase budget does not block approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newLabourTestDeps(ctrl)

		batch := pendingBatch
		batch.SourceReportID = ""
		d.labour.EXPECT().GetBatchByID(ctx, "batch-1").Return(batch, nil)
		d.labour.EXPECT().ListEntriesByBatchID(ctx, "batch-1").Return(entries, nil)
		d.phases.EXPECT().GetByID(ctx, "phase-1").Return(entities.Phase{ID: "phase-1"}, nil)

		d.runTx()
		d.labour.EXPECT().StageBatchStatus(d.sess, "batch-1", entities.LabourStatusApproved).Return(nil)
		d.labour.EXPECT().StageEntryStatus(d.sess, gomock.Any(), entities.LabourStatusApproved).Return(nil).Times(2)
		d.ledger.EXPECT().
			AdjustPhaseSpending(d.sess, "phase-1", entities.CategoryLabour, eqDec("1075"), entities.DirectionAdd).
			Return(nil)
		d.ledger.EXPECT().
			AdjustProjectSpending(d.sess, "proj-1", entities.CategoryLabour, eqDec("1075"), entities.DirectionAdd).
			Return(nil)

		if _, err := u.ApproveBatch(ctx, "batch-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already approved batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newLabourTestDeps(ctrl)

		approved := pendingBatch
		approved.Status = entities.LabourStatusApproved
		d.labour.EXPECT().GetBatchByID(ctx, "batch-1").Return(approved, nil)

		_, err := u.ApproveBatch(ctx, "batch-1")
		if !errors.Is(err, ErrBatchNotPending) {
			t.Fatalf("expected ErrBatchNotPending, got %v", err)
		}
	})
}
