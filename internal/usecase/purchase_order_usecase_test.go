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

type poTestDeps struct {
	orders   *mocks.MockIPurchaseOrderRepository
	projects *mocks.MockIProjectRepository
	ledger   *mocks.MockISpendingLedgerStore
	tx       *mocks.MockITransactionCoordinator
	recalc   *recordingEngine
	audit    *mocks.MockIAuditRecorder
	notifier *mocks.MockINotifier
	sess     *mocks.MockTxSession
}

func newPOTestDeps(ctrl *gomock.Controller) (*PurchaseOrderUseCase, *poTestDeps) {
	d := &poTestDeps{
		orders:   mocks.NewMockIPurchaseOrderRepository(ctrl),
		projects: mocks.NewMockIProjectRepository(ctrl),
		ledger:   mocks.NewMockISpendingLedgerStore(ctrl),
		tx:       mocks.NewMockITransactionCoordinator(ctrl),
		recalc:   &recordingEngine{},
		audit:    mocks.NewMockIAuditRecorder(ctrl),
		notifier: mocks.NewMockINotifier(ctrl),
		sess:     mocks.NewMockTxSession(ctrl),
	}
	d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	u := NewPurchaseOrderUseCase(
		d.orders,
		NewCapitalValidator(d.projects),
		d.ledger,
		d.tx,
		d.recalc,
		NewRejectionRetryAdvisor(),
		d.audit,
		d.notifier,
	)
	return u, d
}

// runTx makes the coordinator execute the staged function against the test
// session, mirroring a successful commit.
func (d *poTestDeps) runTx() *gomock.Call {
	return d.tx.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(interfaces.TxSession) error) error {
			return fn(d.sess)
		})
}

func TestPurchaseOrderUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	u, d := newPOTestDeps(ctrl)
	ctx := context.Background()

	t.Run("total cost is unit cost times quantity", func(t *testing.T) {
		d.orders.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
				if !po.TotalCost.Equal(dec("5000")) {
					t.Fatalf("expected total 5000, got %s", po.TotalCost)
				}
				if po.Status != entities.POStatusSent {
					t.Fatalf("expected order_sent, got %s", po.Status)
				}
				if po.FinancialStatus != entities.FinancialStatusUncommitted {
					t.Fatalf("new orders start uncommitted, got %s", po.FinancialStatus)
				}
				return po, nil
			})

		_, err := u.Create(ctx, CreatePurchaseOrderInput{
			ProjectID:  "proj-1",
			SupplierID: "sup-1",
			UnitCost:   dec("500"),
			Quantity:   10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects non-positive unit cost", func(t *testing.T) {
		_, err := u.Create(ctx, CreatePurchaseOrderInput{
			ProjectID:  "proj-1",
			SupplierID: "sup-1",
			UnitCost:   dec("0"),
			Quantity:   10,
		})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := u.Create(ctx, CreatePurchaseOrderInput{
			ProjectID:  "proj-1",
			SupplierID: "sup-1",
			UnitCost:   dec("500"),
			Quantity:   0,
		})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestPurchaseOrderUseCase_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	u, d := newPOTestDeps(ctrl)
	ctx := context.Background()

	t.Run("retryable reason stores retry advice with the rejection", func(t *testing.T) {
		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:     "po-1",
			Status: entities.POStatusSent,
		}, nil)
		d.orders.EXPECT().
			UpdateRejection(ctx, "po-1", "price_too_high", "", true, gomock.Not(gomock.Eq(""))).
			Return(entities.PurchaseOrder{ID: "po-1", Status: entities.POStatusRejected}, nil)

		if _, err := u.Reject(ctx, "po-1", "price_too_high", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("policy rejections are flagged not retryable", func(t *testing.T) {
		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:     "po-1",
			Status: entities.POStatusSent,
		}, nil)
		d.orders.EXPECT().
			UpdateRejection(ctx, "po-1", "business_policy", "", false, gomock.Any()).
			Return(entities.PurchaseOrder{ID: "po-1", Status: entities.POStatusRejected}, nil)

		if _, err := u.Reject(ctx, "po-1", "business_policy", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank reason category", func(t *testing.T) {
		_, err := u.Reject(ctx, "po-1", "   ", "")
		if !errors.Is(err, ErrMissingRejectionReason) {
			t.Fatalf("expected ErrMissingRejectionReason, got %v", err)
		}
	})

	t.Run("rejected orders cannot be rejected again", func(t *testing.T) {
		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:     "po-1",
			Status: entities.POStatusRejected,
		}, nil)

		_, err := u.Reject(ctx, "po-1", "out_of_stock", "")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestPurchaseOrderUseCase_ApproveModification(t *testing.T) {
	ctx := context.Background()

	newCost := dec("450")
	modified := entities.PurchaseOrder{
		ID:              "po-1",
		ProjectID:       "proj-1",
		PhaseID:         "phase-1",
		SupplierID:      "sup-1",
		Status:          entities.POStatusModified,
		UnitCost:        dec("500"),
		QuantityOrdered: 10,
		TotalCost:       dec("5000"),
		FinancialStatus: entities.FinancialStatusUncommitted,
		SupplierModification: &entities.SupplierModification{
			UnitCost: &newCost,
		},
	}

	t.Run("approve with auto-commit records the committed cost atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(modified, nil)
		d.projects.EXPECT().GetByID(ctx, "proj-1").Return(entities.Project{
			ID:      "proj-1",
			Capital: entities.SetCeiling(dec("100000")),
		}, nil)

		d.runTx()
		d.orders.EXPECT().StagePut(d.sess, gomock.Any()).DoAndReturn(
			func(_ interfaces.TxSession, po entities.PurchaseOrder) error {
				if !po.TotalCost.Equal(dec("4500")) {
					t.Fatalf("expected modified total 4500, got %s", po.TotalCost)
				}
				if po.FinancialStatus != entities.FinancialStatusCommitted {
					t.Fatalf("expected committed, got %s", po.FinancialStatus)
				}
				if po.Status != entities.POStatusSent {
					t.Fatalf("expected order back to order_sent, got %s", po.Status)
				}
				if po.SupplierModification != nil {
					t.Fatal("pending modification must be cleared after approval")
				}
				return nil
			})
		d.ledger.EXPECT().
			AdjustProjectCommitted(d.sess, "proj-1", entities.CategoryMaterials, eqDec("4500"), entities.DirectionAdd).
			Return(nil)
		d.ledger.EXPECT().
			AdjustPhaseCommitted(d.sess, "phase-1", eqDec("4500"), entities.DirectionAdd).
			Return(nil)

		res, err := u.ApproveModification(ctx, "po-1", true, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProjectSummary == nil {
			t.Fatal("auto-commit must return a fresh project summary")
		}
		if len(d.recalc.projects) != 1 || d.recalc.projects[0] != "proj-1" {
			t.Fatalf("expected one synchronous project recalculation, got %v", d.recalc.projects)
		}
	})

	t.Run("auto-commit above available capital fails before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(modified, nil)
		d.projects.EXPECT().GetByID(ctx, "proj-1").Return(entities.Project{
			ID:      "proj-1",
			Capital: entities.SetCeiling(dec("4000")),
		}, nil)

		_, err := u.ApproveModification(ctx, "po-1", true, true)
		var funds *InsufficientFundsError
		if !errors.As(err, &funds) {
			t.Fatalf("expected InsufficientFundsError, got %v", err)
		}
		if !funds.Required.Equal(dec("4500")) || !funds.Available.Equal(dec("4000")) {
			t.Fatalf("unexpected error detail: %+v", funds)
		}
	})

	t.Run("approve without auto-commit rewrites the order only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(modified, nil)
		d.runTx()
		d.orders.EXPECT().StagePut(d.sess, gomock.Any()).DoAndReturn(
			func(_ interfaces.TxSession, po entities.PurchaseOrder) error {
				if po.FinancialStatus != entities.FinancialStatusUncommitted {
					t.Fatalf("expected order to stay uncommitted, got %s", po.FinancialStatus)
				}
				return nil
			})

		res, err := u.ApproveModification(ctx, "po-1", true, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProjectSummary != nil {
			t.Fatal("no summary expected without auto-commit")
		}
	})

	t.Run("decline re-sends the order unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(modified, nil)
		d.orders.EXPECT().UpdateModification(ctx, "po-1", nil, gomock.Any(), entities.POStatusSent).
			DoAndReturn(func(_ context.Context, id string, _ *entities.SupplierModification, approved *bool, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error) {
				if approved == nil || *approved {
					t.Fatal("decline must persist modification_approved=false")
				}
				return entities.PurchaseOrder{ID: id, Status: status}, nil
			})

		res, err := u.ApproveModification(ctx, "po-1", false, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.POStatusSent {
			t.Fatalf("expected order_sent, got %s", res.Order.Status)
		}
	})

	t.Run("no pending modification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:     "po-1",
			Status: entities.POStatusSent,
		}, nil)

		_, err := u.ApproveModification(ctx, "po-1", true, true)
		if !errors.Is(err, ErrNoPendingModification) {
			t.Fatalf("expected ErrNoPendingModification, got %v", err)
		}
	})
}

func TestPurchaseOrderUseCase_Reassign(t *testing.T) {
	ctx := context.Background()
	retryable := true
	notRetryable := false

	t.Run("creates a replacement linked to the rejected original", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:              "po-1",
			ProjectID:       "proj-1",
			SupplierID:      "sup-1",
			Status:          entities.POStatusRejected,
			UnitCost:        dec("500"),
			QuantityOrdered: 10,
			TotalCost:       dec("5000"),
			IsRetryable:     &retryable,
		}, nil)
		d.orders.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
				if po.OriginalOrderID != "po-1" {
					t.Fatalf("expected link to original order, got %q", po.OriginalOrderID)
				}
				if po.SupplierID != "sup-2" {
					t.Fatalf("expected new supplier, got %q", po.SupplierID)
				}
				if po.Status != entities.POStatusSent {
					t.Fatalf("replacement must start at order_sent, got %s", po.Status)
				}
				return po, nil
			})

		if _, err := u.Reassign(ctx, "po-1", "sup-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-retryable rejections cannot be reassigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:          "po-1",
			Status:      entities.POStatusRejected,
			IsRetryable: &notRetryable,
		}, nil)

		_, err := u.Reassign(ctx, "po-1", "sup-2")
		if !errors.Is(err, ErrOrderNotRetryable) {
			t.Fatalf("expected ErrOrderNotRetryable, got %v", err)
		}
	})

	t.Run("only rejected orders are reassignable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().GetByID(ctx, "po-1").Return(entities.PurchaseOrder{
			ID:     "po-1",
			Status: entities.POStatusAccepted,
		}, nil)

		_, err := u.Reassign(ctx, "po-1", "sup-2")
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestPurchaseOrderUseCase_ListByProjectID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the project's orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newPOTestDeps(ctrl)

		d.orders.EXPECT().ListByProjectID(ctx, "project-1").Return([]entities.PurchaseOrder{
			{ID: "order-1", ProjectID: "project-1"},
			{ID: "order-2", ProjectID: "project-1"},
		}, nil)

		orders, err := u.ListByProjectID(ctx, "project-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
	})

	t.Run("blank project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, _ := newPOTestDeps(ctrl)

		if _, err := u.ListByProjectID(ctx, ""); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})
}
