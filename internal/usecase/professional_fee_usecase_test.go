package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"
	"construfin/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type feeTestDeps struct {
	fees    *mocks.MockIProfessionalFeeRepository
	tx      *mocks.MockITransactionCoordinator
	gateway *mocks.MockIPaymentGateway
	sess    *mocks.MockTxSession
}

func newFeeTestDeps(ctrl *gomock.Controller, withGateway bool) (*ProfessionalFeeUseCase, *feeTestDeps) {
	d := &feeTestDeps{
		fees:    mocks.NewMockIProfessionalFeeRepository(ctrl),
		tx:      mocks.NewMockITransactionCoordinator(ctrl),
		gateway: mocks.NewMockIPaymentGateway(ctrl),
		sess:    mocks.NewMockTxSession(ctrl),
	}
	var gateway interfaces.IPaymentGateway
	if withGateway {
		gateway = d.gateway
	}
	u := NewProfessionalFeeUseCase(d.fees, d.tx, gateway, nil, nil)
	return u, d
}

func (d *feeTestDeps) runTx() *gomock.Call {
	return d.tx.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(interfaces.TxSession) error) error {
			return fn(d.sess)
		})
}

func TestProfessionalFeeUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("fee write and pending counter commit as one unit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		d.fees.EXPECT().GetServiceByID(ctx, "svc-1").Return(entities.ProfessionalService{ID: "svc-1"}, nil)
		d.runTx()
		d.fees.EXPECT().StagePut(d.sess, gomock.Any()).DoAndReturn(
			func(_ interfaces.TxSession, fee entities.ProfessionalFee) error {
				if fee.Status != entities.FeeStatusPending {
					t.Fatalf("new fees start PENDING, got %s", fee.Status)
				}
				return nil
			})
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("0"), eqDec("2500")).Return(nil)

		_, err := u.Create(ctx, CreateFeeInput{ServiceID: "svc-1", Amount: dec("2500")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transaction failure creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		d.fees.EXPECT().GetServiceByID(ctx, "svc-1").Return(entities.ProfessionalService{ID: "svc-1"}, nil)
		boom := errors.New("transact canceled")
		d.runTx()
		d.fees.EXPECT().StagePut(d.sess, gomock.Any()).Return(nil)
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("0"), eqDec("2500")).Return(boom)

		_, err := u.Create(ctx, CreateFeeInput{ServiceID: "svc-1", Amount: dec("2500")})
		if !errors.Is(err, boom) {
			t.Fatalf("expected staging error to propagate, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		d.fees.EXPECT().GetServiceByID(ctx, "missing").Return(entities.ProfessionalService{}, nil)

		_, err := u.Create(ctx, CreateFeeInput{ServiceID: "missing", Amount: dec("2500")})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestProfessionalFeeUseCase_Reject(t *testing.T) {
	ctx := context.Background()

	pending := entities.ProfessionalFee{
		ID:        "fee-1",
		ServiceID: "svc-1",
		Amount:    dec("2500"),
		Status:    entities.FeeStatusPending,
	}

	t.Run("status and pending counter move in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(pending, nil)
		d.runTx()
		d.fees.EXPECT().StageStatus(d.sess, "fee-1", entities.FeeStatusRejected).Return(nil)
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("0"), eqDec("-2500")).Return(nil)

		fee, err := u.Reject(ctx, "fee-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fee.Status != entities.FeeStatusRejected {
			t.Fatalf("expected REJECTED, got %s", fee.Status)
		}
	})

	t.Run("transaction failure leaves the fee pending and retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(pending, nil)
		boom := errors.New("transact canceled")
		d.runTx()
		d.fees.EXPECT().StageStatus(d.sess, "fee-1", entities.FeeStatusRejected).Return(nil)
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("0"), eqDec("-2500")).Return(boom)

		if _, err := u.Reject(ctx, "fee-1"); !errors.Is(err, boom) {
			t.Fatalf("expected staging error to propagate, got %v", err)
		}

		// Nothing committed, so a retry starts from PENDING and succeeds.
		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(pending, nil)
		d.runTx()
		d.fees.EXPECT().StageStatus(d.sess, "fee-1", entities.FeeStatusRejected).Return(nil)
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("0"), eqDec("-2500")).Return(nil)

		if _, err := u.Reject(ctx, "fee-1"); err != nil {
			t.Fatalf("retry after failed transaction must succeed, got %v", err)
		}
	})

	t.Run("only pending fees are rejectable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		rejected := pending
		rejected.Status = entities.FeeStatusRejected
		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(rejected, nil)

		if _, err := u.Reject(ctx, "fee-1"); !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestProfessionalFeeUseCase_Pay(t *testing.T) {
	ctx := context.Background()

	approved := entities.ProfessionalFee{
		ID:        "fee-1",
		ServiceID: "svc-1",
		Amount:    dec("2500"),
		Status:    entities.FeeStatusApproved,
	}

	t.Run("moves the amount from pending to paid in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(approved, nil)
		d.runTx()
		d.fees.EXPECT().StageStatus(d.sess, "fee-1", entities.FeeStatusPaid).Return(nil)
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("2500"), eqDec("-2500")).Return(nil)

		fee, err := u.Pay(ctx, "fee-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fee.Status != entities.FeeStatusPaid {
			t.Fatalf("expected PAID, got %s", fee.Status)
		}
	})

	t.Run("gateway charge uses the stored fee amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, true)

		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(approved, nil)
		d.gateway.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("gateway payload is not valid JSON: %v", err)
				}
				if req["external_reference"] != "fee-1" {
					t.Fatalf("expected external_reference fee-1, got %v", req["external_reference"])
				}
				if req["transaction_amount"] != float64(2500) {
					t.Fatalf("charge amount must come from the stored fee, got %v", req["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{}`), nil
			})
		d.runTx()
		d.fees.EXPECT().StageStatus(d.sess, "fee-1", entities.FeeStatusPaid).Return(nil)
		d.fees.EXPECT().StageServiceCounters(d.sess, "svc-1", eqDec("2500"), eqDec("-2500")).Return(nil)

		// Client-supplied amount is ignored in favour of the stored one.
		payload := json.RawMessage(`{"transaction_amount": 1, "payment_method_id": "pix"}`)
		if _, err := u.Pay(ctx, "fee-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure leaves the fee unpaid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, true)

		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(approved, nil)
		boom := errors.New("provider unavailable")
		d.gateway.EXPECT().CreatePayment(ctx, gomock.Any()).Return("", "", nil, boom)
		// No transaction expectations: nothing is staged after a failed charge.

		_, err := u.Pay(ctx, "fee-1", nil)
		if !errors.Is(err, boom) {
			t.Fatalf("expected gateway error to propagate, got %v", err)
		}
	})

	t.Run("only approved fees are payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		u, d := newFeeTestDeps(ctrl, false)

		pending := approved
		pending.Status = entities.FeeStatusPending
		d.fees.EXPECT().GetByID(ctx, "fee-1").Return(pending, nil)

		_, err := u.Pay(ctx, "fee-1", nil)
		if !errors.Is(err, ErrFeeNotPayable) {
			t.Fatalf("expected ErrFeeNotPayable, got %v", err)
		}
	})
}
