package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFeeInput struct {
	ServiceID   string
	Description string
	Amount      decimal.Decimal
}

type IProfessionalFeeUseCase interface {
	Create(ctx context.Context, in CreateFeeInput) (entities.ProfessionalFee, error)
	GetByID(ctx context.Context, id string) (entities.ProfessionalFee, error)
	Approve(ctx context.Context, id string) (entities.ProfessionalFee, error)
	Reject(ctx context.Context, id string) (entities.ProfessionalFee, error)
	Pay(ctx context.Context, id string, paymentPayload json.RawMessage) (entities.ProfessionalFee, error)
}

type ProfessionalFeeUseCase struct {
	fees     interfaces.IProfessionalFeeRepository
	tx       interfaces.ITransactionCoordinator
	gateway  interfaces.IPaymentGateway
	audit    interfaces.IAuditRecorder
	notifier interfaces.INotifier
}

var _ IProfessionalFeeUseCase = (*ProfessionalFeeUseCase)(nil)

// NewProfessionalFeeUseCase wires fee operations. gateway may be nil; Pay
// then settles the fee without an external charge.
func NewProfessionalFeeUseCase(
	fees interfaces.IProfessionalFeeRepository,
	tx interfaces.ITransactionCoordinator,
	gateway interfaces.IPaymentGateway,
	audit interfaces.IAuditRecorder,
	notifier interfaces.INotifier,
) *ProfessionalFeeUseCase {
	return &ProfessionalFeeUseCase{fees: fees, tx: tx, gateway: gateway, audit: audit, notifier: notifier}
}

func (u *ProfessionalFeeUseCase) Create(ctx context.Context, in CreateFeeInput) (entities.ProfessionalFee, error) {
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	if in.ServiceID == "" {
		return entities.ProfessionalFee{}, ErrInvalidID
	}
	if !in.Amount.IsPositive() {
		return entities.ProfessionalFee{}, ErrInvalidAmount
	}

	svc, err := u.fees.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	if svc.ID == "" {
		return entities.ProfessionalFee{}, ErrServiceNotFound
	}

	now := time.Now().UTC()
	fee := entities.ProfessionalFee{
		ID:          uuid.NewString(),
		ServiceID:   in.ServiceID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Status:      entities.FeeStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// The fee write and the service's fees_pending increment commit as one
	// unit; a failed transaction leaves neither behind.
	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.fees.StagePut(sess, fee); err != nil {
			return err
		}
		return u.fees.StageServiceCounters(sess, fee.ServiceID, decimal.Zero, fee.Amount)
	})
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	return fee, nil
}

func (u *ProfessionalFeeUseCase) GetByID(ctx context.Context, id string) (entities.ProfessionalFee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProfessionalFee{}, ErrInvalidID
	}
	fee, err := u.fees.GetByID(ctx, id)
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	if fee.ID == "" {
		return entities.ProfessionalFee{}, ErrFeeNotFound
	}
	return fee, nil
}

func (u *ProfessionalFeeUseCase) Approve(ctx context.Context, id string) (entities.ProfessionalFee, error) {
	return u.transition(ctx, id, entities.FeeStatusPending, entities.FeeStatusApproved)
}

// Reject moves the fee out of pending. The status transition and the
// service's fees_pending decrement commit as one unit, so a failure leaves
// the fee PENDING and retryable.
func (u *ProfessionalFeeUseCase) Reject(ctx context.Context, id string) (entities.ProfessionalFee, error) {
	fee, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	if fee.Status != entities.FeeStatusPending {
		return entities.ProfessionalFee{}, ErrInvalidStatusTransition
	}

	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.fees.StageStatus(sess, fee.ID, entities.FeeStatusRejected); err != nil {
			return err
		}
		return u.fees.StageServiceCounters(sess, fee.ServiceID, decimal.Zero, fee.Amount.Neg())
	})
	if err != nil {
		return entities.ProfessionalFee{}, err
	}

	rejected := fee
	rejected.Status = entities.FeeStatusRejected
	rejected.UpdatedAt = time.Now().UTC()
	return rejected, nil
}

// Pay settles an approved fee. The optional gateway charge happens first;
// the PAID transition and the service counter moves then land in one
// transaction.
func (u *ProfessionalFeeUseCase) Pay(ctx context.Context, id string, paymentPayload json.RawMessage) (entities.ProfessionalFee, error) {
	fee, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	if fee.Status != entities.FeeStatusApproved {
		return entities.ProfessionalFee{}, ErrFeeNotPayable
	}

	if u.gateway != nil {
		payload := paymentPayload
		if len(payload) == 0 || !json.Valid(payload) {
			payload = json.RawMessage("{}")
		}
		var req map[string]any
		if err := json.Unmarshal(payload, &req); err == nil {
			if _, ok := req["external_reference"]; !ok {
				req["external_reference"] = fee.ID
			}
			if _, ok := req["description"]; !ok {
				req["description"] = fmt.Sprintf("Professional fee %s", fee.ID)
			}
			// The fee amount in DB is the source of truth for the charge.
			req["transaction_amount"], _ = fee.Amount.Float64()
			if b, err := json.Marshal(req); err == nil {
				payload = b
			}
		}

		providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[fee][usecase] gateway charge failed fee_id=%s err=%v", fee.ID, err)
			return entities.ProfessionalFee{}, err
		}
		log.Printf("[fee][usecase] gateway charge success fee_id=%s provider_payment_id=%s provider_status=%s", fee.ID, providerID, providerStatus)
	}

	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.fees.StageStatus(sess, fee.ID, entities.FeeStatusPaid); err != nil {
			return err
		}
		return u.fees.StageServiceCounters(sess, fee.ServiceID, fee.Amount, fee.Amount.Neg())
	})
	if err != nil {
		return entities.ProfessionalFee{}, err
	}

	paid := fee
	paid.Status = entities.FeeStatusPaid
	paid.UpdatedAt = time.Now().UTC()

	u.recordAudit(ctx, fee, paid)
	u.notify(ctx, paid)
	return paid, nil
}

func (u *ProfessionalFeeUseCase) transition(ctx context.Context, id string, from, to entities.FeeStatus) (entities.ProfessionalFee, error) {
	fee, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ProfessionalFee{}, err
	}
	if fee.Status != from {
		return entities.ProfessionalFee{}, ErrInvalidStatusTransition
	}
	return u.fees.UpdateStatus(ctx, fee.ID, to)
}

func (u *ProfessionalFeeUseCase) recordAudit(ctx context.Context, before, after entities.ProfessionalFee) {
	if u.audit == nil {
		return
	}
	b, _ := json.Marshal(before)
	a, _ := json.Marshal(after)
	entry := entities.AuditEntry{
		Actor:      "api",
		Action:     "professional_fee.pay",
		EntityType: "professional_fee",
		EntityID:   after.ID,
		Before:     string(b),
		After:      string(a),
		RecordedAt: time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, entry); err != nil {
		log.Printf("[fee][usecase] audit record failed fee_id=%s err=%v", after.ID, err)
	}
}

func (u *ProfessionalFeeUseCase) notify(ctx context.Context, fee entities.ProfessionalFee) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, entities.NotificationEvent{
		Kind:       "professional_fee_paid",
		EntityType: "professional_fee",
		EntityID:   fee.ID,
		Message:    "professional fee paid",
	}); err != nil {
		log.Printf("[fee][usecase] notification failed fee_id=%s err=%v", fee.ID, err)
	}
}
