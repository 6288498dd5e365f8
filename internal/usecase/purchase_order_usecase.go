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

type CreatePurchaseOrderInput struct {
	ProjectID  string
	PhaseID    string
	SupplierID string
	UnitCost   decimal.Decimal
	Quantity   int64
}

// ApproveModificationResult carries the fresh project summary alongside the
// order when auto-commit ran: the caller needs it in its immediate response,
// so that recalculation is synchronous.
type ApproveModificationResult struct {
	Order          entities.PurchaseOrder
	ProjectSummary *entities.FinancialSummary
}

type IPurchaseOrderUseCase interface {
	Create(ctx context.Context, in CreatePurchaseOrderInput) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.PurchaseOrder, error)
	Accept(ctx context.Context, id string) (entities.PurchaseOrder, error)
	Reject(ctx context.Context, id, reasonCategory, subcategory string) (entities.PurchaseOrder, error)
	ProposeModification(ctx context.Context, id string, mod entities.SupplierModification) (entities.PurchaseOrder, error)
	ApproveModification(ctx context.Context, id string, approve, autoCommit bool) (ApproveModificationResult, error)
	Reassign(ctx context.Context, id, newSupplierID string) (entities.PurchaseOrder, error)
}

type PurchaseOrderUseCase struct {
	orders   interfaces.IPurchaseOrderRepository
	capital  *CapitalValidator
	ledger   interfaces.ISpendingLedgerStore
	tx       interfaces.ITransactionCoordinator
	recalc   IRecalculationUseCase
	advisor  *RejectionRetryAdvisor
	audit    interfaces.IAuditRecorder
	notifier interfaces.INotifier
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

func NewPurchaseOrderUseCase(
	orders interfaces.IPurchaseOrderRepository,
	capital *CapitalValidator,
	ledgerStore interfaces.ISpendingLedgerStore,
	tx interfaces.ITransactionCoordinator,
	recalc IRecalculationUseCase,
	advisor *RejectionRetryAdvisor,
	audit interfaces.IAuditRecorder,
	notifier interfaces.INotifier,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		orders:   orders,
		capital:  capital,
		ledger:   ledgerStore,
		tx:       tx,
		recalc:   recalc,
		advisor:  advisor,
		audit:    audit,
		notifier: notifier,
	}
}

func (u *PurchaseOrderUseCase) Create(ctx context.Context, in CreatePurchaseOrderInput) (entities.PurchaseOrder, error) {
	in.ProjectID = strings.TrimSpace(in.ProjectID)
	in.SupplierID = strings.TrimSpace(in.SupplierID)
	if in.ProjectID == "" || in.SupplierID == "" {
		return entities.PurchaseOrder{}, ErrInvalidID
	}
	if !in.UnitCost.IsPositive() {
		return entities.PurchaseOrder{}, ErrInvalidAmount
	}
	if in.Quantity <= 0 {
		return entities.PurchaseOrder{}, ErrInvalidQuantity
	}

	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:              uuid.NewString(),
		ProjectID:       in.ProjectID,
		PhaseID:         strings.TrimSpace(in.PhaseID),
		SupplierID:      in.SupplierID,
		Status:          entities.POStatusSent,
		UnitCost:        in.UnitCost,
		QuantityOrdered: in.Quantity,
		TotalCost:       in.UnitCost.Mul(decimal.NewFromInt(in.Quantity)),
		FinancialStatus: entities.FinancialStatusUncommitted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.orders.Create(ctx, po)
}

func (u *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchaseOrder{}, ErrInvalidID
	}
	po, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.ID == "" {
		return entities.PurchaseOrder{}, ErrOrderNotFound
	}
	return po, nil
}

func (u *PurchaseOrderUseCase) ListByProjectID(ctx context.Context, projectID string) ([]entities.PurchaseOrder, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidID
	}
	return u.orders.ListByProjectID(ctx, projectID)
}

func (u *PurchaseOrderUseCase) Accept(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if !po.CanTransitionTo(entities.POStatusAccepted) {
		return entities.PurchaseOrder{}, ErrInvalidStatusTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, po.ID, entities.POStatusAccepted)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	u.notify(ctx, "purchase_order_accepted", updated.ID, "supplier accepted the order")
	return updated, nil
}

// Reject classifies the rejection inline so the retry advice lands in the
// same write as the status transition.
func (u *PurchaseOrderUseCase) Reject(ctx context.Context, id, reasonCategory, subcategory string) (entities.PurchaseOrder, error) {
	reasonCategory = strings.TrimSpace(reasonCategory)
	if reasonCategory == "" {
		return entities.PurchaseOrder{}, ErrMissingRejectionReason
	}

	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if !po.CanTransitionTo(entities.POStatusRejected) {
		return entities.PurchaseOrder{}, ErrInvalidStatusTransition
	}

	assessment := u.advisor.Assess(reasonCategory, subcategory)
	updated, err := u.orders.UpdateRejection(ctx, po.ID, reasonCategory, subcategory, assessment.Retryable, assessment.Recommendation)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	u.recordAudit(ctx, "purchase_order.reject", po, updated)
	u.notify(ctx, "purchase_order_rejected", updated.ID, assessment.Recommendation)
	return updated, nil
}

func (u *PurchaseOrderUseCase) ProposeModification(ctx context.Context, id string, mod entities.SupplierModification) (entities.PurchaseOrder, error) {
	if mod.UnitCost == nil && mod.QuantityOrdered == nil {
		return entities.PurchaseOrder{}, ErrNoPendingModification
	}
	if mod.UnitCost != nil && !mod.UnitCost.IsPositive() {
		return entities.PurchaseOrder{}, ErrInvalidAmount
	}
	if mod.QuantityOrdered != nil && *mod.QuantityOrdered <= 0 {
		return entities.PurchaseOrder{}, ErrInvalidQuantity
	}

	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if !po.CanTransitionTo(entities.POStatusModified) {
		return entities.PurchaseOrder{}, ErrInvalidStatusTransition
	}

	return u.orders.UpdateModification(ctx, po.ID, &mod, nil, entities.POStatusModified)
}

// ApproveModification resolves a pending supplier modification. Approval
// with autoCommit is the only path that commits a purchase order
// financially: it validates capital, rewrites the order and adds its total
// to the committed-cost ledger in one transaction, then recalculates the
// project synchronously so the response carries a fresh summary.
func (u *PurchaseOrderUseCase) ApproveModification(ctx context.Context, id string, approve, autoCommit bool) (ApproveModificationResult, error) {
	po, err := u.GetByID(ctx, id)
	if err != nil {
		return ApproveModificationResult{}, err
	}
	if po.Status != entities.POStatusModified || po.SupplierModification == nil {
		return ApproveModificationResult{}, ErrNoPendingModification
	}

	decided := po
	now := time.Now().UTC()
	decided.UpdatedAt = now

	if !approve {
		rejected := false
		updated, err := u.orders.UpdateModification(ctx, decided.ID, nil, &rejected, entities.POStatusSent)
		if err != nil {
			return ApproveModificationResult{}, err
		}
		u.notify(ctx, "purchase_order_modification_declined", po.ID, "modification declined, order re-sent")
		return ApproveModificationResult{Order: updated}, nil
	}

	approved := true
	decided.ModificationApproved = &approved
	if po.SupplierModification.UnitCost != nil {
		decided.UnitCost = *po.SupplierModification.UnitCost
	}
	if po.SupplierModification.QuantityOrdered != nil {
		decided.QuantityOrdered = *po.SupplierModification.QuantityOrdered
	}
	decided.TotalCost = decided.UnitCost.Mul(decimal.NewFromInt(decided.QuantityOrdered))
	if !decided.TotalCost.IsPositive() {
		return ApproveModificationResult{}, ErrInvalidAmount
	}
	decided.SupplierModification = nil
	decided.Status = entities.POStatusSent

	if !autoCommit {
		if err := u.tx.Run(ctx, func(sess interfaces.TxSession) error {
			return u.orders.StagePut(sess, decided)
		}); err != nil {
			return ApproveModificationResult{}, err
		}
		return ApproveModificationResult{Order: decided}, nil
	}

	check, err := u.capital.ValidateAvailability(ctx, decided.ProjectID, decided.TotalCost)
	if err != nil {
		return ApproveModificationResult{}, err
	}
	if !check.IsValid {
		return ApproveModificationResult{}, &InsufficientFundsError{
			Scope:     "project",
			ScopeID:   decided.ProjectID,
			Available: check.Available,
			Required:  check.Required,
		}
	}

	decided.FinancialStatus = entities.FinancialStatusCommitted
	err = u.tx.Run(ctx, func(sess interfaces.TxSession) error {
		if err := u.orders.StagePut(sess, decided); err != nil {
			return err
		}
		if err := u.ledger.AdjustProjectCommitted(sess, decided.ProjectID, entities.CategoryMaterials, decided.TotalCost, entities.DirectionAdd); err != nil {
			return err
		}
		if decided.PhaseID != "" {
			return u.ledger.AdjustPhaseCommitted(sess, decided.PhaseID, decided.TotalCost, entities.DirectionAdd)
		}
		return nil
	})
	if err != nil {
		return ApproveModificationResult{}, err
	}

	u.recordAudit(ctx, "purchase_order.auto_commit", po, decided)
	u.notify(ctx, "purchase_order_committed", decided.ID, "modification approved and cost committed")

	summary, err := u.recalc.RecalculateProject(ctx, decided.ProjectID)
	if err != nil {
		// Money is already recorded; a stale summary is acceptable.
		log.Printf("[order][usecase] post-commit recalculation failed project_id=%s err=%v", decided.ProjectID, err)
		return ApproveModificationResult{Order: decided}, nil
	}
	return ApproveModificationResult{Order: decided, ProjectSummary: &summary}, nil
}

// Reassign creates a new order for a different supplier, linked to the
// rejected original. The original stays rejected: audit trail is preserved,
// nothing is deleted.
func (u *PurchaseOrderUseCase) Reassign(ctx context.Context, id, newSupplierID string) (entities.PurchaseOrder, error) {
	newSupplierID = strings.TrimSpace(newSupplierID)
	if newSupplierID == "" {
		return entities.PurchaseOrder{}, ErrInvalidID
	}

	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Status != entities.POStatusRejected {
		return entities.PurchaseOrder{}, ErrInvalidStatusTransition
	}
	if po.IsRetryable != nil && !*po.IsRetryable {
		return entities.PurchaseOrder{}, ErrOrderNotRetryable
	}

	now := time.Now().UTC()
	replacement := entities.PurchaseOrder{
		ID:              uuid.NewString(),
		ProjectID:       po.ProjectID,
		PhaseID:         po.PhaseID,
		SupplierID:      newSupplierID,
		Status:          entities.POStatusSent,
		UnitCost:        po.UnitCost,
		QuantityOrdered: po.QuantityOrdered,
		TotalCost:       po.TotalCost,
		FinancialStatus: entities.FinancialStatusUncommitted,
		OriginalOrderID: po.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := u.orders.Create(ctx, replacement)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	u.notify(ctx, "purchase_order_reassigned", created.ID, "order reassigned to a new supplier")
	return created, nil
}

func (u *PurchaseOrderUseCase) recordAudit(ctx context.Context, action string, before, after entities.PurchaseOrder) {
	if u.audit == nil {
		return
	}
	b, _ := json.Marshal(before)
	a, _ := json.Marshal(after)
	entry := entities.AuditEntry{
		Actor:      "api",
		Action:     action,
		EntityType: "purchase_order",
		EntityID:   after.ID,
		Before:     string(b),
		After:      string(a),
		RecordedAt: time.Now().UTC(),
	}
	if err := u.audit.Record(ctx, entry); err != nil {
		log.Printf("[order][usecase] audit record failed action=%s order_id=%s err=%v", action, after.ID, err)
	}
}

func (u *PurchaseOrderUseCase) notify(ctx context.Context, kind, id, message string) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, entities.NotificationEvent{
		Kind:       kind,
		EntityType: "purchase_order",
		EntityID:   id,
		Message:    message,
	}); err != nil {
		log.Printf("[order][usecase] notification failed kind=%s order_id=%s err=%v", kind, id, err)
	}
}
