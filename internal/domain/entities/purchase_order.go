package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseOrderStatus string

const (
	POStatusSent     PurchaseOrderStatus = "order_sent"
	POStatusAccepted PurchaseOrderStatus = "order_accepted"
	POStatusRejected PurchaseOrderStatus = "order_rejected"
	POStatusModified PurchaseOrderStatus = "order_modified"
)

type FinancialStatus string

const (
	FinancialStatusUncommitted FinancialStatus = "uncommitted"
	FinancialStatusCommitted   FinancialStatus = "committed"
)

// poTransitions is the validated status state machine. order_rejected is
// terminal; reassignment creates a new order linked via OriginalOrderID.
var poTransitions = map[PurchaseOrderStatus][]PurchaseOrderStatus{
	POStatusSent:     {POStatusAccepted, POStatusRejected, POStatusModified},
	POStatusModified: {POStatusSent, POStatusAccepted, POStatusRejected},
}

// SupplierModification is a supplier-proposed override pending PM/owner
// approval. Nil fields keep the original value.
type SupplierModification struct {
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	QuantityOrdered *int64           `json:"quantity_ordered,omitempty"`
	Note            string           `json:"note,omitempty"`
}

// PurchaseOrder is a supplier order. TotalCost is always unit cost times
// quantity and must stay positive through every modification.
type PurchaseOrder struct {
	ID                   string                `json:"id"`
	ProjectID            string                `json:"project_id"`
	PhaseID              string                `json:"phase_id,omitempty"`
	SupplierID           string                `json:"supplier_id"`
	Status               PurchaseOrderStatus   `json:"status"`
	UnitCost             decimal.Decimal       `json:"unit_cost"`
	QuantityOrdered      int64                 `json:"quantity_ordered"`
	TotalCost            decimal.Decimal       `json:"total_cost"`
	SupplierModification *SupplierModification `json:"supplier_modification,omitempty"`
	ModificationApproved *bool                 `json:"modification_approved,omitempty"`
	FinancialStatus      FinancialStatus       `json:"financial_status"`
	RejectionReason      string                `json:"rejection_reason,omitempty"`
	RejectionSubcategory string                `json:"rejection_subcategory,omitempty"`
	IsRetryable          *bool                 `json:"is_retryable,omitempty"`
	RetryRecommendation  string                `json:"retry_recommendation,omitempty"`
	OriginalOrderID      string                `json:"original_order_id,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

func (po PurchaseOrder) CanTransitionTo(next PurchaseOrderStatus) bool {
	for _, s := range poTransitions[po.Status] {
		if s == next {
			return true
		}
	}
	return false
}
