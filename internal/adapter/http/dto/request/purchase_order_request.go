package request

import (
	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CreatePurchaseOrderRequest struct {
	ProjectID  string          `json:"project_id" binding:"required"`
	PhaseID    string          `json:"phase_id"`
	SupplierID string          `json:"supplier_id" binding:"required"`
	UnitCost   decimal.Decimal `json:"unit_cost" binding:"required"`
	Quantity   int64           `json:"quantity" binding:"required"`
}

type RejectPurchaseOrderRequest struct {
	ReasonCategory string `json:"reason_category" binding:"required"`
	Subcategory    string `json:"subcategory"`
}

type ProposeModificationRequest struct {
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	QuantityOrdered *int64           `json:"quantity_ordered"`
	Note            string           `json:"note"`
}

func (r ProposeModificationRequest) ToModification() entities.SupplierModification {
	return entities.SupplierModification{
		UnitCost:        r.UnitCost,
		QuantityOrdered: r.QuantityOrdered,
		Note:            r.Note,
	}
}

// ApproveModificationRequest resolves a pending supplier modification.
// AutoCommit additionally commits the approved total to the spending ledger
// in the same transaction.
type ApproveModificationRequest struct {
	Approve    *bool `json:"approve" binding:"required"`
	AutoCommit bool  `json:"auto_commit"`
}

type ReassignPurchaseOrderRequest struct {
	NewSupplierID string `json:"new_supplier_id" binding:"required"`
}
