package response

import (
	"time"

	"construfin/internal/domain/entities"
	"construfin/internal/usecase"

	"github.com/shopspring/decimal"
)

type PurchaseOrderResponse struct {
	ID                   string                          `json:"id"`
	ProjectID            string                          `json:"project_id"`
	PhaseID              string                          `json:"phase_id,omitempty"`
	SupplierID           string                          `json:"supplier_id"`
	Status               string                          `json:"status"`
	UnitCost             decimal.Decimal                 `json:"unit_cost"`
	QuantityOrdered      int64                           `json:"quantity_ordered"`
	TotalCost            decimal.Decimal                 `json:"total_cost"`
	SupplierModification *entities.SupplierModification  `json:"supplier_modification,omitempty"`
	ModificationApproved *bool                           `json:"modification_approved,omitempty"`
	FinancialStatus      string                          `json:"financial_status"`
	RejectionReason      string                          `json:"rejection_reason,omitempty"`
	RejectionSubcategory string                          `json:"rejection_subcategory,omitempty"`
	IsRetryable          *bool                           `json:"is_retryable,omitempty"`
	RetryRecommendation  string                          `json:"retry_recommendation,omitempty"`
	OriginalOrderID      string                          `json:"original_order_id,omitempty"`
	CreatedAt            time.Time                       `json:"created_at"`
	UpdatedAt            time.Time                       `json:"updated_at"`
}

func FromPurchaseOrder(po entities.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:                   po.ID,
		ProjectID:            po.ProjectID,
		PhaseID:              po.PhaseID,
		SupplierID:           po.SupplierID,
		Status:               string(po.Status),
		UnitCost:             po.UnitCost,
		QuantityOrdered:      po.QuantityOrdered,
		TotalCost:            po.TotalCost,
		SupplierModification: po.SupplierModification,
		ModificationApproved: po.ModificationApproved,
		FinancialStatus:      string(po.FinancialStatus),
		RejectionReason:      po.RejectionReason,
		RejectionSubcategory: po.RejectionSubcategory,
		IsRetryable:          po.IsRetryable,
		RetryRecommendation:  po.RetryRecommendation,
		OriginalOrderID:      po.OriginalOrderID,
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
}

func FromPurchaseOrders(orders []entities.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, 0, len(orders))
	for _, po := range orders {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}

// ApproveModificationResponse includes the fresh project summary when the
// approval auto-committed the order.
type ApproveModificationResponse struct {
	Order          PurchaseOrderResponse      `json:"order"`
	ProjectSummary *entities.FinancialSummary `json:"project_summary,omitempty"`
}

func FromApproveModificationResult(res usecase.ApproveModificationResult) ApproveModificationResponse {
	return ApproveModificationResponse{
		Order:          FromPurchaseOrder(res.Order),
		ProjectSummary: res.ProjectSummary,
	}
}
