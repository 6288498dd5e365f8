package interfaces

import (
	"context"

	"construfin/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Repository contracts over the DynamoDB collections. Methods prefixed with
// Stage only append writes to a transaction session and perform no I/O;
// everything staged commits (or not) as one unit through the coordinator.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	UpdateBudget(ctx context.Context, id string, budget entities.BudgetAllocation) (entities.Project, error)
	UpdateSummary(ctx context.Context, id string, summary entities.FinancialSummary) error
	StageAdjustCapital(sess TxSession, id string, delta decimal.Decimal) error
}

type IPhaseRepository interface {
	Create(ctx context.Context, ph entities.Phase) (entities.Phase, error)
	GetByID(ctx context.Context, id string) (entities.Phase, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Phase, error)
	UpdateAllocation(ctx context.Context, id string, allocation entities.BudgetAllocation) (entities.Phase, error)
	UpdateStatus(ctx context.Context, id string, status entities.PhaseStatus, completionPct decimal.Decimal) (entities.Phase, error)
	UpdateSummary(ctx context.Context, id string, states entities.FinancialStates, summary entities.FinancialSummary) error
}

type IPurchaseOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error)
	UpdateRejection(ctx context.Context, id string, reason, subcategory string, retryable bool, recommendation string) (entities.PurchaseOrder, error)
	UpdateModification(ctx context.Context, id string, mod *entities.SupplierModification, approved *bool, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error)
	StagePut(sess TxSession, po entities.PurchaseOrder) error
}

type ILabourRepository interface {
	CreateBatch(ctx context.Context, batch entities.LabourBatch, entries []entities.LabourEntry) (entities.LabourBatch, error)
	GetBatchByID(ctx context.Context, id string) (entities.LabourBatch, error)
	ListEntriesByBatchID(ctx context.Context, batchID string) ([]entities.LabourEntry, error)
	StageBatchStatus(sess TxSession, batchID string, status entities.LabourStatus) error
	StageEntryStatus(sess TxSession, entryID string, status entities.LabourStatus) error
	StageMarkReportConverted(sess TxSession, reportID string) error
}

type IProfessionalFeeRepository interface {
	GetByID(ctx context.Context, id string) (entities.ProfessionalFee, error)
	GetServiceByID(ctx context.Context, id string) (entities.ProfessionalService, error)
	UpdateStatus(ctx context.Context, id string, status entities.FeeStatus) (entities.ProfessionalFee, error)
	StagePut(sess TxSession, fee entities.ProfessionalFee) error
	StageStatus(sess TxSession, feeID string, status entities.FeeStatus) error
	StageServiceCounters(sess TxSession, serviceID string, paidDelta, pendingDelta decimal.Decimal) error
}

type IInvestorRepository interface {
	GetByID(ctx context.Context, id string) (entities.Investor, error)
	GetAllocationByID(ctx context.Context, id string) (entities.InvestorAllocation, error)
	ListAllocationsByInvestorID(ctx context.Context, investorID string) ([]entities.InvestorAllocation, error)
	ListAllocationsByProjectID(ctx context.Context, projectID string) ([]entities.InvestorAllocation, error)
	StagePutAllocation(sess TxSession, alloc entities.InvestorAllocation) error
	StageAllocationAmount(sess TxSession, allocationID string, amount decimal.Decimal) error
}
