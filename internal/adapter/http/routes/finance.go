package routes

import (
	"construfin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects       = "/projects"
	PathPhases         = "/phases"
	PathPurchaseOrders = "/purchase-orders"
	PathLabourBatches  = "/labour/batches"
	PathFees           = "/fees"
	PathAllocations    = "/investors/allocations"
)

type financeHandlers struct {
	projects   *handlers.ProjectHandler
	phases     *handlers.PhaseHandler
	orders     *handlers.PurchaseOrderHandler
	labour     *handlers.LabourHandler
	fees       *handlers.ProfessionalFeeHandler
	investors  *handlers.InvestorHandler
	recalc     *handlers.RecalculationHandler
	validation *handlers.ValidationHandler
}

func addFinanceRoutes(rg *gin.RouterGroup, h financeHandlers) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.projects.CreateProject)
		projects.GET("/:project_id", h.projects.GetProject)
		projects.PUT("/:project_id/budget", h.projects.SetBudget)
		projects.GET("/:project_id/allocation-summary", h.projects.GetAllocationSummary)
		projects.GET("/:project_id/phases", h.phases.ListPhasesByProject)
		projects.GET("/:project_id/purchase-orders", h.orders.ListOrdersByProject)
		projects.GET("/:project_id/allocations", h.investors.ListAllocationsByProject)
		projects.POST("/:project_id/recalculate", h.recalc.RecalculateProject)
		projects.POST("/:project_id/capital/validate", h.validation.ValidateCapitalSpend)
		projects.POST("/:project_id/capital/validate-removal", h.validation.ValidateCapitalRemoval)
		projects.POST("/:project_id/budget/validate", h.validation.ValidateProjectBudget)
	}

	phases := rg.Group(PathPhases)
	{
		phases.POST("", h.phases.CreatePhase)
		phases.GET("/:phase_id", h.phases.GetPhase)
		phases.PUT("/:phase_id/allocation", h.phases.SetAllocation)
		phases.PATCH("/:phase_id/status", h.phases.UpdateStatus)
		phases.POST("/:phase_id/recalculate", h.recalc.RecalculatePhase)
		phases.POST("/:phase_id/budget/validate", h.validation.ValidatePhaseBudget)
	}

	orders := rg.Group(PathPurchaseOrders)
	{
		orders.POST("", h.orders.CreateOrder)
		orders.GET("/:order_id", h.orders.GetOrder)
		orders.PATCH("/:order_id/accept", h.orders.AcceptOrder)
		orders.PATCH("/:order_id/reject", h.orders.RejectOrder)
		orders.POST("/:order_id/modification", h.orders.ProposeModification)
		orders.PATCH("/:order_id/modification", h.orders.ApproveModification)
		orders.POST("/:order_id/reassign", h.orders.ReassignOrder)
	}

	labour := rg.Group(PathLabourBatches)
	{
		labour.POST("", h.labour.CreateBatch)
		labour.GET("/:batch_id", h.labour.GetBatch)
		labour.PATCH("/:batch_id/approve", h.labour.ApproveBatch)
	}

	fees := rg.Group(PathFees)
	{
		fees.POST("", h.fees.CreateFee)
		fees.GET("/:fee_id", h.fees.GetFee)
		fees.PATCH("/:fee_id/approve", h.fees.ApproveFee)
		fees.PATCH("/:fee_id/reject", h.fees.RejectFee)
		fees.POST("/:fee_id/payments", h.fees.PayFee)
	}

	allocations := rg.Group(PathAllocations)
	{
		allocations.POST("", h.investors.AllocateCapital)
		allocations.PATCH("/:allocation_id", h.investors.UpdateAllocation)
	}
}
