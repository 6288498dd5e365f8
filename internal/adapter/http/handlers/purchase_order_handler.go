package handlers

import (
	"net/http"

	request "construfin/internal/adapter/http/dto/request"
	response "construfin/internal/adapter/http/dto/response"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler handles the purchase order lifecycle: creation,
// supplier responses (accept/reject/modify), modification approval with
// optional auto-commit, and reassignment of retryable rejections.

type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{usecase: uc}
}

func (h *PurchaseOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), usecase.CreatePurchaseOrderInput{
		ProjectID:  payload.ProjectID,
		PhaseID:    payload.PhaseID,
		SupplierID: payload.SupplierID,
		UnitCost:   payload.UnitCost,
		Quantity:   payload.Quantity,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPurchaseOrder(order))
}

func (h *PurchaseOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrder(order))
}

func (h *PurchaseOrderHandler) ListOrdersByProject(c *gin.Context) {
	orders, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrders(orders))
}

func (h *PurchaseOrderHandler) AcceptOrder(c *gin.Context) {
	order, err := h.usecase.Accept(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrder(order))
}

func (h *PurchaseOrderHandler) RejectOrder(c *gin.Context) {
	var payload request.RejectPurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Reject(c.Request.Context(), c.Param("order_id"), payload.ReasonCategory, payload.Subcategory)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrder(order))
}

func (h *PurchaseOrderHandler) ProposeModification(c *gin.Context) {
	var payload request.ProposeModificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ProposeModification(c.Request.Context(), c.Param("order_id"), payload.ToModification())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchaseOrder(order))
}

func (h *PurchaseOrderHandler) ApproveModification(c *gin.Context) {
	var payload request.ApproveModificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approve == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ApproveModification(c.Request.Context(), c.Param("order_id"), *payload.Approve, payload.AutoCommit)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApproveModificationResult(result))
}

func (h *PurchaseOrderHandler) ReassignOrder(c *gin.Context) {
	var payload request.ReassignPurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Reassign(c.Request.Context(), c.Param("order_id"), payload.NewSupplierID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPurchaseOrder(order))
}
