package handlers

import (
	"net/http"

	request "construfin/internal/adapter/http/dto/request"
	response "construfin/internal/adapter/http/dto/response"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type InvestorHandler struct {
	usecase usecase.IInvestorAllocationUseCase
}

func NewInvestorHandler(uc usecase.IInvestorAllocationUseCase) *InvestorHandler {
	return &InvestorHandler{usecase: uc}
}

// AllocateCapital assigns part of an investor's capital to a project. The
// allocation row and the project capital increase land in one transaction.
func (h *InvestorHandler) AllocateCapital(c *gin.Context) {
	var payload request.AllocateCapitalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	alloc, err := h.usecase.Allocate(c.Request.Context(), usecase.AllocateCapitalInput{
		InvestorID:     payload.InvestorID,
		ProjectID:      payload.ProjectID,
		Amount:         payload.Amount,
		LoanPercentage: payload.LoanPercentage,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvestorAllocation(alloc))
}

func (h *InvestorHandler) ListAllocationsByProject(c *gin.Context) {
	allocs, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvestorAllocations(allocs))
}

func (h *InvestorHandler) UpdateAllocation(c *gin.Context) {
	var payload request.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateAmount(c.Request.Context(), c.Param("allocation_id"), payload.Amount)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUpdateAllocationResult(result))
}
