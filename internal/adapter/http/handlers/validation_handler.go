package handlers

import (
	"net/http"

	request "construfin/internal/adapter/http/dto/request"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ValidationHandler exposes dry-run checks: they report whether a proposed
// spend or capital removal would pass, without changing anything.

type ValidationHandler struct {
	capital *usecase.CapitalValidator
	budget  *usecase.BudgetValidator
}

func NewValidationHandler(capital *usecase.CapitalValidator, budget *usecase.BudgetValidator) *ValidationHandler {
	return &ValidationHandler{capital: capital, budget: budget}
}

func (h *ValidationHandler) ValidateCapitalSpend(c *gin.Context) {
	var payload request.ValidateSpendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.capital.ValidateAvailability(c.Request.Context(), c.Param("project_id"), payload.Amount)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ValidationHandler) ValidateCapitalRemoval(c *gin.Context) {
	var payload request.ValidateRemovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.capital.ValidateCapitalRemoval(c.Request.Context(), c.Param("project_id"), payload.Amount)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ValidationHandler) ValidateProjectBudget(c *gin.Context) {
	var payload request.ValidateSpendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.budget.ValidateProjectAvailability(c.Request.Context(), c.Param("project_id"), payload.Amount)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ValidationHandler) ValidatePhaseBudget(c *gin.Context) {
	var payload request.ValidateSpendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.budget.ValidatePhaseAvailability(c.Request.Context(), c.Param("phase_id"), payload.Amount)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}
