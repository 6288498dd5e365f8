package handlers

import (
	"net/http"

	request "construfin/internal/adapter/http/dto/request"
	response "construfin/internal/adapter/http/dto/response"
	"construfin/internal/domain/entities"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PhaseHandler struct {
	usecase usecase.IPhaseUseCase
}

func NewPhaseHandler(uc usecase.IPhaseUseCase) *PhaseHandler {
	return &PhaseHandler{usecase: uc}
}

func (h *PhaseHandler) CreatePhase(c *gin.Context) {
	var payload request.CreatePhaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	phase, err := h.usecase.Create(c.Request.Context(), usecase.CreatePhaseInput{
		ProjectID: payload.ProjectID,
		Name:      payload.Name,
		Sequence:  payload.Sequence,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPhase(phase))
}

func (h *PhaseHandler) GetPhase(c *gin.Context) {
	phase, err := h.usecase.GetByID(c.Request.Context(), c.Param("phase_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPhase(phase))
}

func (h *PhaseHandler) ListPhasesByProject(c *gin.Context) {
	phases, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPhases(phases))
}

func (h *PhaseHandler) SetAllocation(c *gin.Context) {
	var payload request.SetAllocationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	phase, err := h.usecase.SetAllocation(c.Request.Context(), c.Param("phase_id"), payload.Amounts.ToCategoryAmounts())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPhase(phase))
}

func (h *PhaseHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdatePhaseStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	phase, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("phase_id"), entities.PhaseStatus(payload.Status), payload.CompletionPercentage)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPhase(phase))
}
