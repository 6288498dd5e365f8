package handlers

import (
	"net/http"

	request "construfin/internal/adapter/http/dto/request"
	response "construfin/internal/adapter/http/dto/response"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LabourHandler struct {
	usecase usecase.ILabourUseCase
}

func NewLabourHandler(uc usecase.ILabourUseCase) *LabourHandler {
	return &LabourHandler{usecase: uc}
}

func (h *LabourHandler) CreateBatch(c *gin.Context) {
	var payload request.CreateLabourBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	batch, err := h.usecase.CreateBatch(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLabourBatch(batch))
}

func (h *LabourHandler) GetBatch(c *gin.Context) {
	batch, err := h.usecase.GetBatchByID(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLabourBatch(batch))
}

// ApproveBatch commits the batch total into the phase and project spending
// ledgers in one transaction.
func (h *LabourHandler) ApproveBatch(c *gin.Context) {
	batch, err := h.usecase.ApproveBatch(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLabourBatch(batch))
}
