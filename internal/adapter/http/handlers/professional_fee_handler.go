package handlers

import (
	"net/http"

	request "construfin/internal/adapter/http/dto/request"
	response "construfin/internal/adapter/http/dto/response"
	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfessionalFeeHandler struct {
	usecase usecase.IProfessionalFeeUseCase
}

func NewProfessionalFeeHandler(uc usecase.IProfessionalFeeUseCase) *ProfessionalFeeHandler {
	return &ProfessionalFeeHandler{usecase: uc}
}

func (h *ProfessionalFeeHandler) CreateFee(c *gin.Context) {
	var payload request.CreateFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	fee, err := h.usecase.Create(c.Request.Context(), usecase.CreateFeeInput{
		ServiceID:   payload.ServiceID,
		Description: payload.Description,
		Amount:      payload.Amount,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProfessionalFee(fee))
}

func (h *ProfessionalFeeHandler) GetFee(c *gin.Context) {
	fee, err := h.usecase.GetByID(c.Request.Context(), c.Param("fee_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfessionalFee(fee))
}

func (h *ProfessionalFeeHandler) ApproveFee(c *gin.Context) {
	fee, err := h.usecase.Approve(c.Request.Context(), c.Param("fee_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfessionalFee(fee))
}

func (h *ProfessionalFeeHandler) RejectFee(c *gin.Context) {
	fee, err := h.usecase.Reject(c.Request.Context(), c.Param("fee_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfessionalFee(fee))
}

// PayFee settles an approved fee through the payment gateway and moves its
// amount from the service's pending counter to paid.
func (h *ProfessionalFeeHandler) PayFee(c *gin.Context) {
	var payload request.PayFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	fee, err := h.usecase.Pay(c.Request.Context(), c.Param("fee_id"), payload.PaymentPayload)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfessionalFee(fee))
}
