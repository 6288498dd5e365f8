package handlers

import (
	"net/http"

	"construfin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RecalculationHandler exposes on-demand recalculation. The derived summary
// is returned directly; persistence happens inside the engine.

type RecalculationHandler struct {
	engine usecase.IRecalculationUseCase
}

func NewRecalculationHandler(engine usecase.IRecalculationUseCase) *RecalculationHandler {
	return &RecalculationHandler{engine: engine}
}

func (h *RecalculationHandler) RecalculateProject(c *gin.Context) {
	summary, err := h.engine.RecalculateProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *RecalculationHandler) RecalculatePhase(c *gin.Context) {
	summary, err := h.engine.RecalculatePhase(c.Request.Context(), c.Param("phase_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}
