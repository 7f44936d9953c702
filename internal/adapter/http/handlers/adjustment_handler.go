package handlers

import (
	"net/http"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdjustmentHandler handles manual price adjustments (self-serve quotes only).
type AdjustmentHandler struct {
	usecase usecase.IAdjustmentUseCase
}

func NewAdjustmentHandler(uc usecase.IAdjustmentUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{usecase: uc}
}

func (h *AdjustmentHandler) ListAdjustments(c *gin.Context) {
	adjs, err := h.usecase.List(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAdjustments(adjs))
}

func (h *AdjustmentHandler) CreateAdjustment(c *gin.Context) {
	var payload request.AdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	adj, totals, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.AdjustmentWriteResponse{Adjustment: response.FromAdjustment(adj), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *AdjustmentHandler) UpdateAdjustment(c *gin.Context) {
	var payload request.AdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	adj, totals, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), c.Param("adjustment_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.AdjustmentWriteResponse{Adjustment: response.FromAdjustment(adj), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *AdjustmentHandler) DeleteAdjustment(c *gin.Context) {
	totals, err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), c.Param("adjustment_id"))
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted(totals))
}
