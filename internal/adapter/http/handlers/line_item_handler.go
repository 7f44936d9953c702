package handlers

import (
	"net/http"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LineItemHandler handles quote line items. Writes answer with the recomputed totals.
type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

func (h *LineItemHandler) ListLineItems(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLineItems(items))
}

func (h *LineItemHandler) CreateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	li, totals, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.LineItemWriteResponse{LineItem: response.FromLineItem(li), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *LineItemHandler) UpdateLineItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	li, totals, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), c.Param("line_item_id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.LineItemWriteResponse{LineItem: response.FromLineItem(li), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *LineItemHandler) DeleteLineItem(c *gin.Context) {
	totals, err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), c.Param("line_item_id"))
	if err != nil {
		writeError(c, mapPricingError(err))
		return
	}
	c.JSON(http.StatusOK, response.Deleted(totals))
}
