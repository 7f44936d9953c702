package handlers

import (
	"errors"
	"net/http"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/usecase"
	"translation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for quotes and their stored totals.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	totals  usecase.IQuoteTotalsUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, totals usecase.IQuoteTotalsUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, totals: totals}
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), payload.ToInput())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), payload.Status)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// SetActiveRun pins the analysis run used for pricing and returns the recomputed totals.
func (h *QuoteHandler) SetActiveRun(c *gin.Context) {
	var payload request.SetActiveRunRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	q, totals, err := h.usecase.SetActiveRun(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), payload.ResolveRunID())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.ActiveRunResponse{Quote: response.FromQuote(q), Totals: response.FromBreakdown(totals.Breakdown)})
}

func (h *QuoteHandler) GetTotals(c *gin.Context) {
	t, err := h.totals.Get(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteTotals(t))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrTotalsNotFound):
		return pkg.NewDomainErrorSimple("TOTALS_NOT_FOUND", "Quote totals not calculated yet", http.StatusNotFound)
	default:
		return mapPricingError(err)
	}
}
