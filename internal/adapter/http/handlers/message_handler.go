package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/usecase"
	"translation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles the staff/customer conversation of a quote.
type MessageHandler struct {
	usecase usecase.IMessageUseCase
}

func NewMessageHandler(uc usecase.IMessageUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, errInvalidRequest.WithDetails("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	msgs, err := h.usecase.List(c.Request.Context(), c.Param("quote_id"), limit)
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(msgs))
}

func (h *MessageHandler) PostMessage(c *gin.Context) {
	var payload request.PostMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, err)
		return
	}

	m, err := h.usecase.Post(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"), payload.Body)
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMessage(m))
}

// MarkRead marks the customer messages of a quote as read by staff.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), middleware.ActorFrom(c), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapMessageError(err))
		return
	}
	c.JSON(http.StatusOK, response.MarkReadResponse{Updated: n})
}

func mapMessageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMessage):
		return pkg.NewDomainError("INVALID_MESSAGE", "Invalid message", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
