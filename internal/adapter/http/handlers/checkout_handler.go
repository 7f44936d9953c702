package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/usecase"
	"translation_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CheckoutHandler handles quote payments through the payment gateway.
type CheckoutHandler struct {
	usecase  usecase.ICheckoutUseCase
	mockMode bool
	log      zerolog.Logger
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, mockMode bool) *CheckoutHandler {
	return &CheckoutHandler{
		usecase:  uc,
		mockMode: mockMode,
		log:      log.With().Str("component", "payment").Str("layer", "handler").Logger(),
	}
}

// PayQuote charges the stored total of a quote.
func (h *CheckoutHandler) PayQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")
	h.log.Info().Str("quote_id", quoteID).Msg("pay start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn().Err(err).Str("quote_id", quoteID).Msg("invalid payload")
			writeError(c, errInvalidRequest)
			return
		}
		h.log.Info().Err(err).Str("quote_id", quoteID).Msg("payload invalid in mock mode, using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Pay(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		h.log.Error().Err(err).Str("quote_id", quoteID).Msg("pay failed")
		writeError(c, mapCheckoutError(err))
		return
	}
	h.log.Info().Str("quote_id", quoteID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("pay success")

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// GetLatestPayment returns the most recent payment of a quote.
func (h *CheckoutHandler) GetLatestPayment(c *gin.Context) {
	p, err := h.usecase.GetLatestByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func (h *CheckoutHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		writeError(c, mapCheckoutError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// readMPPayload accepts either the gateway payload itself or {"mp_payload": {...}}.
// An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req request.CheckoutRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			trimmed := strings.TrimSpace(string(req.MPPayload))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return req.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPayable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PAYABLE", "Quote is not open for payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotPriced):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PRICED", "Quote has no payable total", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this quote is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteAlreadyPaid):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_PAID", "Quote already has an approved payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
