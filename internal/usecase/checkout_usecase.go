package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/infrastructure/metrics"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultPaymentClaimTTL = 15 * time.Minute

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrQuoteNotPayable                = errors.New("quote is not open for payment")
	ErrQuoteNotPriced                 = errors.New("quote has no payable total")
	ErrPaymentInProgress              = errors.New("a payment for this quote is already in progress")
	ErrQuoteAlreadyPaid               = errors.New("quote already has an approved payment")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// CheckoutConfig carries the payment settings the checkout needs besides the gateway.
type CheckoutConfig struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
	// ClaimTTL bounds how long a pending checkout blocks another one; 0 uses the default.
	ClaimTTL time.Duration
}

func (c CheckoutConfig) claimTTL() time.Duration {
	if c.ClaimTTL <= 0 {
		return defaultPaymentClaimTTL
	}
	return c.ClaimTTL
}

func (c CheckoutConfig) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(c.AccessToken), "TEST-")
}

// ICheckoutUseCase turns a sent/accepted quote into a paid order.
type ICheckoutUseCase interface {
	Pay(ctx context.Context, quoteID string, payload json.RawMessage) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
	GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.Payment, error)
}

type CheckoutUseCase struct {
	repo     interfaces.IPaymentRepository
	quotes   interfaces.IQuoteRepository
	totals   interfaces.IQuoteTotalsRepository
	gateway  interfaces.IPaymentGateway
	activity interfaces.IActivityLogger
	notifier interfaces.ISystemNotifier
	cfg      CheckoutConfig
	now      func() time.Time
	log      zerolog.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	repo interfaces.IPaymentRepository,
	quotes interfaces.IQuoteRepository,
	totals interfaces.IQuoteTotalsRepository,
	gateway interfaces.IPaymentGateway,
	activity interfaces.IActivityLogger,
	cfg CheckoutConfig,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		repo:     repo,
		quotes:   quotes,
		totals:   totals,
		gateway:  gateway,
		activity: activity,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With().Str("component", "payment").Str("layer", "usecase").Logger(),
	}
}

// WithNotifier makes approved payments post a notice into the quote conversation.
func (u *CheckoutUseCase) WithNotifier(n interfaces.ISystemNotifier) *CheckoutUseCase {
	u.notifier = n
	return u
}

// Pay charges the persisted total of the quote, stores the payment and, when approved,
// converts the quote into an order.
//
// The quote is claimed before the gateway is called, so concurrent checkouts of one quote
// charge at most once, and a quote with an approved payment is never charged again.
// Gateway failures and rejected payments release the claim; pending payments keep it
// until it expires.
func (u *CheckoutUseCase) Pay(ctx context.Context, quoteID string, payload json.RawMessage) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidQuoteID
	}
	u.log.Info().Str("quote_id", quoteID).Int("payload_len", len(payload)).Msg("checkout start")

	if len(payload) == 0 || !json.Valid(payload) {
		if !u.cfg.Mock {
			return entities.Payment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if q.Status != entities.QuoteStatusSent && q.Status != entities.QuoteStatusAccepted {
		u.log.Warn().Str("quote_id", quoteID).Str("status", string(q.Status)).Msg("quote not payable")
		return entities.Payment{}, ErrQuoteNotPayable
	}

	// The amount always comes from the stored totals, never from the client.
	totals, err := u.totals.GetByQuoteID(ctx, q.ID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("load totals: %w", err)
	}
	if totals.QuoteID == "" || totals.Breakdown.Total <= 0 {
		return entities.Payment{}, ErrQuoteNotPriced
	}
	amount := totals.Breakdown.Total

	payload, err = u.enrichPayload(q, amount, payload)
	if err != nil {
		return entities.Payment{}, err
	}

	claimID := uuid.NewString()
	now := u.now()
	claimed, err := u.quotes.ClaimForPayment(ctx, q.ID, claimID, now, now.Add(u.cfg.claimTTL()))
	if err != nil {
		return entities.Payment{}, fmt.Errorf("claim quote: %w", err)
	}
	if !claimed {
		u.log.Warn().Str("quote_id", quoteID).Msg("quote already being paid")
		return entities.Payment{}, ErrPaymentInProgress
	}
	if err := u.ensureNotPaid(ctx, q.ID); err != nil {
		u.releaseClaim(ctx, q.ID, claimID)
		return entities.Payment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error().Err(err).Str("quote_id", quoteID).Msg("payment gateway failed")
		u.releaseClaim(ctx, q.ID, claimID)
		return entities.Payment{}, classifyGatewayError(err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("provider response is not a json object")
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		QuoteID:            q.ID,
		Amount:             amount,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error().Err(err).Str("quote_id", quoteID).Str("payment_id", p.ID).Msg("payment repository create failed")
		return entities.Payment{}, err
	}
	metrics.PaymentsCreated.WithLabelValues(string(created.Status)).Inc()

	if created.Status == entities.PaymentStatusRejected {
		u.releaseClaim(ctx, q.ID, claimID)
	}
	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusConverted); err != nil {
			// The payment is stored; the quote can be converted by hand from the admin panel.
			u.log.Error().Err(err).Str("quote_id", quoteID).Str("payment_id", created.ID).Msg("quote conversion failed")
		}
		logActivity(ctx, u.activity, entities.ActivityLogEntry{
			AdminID:    "system",
			ActionType: "order_created",
			TargetID:   q.ID,
			Details: map[string]any{
				"quote_number": q.QuoteNumber,
				"payment_id":   created.ID,
				"amount":       created.Amount,
			},
		})
		if u.notifier != nil {
			body := fmt.Sprintf("Payment of $%.2f received. Your order is confirmed.", created.Amount)
			if _, err := u.notifier.PostSystem(ctx, q.ID, body); err != nil {
				u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("payment notice not posted")
			}
		}
	}

	u.log.Info().
		Str("quote_id", quoteID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Float64("amount", created.Amount).
		Msg("checkout done")
	return created, nil
}

// ensureNotPaid covers an approved payment whose quote conversion failed.
func (u *CheckoutUseCase) ensureNotPaid(ctx context.Context, quoteID string) error {
	payments, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusApproved {
			u.log.Warn().Str("quote_id", quoteID).Str("payment_id", p.ID).Msg("quote already paid")
			return ErrQuoteAlreadyPaid
		}
	}
	return nil
}

func (u *CheckoutUseCase) releaseClaim(ctx context.Context, quoteID, claimID string) {
	if err := u.quotes.ReleasePaymentClaim(ctx, quoteID, claimID); err != nil {
		u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("payment claim not released")
	}
}

// enrichPayload links the provider payment to the quote and forces the server-side amount.
func (u *CheckoutUseCase) enrichPayload(q entities.Quote, amount float64, payload json.RawMessage) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !u.cfg.Mock {
			return nil, ErrInvalidPaymentPayload
		}
		req = map[string]any{}
	}

	if !u.cfg.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, fmt.Errorf("%w: payment_method_id is required", ErrInvalidPaymentPayload)
		}
		u.normalizeSandboxPayer(req)
		u.ensurePayerDefaults(req, q)
		if !hasPayer(req) {
			return nil, fmt.Errorf("%w: payer email or id is required", ErrInvalidPaymentPayload)
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = q.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Translation quote %s", q.QuoteNumber)
	}
	req["transaction_amount"] = amount

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *CheckoutUseCase) ensurePayerDefaults(m map[string]any, q entities.Quote) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case u.cfg.TestPayerEmail != "":
		payer["email"] = u.cfg.TestPayerEmail
	case u.cfg.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	case q.CustomerEmail != "":
		payer["email"] = q.CustomerEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email; sandbox
// accounts cannot be charged by id.
func (u *CheckoutUseCase) normalizeSandboxPayer(m map[string]any) {
	if !u.cfg.sandbox() || u.cfg.TestPayerUserID == "" || u.cfg.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.cfg.TestPayerUserID {
		return
	}
	payer["email"] = u.cfg.TestPayerEmail
	delete(payer, "id")
	u.log.Debug().Msg("mapped sandbox payer user id to email")
}

func (u *CheckoutUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func (u *CheckoutUseCase) GetLatestByQuoteID(ctx context.Context, quoteID string) (entities.Payment, error) {
	payments, err := u.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
