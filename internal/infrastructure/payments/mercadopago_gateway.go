package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"translation_backoffice/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing PAYMENTS_MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates checkout payments through the Mercado Pago SDK.
// In mock mode it approves every payment locally and echoes the request payload.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      zerolog.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	l := log.With().Str("component", "payment").Str("layer", "gateway").Logger()
	if mock {
		l.Warn().Msg("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: l}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	l.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: l}, nil
}

// MockMode reports whether payments are approved locally.
func (g *MercadoPagoGateway) MockMode() bool {
	return g != nil && g.mockMode
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g.MockMode() {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug().Int("payload_len", len(requestPayload)).Msg("create payment")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error().Err(err).Msg("sdk create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := fmt.Sprintf("%d", resp.ID)
	g.log.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("payment created")

	return id, resp.Status, b, nil
}

func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	g.log.Info().Str("provider_payment_id", id).Msg("mock payment approved")
	return id, "approved", b, nil
}
