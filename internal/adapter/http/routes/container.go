package routes

import (
	"context"
	"fmt"
	"net/http"

	"translation_backoffice/internal/adapter/http/handlers"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/adapter/http/realtime"
	"translation_backoffice/internal/adapter/persistence/repository"
	"translation_backoffice/internal/domain/pricing"
	"translation_backoffice/internal/infrastructure/config"
	"translation_backoffice/internal/infrastructure/database"
	"translation_backoffice/internal/infrastructure/payments"
	"translation_backoffice/internal/usecase"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// buildApp connects the stores and builds every use case and handler. The returned cleanup
// closes the connections.
func buildApp(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	ddb := database.ConnectDynamoDB(ctx, cfg)

	if cfg.Postgres.AutoMigrate {
		if err := database.Migrate(cfg.Postgres.DSN, "up"); err != nil {
			return Handlers{}, nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}
	pool, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
	if err != nil {
		return Handlers{}, nil, err
	}

	var cache interfaces.ITotalsCache
	rdb := database.ConnectRedis(ctx, cfg.Redis.Addr)
	if rdb != nil {
		cache = repository.NewTotalsRedisCache(rdb, cfg.Redis.TotalsTTL)
	}

	cleanup := func() {
		pool.Close()
		if rdb != nil {
			_ = rdb.Close()
		}
	}

	calc, err := pricing.NewCalculator(cfg.Pricing.TaxRate)
	if err != nil {
		cleanup()
		return Handlers{}, nil, fmt.Errorf("pricing.tax_rate: %w", err)
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Tables.Quotes)
	lineItemRepo := repository.NewLineItemDynamoRepository(ddb, cfg.Tables.LineItems)
	certificationRepo := repository.NewCertificationDynamoRepository(ddb, cfg.Tables.Certifications)
	adjustmentRepo := repository.NewAdjustmentDynamoRepository(ddb, cfg.Tables.Adjustments)
	totalsRepo := repository.NewQuoteTotalsDynamoRepository(ddb, cfg.Tables.Totals)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, cfg.Tables.Payments)
	activityRepo := repository.NewActivityLogPostgresRepository(pool)
	messageRepo := repository.NewMessagePostgresRepository(pool)

	activityUseCase := usecase.NewActivityLogUseCase(activityRepo)
	totalsUseCase := usecase.NewQuoteTotalsUseCase(quoteRepo, lineItemRepo, certificationRepo, adjustmentRepo, totalsRepo, cache, calc, cfg.Pricing.MaxAttempts)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, totalsUseCase, activityUseCase)
	lineItemUseCase := usecase.NewLineItemUseCase(lineItemRepo, quoteRepo, totalsUseCase, activityUseCase)
	certificationUseCase := usecase.NewCertificationUseCase(certificationRepo, quoteRepo, lineItemRepo, totalsUseCase, activityUseCase)
	adjustmentUseCase := usecase.NewAdjustmentUseCase(adjustmentRepo, quoteRepo, totalsUseCase, activityUseCase)

	originAllowed := middleware.OriginAllowed(cfg.CORS.AllowedOrigins)
	hub := realtime.NewHub(func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || originAllowed(origin)
	})
	messageUseCase := usecase.NewMessageUseCase(messageRepo, quoteRepo, hub, activityUseCase)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.MercadoPagoAccessToken, cfg.Payments.Mock)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured, checkout disabled")
	} else {
		paymentGateway = mpGateway
	}
	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, quoteRepo, totalsRepo, paymentGateway, activityUseCase, usecase.CheckoutConfig{
		Mock:            cfg.Payments.Mock,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
		ClaimTTL:        cfg.Payments.ClaimTTL,
	}).WithNotifier(messageUseCase)

	return Handlers{
		Quotes:         handlers.NewQuoteHandler(quoteUseCase, totalsUseCase),
		LineItems:      handlers.NewLineItemHandler(lineItemUseCase),
		Certifications: handlers.NewCertificationHandler(certificationUseCase),
		Adjustments:    handlers.NewAdjustmentHandler(adjustmentUseCase),
		Messages:       handlers.NewMessageHandler(messageUseCase),
		Activity:       handlers.NewActivityHandler(activityUseCase),
		Checkout:       handlers.NewCheckoutHandler(checkoutUseCase, cfg.Payments.Mock),
		Chat:           hub,
	}, cleanup, nil
}
