package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "translation_backoffice/docs"
	"translation_backoffice/internal/adapter/http/handlers"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/adapter/http/realtime"
	"translation_backoffice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Quotes         *handlers.QuoteHandler
	LineItems      *handlers.LineItemHandler
	Certifications *handlers.CertificationHandler
	Adjustments    *handlers.AdjustmentHandler
	Messages       *handlers.MessageHandler
	Activity       *handlers.ActivityHandler
	Checkout       *handlers.CheckoutHandler
	Chat           *realtime.Hub
}

// Run wires the application, serves HTTP on cfg.HTTP.Addr and blocks until ctx is
// cancelled or the server fails.
func Run(ctx context.Context, cfg config.Config) error {
	app, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	router := NewRouter(cfg, app)
	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.Chat.Run(gctx)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewRouter builds the gin engine with every route, its authentication and its permission guard.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h.Checkout)

	authed := v1.Group("", middleware.Auth([]byte(cfg.JWT.Secret)))
	addQuoteRoutes(authed, h)
	addAdminRoutes(authed, h.Activity)
	addRealtimeRoutes(authed, h.Chat)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.FullPath()).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
}
