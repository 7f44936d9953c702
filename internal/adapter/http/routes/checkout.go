package routes

import (
	"translation_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCheckout = "/checkout"

// addCheckoutRoutes registers the customer facing payment endpoints. They carry no admin token;
// the charged amount always comes from the stored quote totals.
func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:quote_id/payments", h.PayQuote)
		checkout.GET("/:quote_id/payments", h.GetLatestPayment)
	}
}
