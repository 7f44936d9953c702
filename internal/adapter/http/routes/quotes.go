package routes

import (
	"translation_backoffice/internal/domain/permissions"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes         = "/quotes"
	PathLineItems      = "/line-items"
	PathCertifications = "/certifications"
	PathAdjustments    = "/adjustments"
	PathMessages       = "/messages"
)

func addQuoteRoutes(rg *gin.RouterGroup, h Handlers) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", can(permissions.ResourceQuotes, permissions.ActionView), h.Quotes.ListQuotes)
		quotes.POST("", can(permissions.ResourceQuotes, permissions.ActionCreate), h.Quotes.CreateQuote)
		quotes.GET("/:quote_id", can(permissions.ResourceQuotes, permissions.ActionView), h.Quotes.GetQuote)
		quotes.PATCH("/:quote_id/status", can(permissions.ResourceQuotes, permissions.ActionEdit), h.Quotes.UpdateQuoteStatus)
		quotes.PUT("/:quote_id/active-run", can(permissions.ResourceQuotes, permissions.ActionEdit), h.Quotes.SetActiveRun)
		quotes.GET("/:quote_id/totals", can(permissions.ResourceQuotes, permissions.ActionView), h.Quotes.GetTotals)
		quotes.GET("/:quote_id/payments", can(permissions.ResourcePayments, permissions.ActionView), h.Checkout.ListPayments)
	}

	items := quotes.Group("/:quote_id" + PathLineItems)
	{
		items.GET("", can(permissions.ResourceLineItems, permissions.ActionView), h.LineItems.ListLineItems)
		items.POST("", can(permissions.ResourceLineItems, permissions.ActionCreate), h.LineItems.CreateLineItem)
		items.PUT("/:line_item_id", can(permissions.ResourceLineItems, permissions.ActionEdit), h.LineItems.UpdateLineItem)
		items.DELETE("/:line_item_id", can(permissions.ResourceLineItems, permissions.ActionDelete), h.LineItems.DeleteLineItem)
	}

	certs := quotes.Group("/:quote_id" + PathCertifications)
	{
		certs.GET("", can(permissions.ResourceCertifications, permissions.ActionView), h.Certifications.ListCertifications)
		certs.POST("", can(permissions.ResourceCertifications, permissions.ActionCreate), h.Certifications.CreateCertification)
		certs.PUT("/:certification_id", can(permissions.ResourceCertifications, permissions.ActionEdit), h.Certifications.UpdateCertification)
		certs.DELETE("/:certification_id", can(permissions.ResourceCertifications, permissions.ActionDelete), h.Certifications.DeleteCertification)
	}

	adjs := quotes.Group("/:quote_id" + PathAdjustments)
	{
		adjs.GET("", can(permissions.ResourceAdjustments, permissions.ActionView), h.Adjustments.ListAdjustments)
		adjs.POST("", can(permissions.ResourceAdjustments, permissions.ActionCreate), h.Adjustments.CreateAdjustment)
		adjs.PUT("/:adjustment_id", can(permissions.ResourceAdjustments, permissions.ActionEdit), h.Adjustments.UpdateAdjustment)
		adjs.DELETE("/:adjustment_id", can(permissions.ResourceAdjustments, permissions.ActionDelete), h.Adjustments.DeleteAdjustment)
	}

	msgs := quotes.Group("/:quote_id" + PathMessages)
	{
		msgs.GET("", can(permissions.ResourceMessages, permissions.ActionView), h.Messages.ListMessages)
		msgs.POST("", can(permissions.ResourceMessages, permissions.ActionCreate), h.Messages.PostMessage)
		msgs.POST("/read", can(permissions.ResourceMessages, permissions.ActionView), h.Messages.MarkRead)
	}
}
