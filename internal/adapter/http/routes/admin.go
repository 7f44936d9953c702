package routes

import (
	"translation_backoffice/internal/adapter/http/handlers"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/adapter/http/realtime"
	"translation_backoffice/internal/domain/permissions"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin    = "/admin"
	PathRealtime = "/ws"
)

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.ActivityHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/permissions", h.GetPermissions)
		admin.GET("/activity", can(permissions.ResourceActivityLog, permissions.ActionView), h.ListActivity)
		admin.GET("/activity/export", can(permissions.ResourceActivityLog, permissions.ActionExport), h.ExportActivity)
	}
}

func addRealtimeRoutes(rg *gin.RouterGroup, hub *realtime.Hub) {
	rg.GET(PathRealtime+PathQuotes+"/:quote_id", can(permissions.ResourceMessages, permissions.ActionView), hub.ServeQuote)
}

func can(resource, action string) gin.HandlerFunc {
	return middleware.RequirePermission(resource, action)
}
