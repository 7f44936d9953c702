package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	request "translation_backoffice/internal/adapter/http/dto/request"
	response "translation_backoffice/internal/adapter/http/dto/response"
	"translation_backoffice/internal/adapter/http/middleware"
	"translation_backoffice/internal/domain/permissions"
	"translation_backoffice/internal/usecase"
	"translation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ActivityHandler serves the admin activity log and the caller's permission matrix.
type ActivityHandler struct {
	usecase usecase.IActivityLogUseCase
}

func NewActivityHandler(uc usecase.IActivityLogUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

func (h *ActivityHandler) ListActivity(c *gin.Context) {
	var q request.ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	entries, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		writeError(c, mapActivityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromActivity(entries))
}

// ExportActivity streams the filtered activity log as an xlsx workbook.
func (h *ActivityHandler) ExportActivity(c *gin.Context) {
	var q request.ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	// Buffered so a failed export can still answer with a JSON error.
	var buf bytes.Buffer
	if err := h.usecase.Export(c.Request.Context(), q.ToFilter(), &buf); err != nil {
		writeError(c, mapActivityError(err))
		return
	}

	actor := middleware.ActorFrom(c)
	h.usecase.Log(c.Request.Context(), actor.Entry("activity_log_exported", "", map[string]any{"rows_limit": q.Limit}))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="activity-%s.xlsx"`, time.Now().UTC().Format("20060102")))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GetPermissions returns the permission matrix of the authenticated admin.
func (h *ActivityHandler) GetPermissions(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	c.JSON(http.StatusOK, response.PermissionsResponse{Role: actor.Role, Permissions: permissions.Matrix(actor.Role)})
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidActivityFilter):
		return pkg.NewDomainError("INVALID_ACTIVITY_FILTER", "Invalid activity log filter", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
