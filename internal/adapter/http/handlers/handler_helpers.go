package handlers

import (
	"net/http"

	"translation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// writeBindError answers a body that failed to bind with 400 and the binder message as details.
func writeBindError(c *gin.Context, err error) {
	writeError(c, errInvalidRequest.WithDetails(err.Error()))
}
