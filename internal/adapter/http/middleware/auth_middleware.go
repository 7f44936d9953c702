package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/domain/permissions"
	"translation_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const (
	ctxAdminID = "admin_id"
	ctxRole    = "admin_role"

	authCookie = "auth_token"
)

var (
	errMissingToken = errors.New("authorization token not provided")
	errBadHeader    = errors.New("invalid authorization header format")
)

// Auth validates the admin bearer token (HS256, claims sub and role) and stores the admin id
// and role in the gin context. The token may also come from the auth_token cookie, which is
// what browsers send on websocket upgrades.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := bearerToken(c)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.Debug().Err(err).Str("component", "auth").Msg("token rejected")
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		adminID, _ := claims.GetSubject()
		role, _ := claims["role"].(string)
		role = permissions.NormalizeRole(role)
		if strings.TrimSpace(adminID) == "" || !permissions.IsKnownRole(role) {
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		c.Set(ctxAdminID, adminID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequirePermission aborts with 403 unless the authenticated role may perform action on resource.
func RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxRole)
		if !permissions.Can(role, resource, action) {
			log.Info().
				Str("component", "auth").
				Str("admin_id", c.GetString(ctxAdminID)).
				Str("role", role).
				Str("resource", resource).
				Str("action", action).
				Msg("permission denied")
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Permission denied", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ActorFrom returns the admin performing the current request.
func ActorFrom(c *gin.Context) entities.Actor {
	return entities.Actor{
		AdminID:   c.GetString(ctxAdminID),
		Role:      c.GetString(ctxRole),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func bearerToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", errBadHeader
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie(authCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", errMissingToken
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
