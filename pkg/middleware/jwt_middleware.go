package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/utils"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "user_id"

	ctxUserID = "user_id"
	ctxRole   = "Role"
	ctxClaims = "claims"
)

func JWTAuthMiddleware(jwtManager *utils.JWTManager, revoked mem.Store) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "No token provided")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			utils.AbortWithServiceError(c, err)
			return
		}

		if claims.ID != "" {
			_, isRevoked, err := revoked.Get(c.Request.Context(), mem.RevokedTokenPrefix+claims.ID)
			if err != nil {
				zap.L().Error("token denylist lookup failed", zap.Error(err))
				utils.AbortWithError(c, http.StatusServiceUnavailable, "Service unavailable")
				return
			}
			if isRevoked {
				utils.AbortWithServiceError(c, utils.ErrTokenRevoked)
				return
			}
		}

		// Pass user information to the next handler
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Set(ctxClaims, claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), ContextKeyUserID, claims.UserID))
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(ctxRole)

		if role != requiredRole {
			utils.AbortWithError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			return
		}

		c.Next()
	}
}

// UserID returns the id attached by JWTAuthMiddleware, or "".
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// Claims returns the validated token claims attached by JWTAuthMiddleware.
func Claims(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
