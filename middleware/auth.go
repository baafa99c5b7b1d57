package middleware

import (
	"net/http"
	"strings"

	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and stores the caller in the context.
func JWTAuthMiddleware(verifier *utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			utils.GetLogger().Debug("Token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		roles := make([]models.Role, 0, len(claims.Roles))
		for _, r := range claims.Roles {
			if role, err := models.ParseRole(r); err == nil {
				roles = append(roles, role)
			}
		}

		c.Set(utils.CtxUserID, claims.Subject)
		c.Set(utils.CtxEmail, claims.Email)
		c.Set(utils.CtxRoles, roles)
		c.Set(utils.CtxAuthToken, tokenString)
		c.Next()
	}
}

// GetCaller returns the authenticated caller stored by JWTAuthMiddleware.
func GetCaller(c *gin.Context) (models.Caller, bool) {
	id := c.GetString(utils.CtxUserID)
	if id == "" {
		return models.Caller{}, false
	}
	caller := models.Caller{ID: id, Email: c.GetString(utils.CtxEmail)}
	if roles, ok := c.Get(utils.CtxRoles); ok {
		caller.Roles, _ = roles.([]models.Role)
	}
	return caller, true
}
