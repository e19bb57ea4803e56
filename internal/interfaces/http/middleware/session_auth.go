package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"keygate.backend/internal/interfaces/http/response"
	"keygate.backend/internal/usecases"
	"keygate.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "session_token"
	// SessionTokenKey is the context key for the validated session token
	SessionTokenKey = "sessionToken"
	// IsAdminKey is the context key for the session's admin flag
	IsAdminKey = "isAdmin"
)

// ExtractSessionToken pulls the session token from the Authorization header,
// falling back to the session cookie. Returns "" when neither is present.
func ExtractSessionToken(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerPrefix) {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerPrefix)); token != "" {
			return token
		}
	}
	if token, err := c.Cookie(SessionCookieName); err == nil {
		return token
	}
	return ""
}

// SessionAuth creates a middleware that requires a valid, unexpired session.
func SessionAuth(sessionUsecase *usecases.SessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractSessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		status, err := sessionUsecase.Validate(c.Request.Context(), token)
		if err != nil {
			logger.Error(c.Request.Context(), "session validation failed", zap.Error(err))
			response.Error(c, err)
			c.Abort()
			return
		}

		if !status.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Session is invalid or expired",
			})
			return
		}

		c.Set(SessionTokenKey, token)
		c.Set(IsAdminKey, status.IsAdmin)

		c.Next()
	}
}

// GetSessionToken gets the validated session token from context
func GetSessionToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(SessionTokenKey)
	if !exists {
		return "", false
	}
	return token.(string), true
}

// GetIsAdmin gets the session's admin flag from context
func GetIsAdmin(c *gin.Context) (bool, bool) {
	isAdmin, exists := c.Get(IsAdminKey)
	if !exists {
		return false, false
	}
	return isAdmin.(bool), true
}

// RequireAdmin creates a middleware that requires an admin session. It must
// run after SessionAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := GetIsAdmin(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}

		c.Next()
	}
}
