package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/interfaces/http/middleware"
	"keygate.backend/internal/interfaces/http/response"
	"keygate.backend/internal/usecases"
)

// AuthHandler handles login, session introspection and logout
type AuthHandler struct {
	authUsecase    *usecases.AuthUsecase
	sessionUsecase *usecases.SessionUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionUsecase *usecases.SessionUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		sessionUsecase: sessionUsecase,
	}
}

// Login exchanges a plaintext access key for a session token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authUsecase.Authenticate(c.Request.Context(), input.Key)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !result.Valid {
		// invalid key is a normal outcome, answered in the login body shape
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid access key",
		})
		return
	}

	token, err := h.sessionUsecase.Issue(c.Request.Context(), result.IsAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Set session token in cookie, lifetime matching the expiry window
	maxAge := int(h.sessionUsecase.ExpiryWindow().Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"isAdmin": result.IsAdmin,
	})
}

// GetSession reports whether the caller holds a live session. An absent or
// unknown token answers 200 with valid=false; that is not an error state.
// GET /api/v1/auth/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	token := middleware.ExtractSessionToken(c)

	status, err := h.sessionUsecase.Validate(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !status.Valid {
		// absent, unknown and expired all look the same from outside
		response.Success(c, http.StatusOK, gin.H{
			"valid": false,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"valid":   true,
		"isAdmin": status.IsAdmin,
	})
}

// Logout deletes the caller's session. Idempotent: logging out without a
// session still succeeds.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractSessionToken(c)

	if err := h.sessionUsecase.Revoke(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	// Clear the session cookie
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
	})
}
