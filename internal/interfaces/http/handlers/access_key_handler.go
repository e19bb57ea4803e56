package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"keygate.backend/internal/domain/entities"
	domainerrors "keygate.backend/internal/domain/errors"
	"keygate.backend/internal/interfaces/http/response"
	"keygate.backend/internal/usecases"
)

// AccessKeyHandler handles the admin key management endpoints
type AccessKeyHandler struct {
	accessKeyUsecase *usecases.AccessKeyUsecase
}

// NewAccessKeyHandler creates a new access key handler
func NewAccessKeyHandler(accessKeyUsecase *usecases.AccessKeyUsecase) *AccessKeyHandler {
	return &AccessKeyHandler{
		accessKeyUsecase: accessKeyUsecase,
	}
}

// GenerateAccessKey issues a new access key and returns its plaintext once
// POST /api/v1/admin/generate-access-key
func (h *AccessKeyHandler) GenerateAccessKey(c *gin.Context) {
	var input entities.CreateAccessKeyInput

	// An empty body is a valid request for an unlabeled non-admin key
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	resp, err := h.accessKeyUsecase.CreateAccessKey(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":   true,
		"key":       resp.Key,
		"keyId":     resp.KeyID,
		"label":     resp.Label,
		"isAdmin":   resp.IsAdmin,
		"createdAt": resp.CreatedAt,
	})
}

// ListAccessKeys returns metadata for every issued key, revoked ones included
// GET /api/v1/admin/list-access-keys
func (h *AccessKeyHandler) ListAccessKeys(c *gin.Context) {
	keys, err := h.accessKeyUsecase.ListAccessKeys(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"keys":    keys,
	})
}

// RevokeAccessKey permanently disables a key
// POST /api/v1/admin/revoke
func (h *AccessKeyHandler) RevokeAccessKey(c *gin.Context) {
	var input struct {
		KeyID string `json:"keyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	keyID, err := uuid.Parse(input.KeyID)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid access key ID"))
		return
	}

	if err := h.accessKeyUsecase.RevokeAccessKey(c.Request.Context(), keyID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Access key not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
	})
}
