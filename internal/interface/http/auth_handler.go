package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tardigrade-project/user-service/pkg/helpers"
	"github.com/tardigrade-project/user-service/pkg/response"
	"github.com/tardigrade-project/user-service/pkg/validation"
)

// AuthHandler issues and rotates bearer tokens. Token state lives entirely
// in the token itself; there is no server-side session.
type AuthHandler struct {
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthHandler(jwt *helpers.JWTManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{JWT: jwt, Logger: logger}
}

type tokenRequest struct {
	Subject string `json:"subject" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type tokenPairResponse struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	TokenType        string    `json:"token_type"`
}

// Token issues an access/refresh pair for the given subject.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	pair, ok := h.issuePair(c, req.Subject)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, pair, "token issued", nil)
}

// Refresh validates a refresh token and issues a fresh pair for its subject.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	claims, err := h.JWT.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid or expired refresh token", nil)
		return
	}
	pair, ok := h.issuePair(c, claims.Subject)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, pair, "token refreshed", nil)
}

func (h *AuthHandler) issuePair(c *gin.Context, subject string) (tokenPairResponse, bool) {
	access, aexp, err := h.JWT.GenerateAccessToken(subject)
	if err != nil {
		h.tokenError(c, subject, err)
		return tokenPairResponse{}, false
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(subject)
	if err != nil {
		h.tokenError(c, subject, err)
		return tokenPairResponse{}, false
	}
	return tokenPairResponse{
		AccessToken:      access,
		AccessExpiresAt:  aexp,
		RefreshToken:     refresh,
		RefreshExpiresAt: rexp,
		TokenType:        "Bearer",
	}, true
}

func (h *AuthHandler) tokenError(c *gin.Context, subject string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("subject", subject).Error("token generation failed")
	}
	response.Error[any](c, http.StatusInternalServerError, "could not issue token", nil)
}
