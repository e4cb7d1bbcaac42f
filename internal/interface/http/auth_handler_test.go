package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tardigrade-project/user-service/pkg/helpers"
)

func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(jwt, nil)

	r := gin.New()
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/token", h.Token)
		auth.POST("/refresh", h.Refresh)
	}
	return r
}

type tokenPairBody struct {
	Data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	} `json:"data"`
}

func TestToken_IssuesPair(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(jwt)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/token", gin.H{"subject": "user-42"})
	require.Equal(t, http.StatusOK, w.Code)

	var body tokenPairBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bearer", body.Data.TokenType)

	claims, err := jwt.ParseAccessToken(body.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)

	rclaims, err := jwt.ParseRefreshToken(body.Data.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-42", rclaims.Subject)
}

func TestToken_MissingSubjectReturns400(t *testing.T) {
	r := newAuthRouter(helpers.NewJWTManager("test-secret", time.Minute, time.Minute))

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/token", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefresh_RotatesPair(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(jwt)

	refresh, _, err := jwt.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", gin.H{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, w.Code)

	var body tokenPairBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	claims, err := jwt.ParseAccessToken(body.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(jwt)

	access, _, err := jwt.GenerateAccessToken("user-42")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", gin.H{"refresh_token": access})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	r := newAuthRouter(helpers.NewJWTManager("test-secret", time.Minute, time.Minute))

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", gin.H{"refresh_token": "junk"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
