package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tardigrade-project/user-service/internal/container"
	handlers "github.com/tardigrade-project/user-service/internal/interface/http"
	"github.com/tardigrade-project/user-service/internal/interface/middleware"
)

// AuthModule exposes token issuance and refresh. Both endpoints are public
// and rate limited tighter than the rest of the API.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())

	auth := rg.Group("/auth")
	{
		auth.POST("/token", tokenLimiter, m.Handler.Token)
		auth.POST("/refresh", refreshLimiter, m.Handler.Refresh)
	}
}
