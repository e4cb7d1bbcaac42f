package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tardigrade-project/user-service/internal/container"
	handlers "github.com/tardigrade-project/user-service/internal/interface/http"
	"github.com/tardigrade-project/user-service/internal/interface/middleware"
	"github.com/tardigrade-project/user-service/pkg/helpers"
)

// UserModule wires user CRUD handlers and the bearer-token middleware into
// routes under /users. All routes require an access token.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	users.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()))
	{
		users.POST("", m.Handler.Create)
		users.GET("", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.PUT("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
