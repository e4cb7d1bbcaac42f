package router

import (
	userapp "github.com/tardigrade-project/user-service/internal/application"
	"github.com/tardigrade-project/user-service/internal/container"
	pginfra "github.com/tardigrade-project/user-service/internal/infrastructure/postgres"
	handlers "github.com/tardigrade-project/user-service/internal/interface/http"
	"github.com/tardigrade-project/user-service/internal/router/modules"
)

// InitModules builds all application modules from container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := userapp.NewService(repo, container.GetLogger())

	userHandler := handlers.NewUserHandler(service, container.GetLogger())
	authHandler := handlers.NewAuthHandler(container.GetJWT(), container.GetLogger())

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
}
