package auth_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, provideUserService,
	provideAuthController, provideUserController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(users repositories.UserRepository, jwt *utils.JWTManager, logger zerolog.Logger) services.AuthServiceInterface {
	return services.NewAuthService(users, jwt, logger)
}

func provideUserService(users repositories.UserRepository) services.UserServiceInterface {
	return services.NewUserService(users)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
