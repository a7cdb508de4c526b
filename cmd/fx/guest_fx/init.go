package guest_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideGuestRepo, provideGuestService, provideGuestController)

func provideGuestRepo(db *gorm.DB) repositories.GuestRepository {
	return repositories.NewGuestRepository(db)
}

func provideGuestService(
	guests repositories.GuestRepository,
	dietary *repositories.LookupRepository[db_models.DietaryPreference],
	relations *repositories.LookupRepository[db_models.RelationType],
	familyGroups *repositories.LookupRepository[db_models.FamilyGroup],
) services.GuestServiceInterface {
	return services.NewGuestService(guests, dietary, relations, familyGroups)
}

func provideGuestController(guestService services.GuestServiceInterface) *controllers.GuestController {
	return controllers.NewGuestController(guestService)
}
