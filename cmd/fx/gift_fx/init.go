package gift_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideGiftRepo, provideGiftService, provideGiftController)

func provideGiftRepo(db *gorm.DB) repositories.GiftRepository {
	return repositories.NewGiftRepository(db)
}

func provideGiftService(
	gifts repositories.GiftRepository,
	guests repositories.GuestRepository,
	giftTypes *repositories.LookupRepository[db_models.GiftType],
) services.GiftServiceInterface {
	return services.NewGiftService(gifts, guests, giftTypes)
}

func provideGiftController(giftService services.GiftServiceInterface) *controllers.GiftController {
	return controllers.NewGiftController(giftService)
}
