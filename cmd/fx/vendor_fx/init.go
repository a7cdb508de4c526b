package vendor_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideVendorRepo, provideVendorServiceRepo,
	provideVendorService, provideVendorServiceItemService,
	provideVendorController, provideVendorServiceController)

func provideVendorRepo(db *gorm.DB) repositories.VendorRepository {
	return repositories.NewVendorRepository(db)
}

func provideVendorServiceRepo(db *gorm.DB) repositories.VendorServiceRepository {
	return repositories.NewVendorServiceRepository(db)
}

func provideVendorService(
	vendors repositories.VendorRepository,
	categories *repositories.LookupRepository[db_models.VendorCategory],
) services.VendorServiceInterface {
	return services.NewVendorService(vendors, categories)
}

func provideVendorServiceItemService(
	items repositories.VendorServiceRepository,
	vendors repositories.VendorRepository,
	events repositories.EventRepository,
) services.VendorServiceItemServiceInterface {
	return services.NewVendorServiceItemService(items, vendors, events)
}

func provideVendorController(vendorService services.VendorServiceInterface) *controllers.VendorController {
	return controllers.NewVendorController(vendorService)
}

func provideVendorServiceController(itemService services.VendorServiceItemServiceInterface) *controllers.VendorServiceController {
	return controllers.NewVendorServiceController(itemService)
}
