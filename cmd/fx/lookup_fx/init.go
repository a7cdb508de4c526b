package lookup_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

// One repository, service, and controller per reference table. The
// generic types keep this to wiring only.
var Module = fx.Provide(
	provideEventTypeRepo, provideEventTypeService, provideEventTypeController,
	provideVendorCategoryRepo, provideVendorCategoryService, provideVendorCategoryController,
	provideDietaryPreferenceRepo, provideDietaryPreferenceService, provideDietaryPreferenceController,
	provideGiftTypeRepo, provideGiftTypeService, provideGiftTypeController,
	provideRelationTypeRepo, provideRelationTypeService, provideRelationTypeController,
	provideFamilyGroupRepo, provideFamilyGroupService, provideFamilyGroupController,
)

func lookupFields(req request_models.CreateLookupRequest) db_models.LookupFields {
	fields := db_models.LookupFields{Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		fields.IsActive = *req.IsActive
	}
	return fields
}

func provideEventTypeRepo(db *gorm.DB) *repositories.LookupRepository[db_models.EventType] {
	return repositories.NewLookupRepository[db_models.EventType](db)
}

func provideEventTypeService(repo *repositories.LookupRepository[db_models.EventType]) *services.LookupService[db_models.EventType] {
	return services.NewLookupService(repo, "event type", func(req request_models.CreateLookupRequest) *db_models.EventType {
		return &db_models.EventType{LookupFields: lookupFields(req)}
	})
}

func provideEventTypeController(service *services.LookupService[db_models.EventType]) *controllers.LookupController[db_models.EventType] {
	return controllers.NewLookupController(service)
}

func provideVendorCategoryRepo(db *gorm.DB) *repositories.LookupRepository[db_models.VendorCategory] {
	return repositories.NewLookupRepository[db_models.VendorCategory](db)
}

func provideVendorCategoryService(repo *repositories.LookupRepository[db_models.VendorCategory]) *services.LookupService[db_models.VendorCategory] {
	return services.NewLookupService(repo, "vendor category", func(req request_models.CreateLookupRequest) *db_models.VendorCategory {
		return &db_models.VendorCategory{LookupFields: lookupFields(req)}
	})
}

func provideVendorCategoryController(service *services.LookupService[db_models.VendorCategory]) *controllers.LookupController[db_models.VendorCategory] {
	return controllers.NewLookupController(service)
}

func provideDietaryPreferenceRepo(db *gorm.DB) *repositories.LookupRepository[db_models.DietaryPreference] {
	return repositories.NewLookupRepository[db_models.DietaryPreference](db)
}

func provideDietaryPreferenceService(repo *repositories.LookupRepository[db_models.DietaryPreference]) *services.LookupService[db_models.DietaryPreference] {
	return services.NewLookupService(repo, "dietary preference", func(req request_models.CreateLookupRequest) *db_models.DietaryPreference {
		return &db_models.DietaryPreference{LookupFields: lookupFields(req)}
	})
}

func provideDietaryPreferenceController(service *services.LookupService[db_models.DietaryPreference]) *controllers.LookupController[db_models.DietaryPreference] {
	return controllers.NewLookupController(service)
}

func provideGiftTypeRepo(db *gorm.DB) *repositories.LookupRepository[db_models.GiftType] {
	return repositories.NewLookupRepository[db_models.GiftType](db)
}

func provideGiftTypeService(repo *repositories.LookupRepository[db_models.GiftType]) *services.LookupService[db_models.GiftType] {
	return services.NewLookupService(repo, "gift type", func(req request_models.CreateLookupRequest) *db_models.GiftType {
		return &db_models.GiftType{LookupFields: lookupFields(req)}
	})
}

func provideGiftTypeController(service *services.LookupService[db_models.GiftType]) *controllers.LookupController[db_models.GiftType] {
	return controllers.NewLookupController(service)
}

func provideRelationTypeRepo(db *gorm.DB) *repositories.LookupRepository[db_models.RelationType] {
	return repositories.NewLookupRepository[db_models.RelationType](db)
}

func provideRelationTypeService(repo *repositories.LookupRepository[db_models.RelationType]) *services.LookupService[db_models.RelationType] {
	return services.NewLookupService(repo, "relation type", func(req request_models.CreateLookupRequest) *db_models.RelationType {
		return &db_models.RelationType{LookupFields: lookupFields(req)}
	})
}

func provideRelationTypeController(service *services.LookupService[db_models.RelationType]) *controllers.LookupController[db_models.RelationType] {
	return controllers.NewLookupController(service)
}

func provideFamilyGroupRepo(db *gorm.DB) *repositories.LookupRepository[db_models.FamilyGroup] {
	return repositories.NewLookupRepository[db_models.FamilyGroup](db)
}

func provideFamilyGroupService(repo *repositories.LookupRepository[db_models.FamilyGroup]) *services.LookupService[db_models.FamilyGroup] {
	return services.NewLookupService(repo, "family group", func(req request_models.CreateLookupRequest) *db_models.FamilyGroup {
		return &db_models.FamilyGroup{LookupFields: lookupFields(req)}
	})
}

func provideFamilyGroupController(service *services.LookupService[db_models.FamilyGroup]) *controllers.LookupController[db_models.FamilyGroup] {
	return controllers.NewLookupController(service)
}
