package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService, provideEventController)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(
	events repositories.EventRepository,
	eventTypes *repositories.LookupRepository[db_models.EventType],
) services.EventServiceInterface {
	return services.NewEventService(events, eventTypes)
}

func provideEventController(eventService services.EventServiceInterface) *controllers.EventController {
	return controllers.NewEventController(eventService)
}
