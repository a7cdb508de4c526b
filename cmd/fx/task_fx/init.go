package task_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideTaskRepo, provideTaskService, provideTaskController)

func provideTaskRepo(db *gorm.DB) repositories.TaskRepository {
	return repositories.NewTaskRepository(db)
}

func provideTaskService(
	tasks repositories.TaskRepository,
	events repositories.EventRepository,
	users repositories.UserRepository,
) services.TaskServiceInterface {
	return services.NewTaskService(tasks, events, users)
}

func provideTaskController(taskService services.TaskServiceInterface) *controllers.TaskController {
	return controllers.NewTaskController(taskService)
}
