package media_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/config"
	"wedplan/internal/api/controllers"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideMediaRepo, provideMediaService, provideMediaController)

func provideMediaRepo(db *gorm.DB) repositories.MediaAttachmentRepository {
	return repositories.NewMediaAttachmentRepository(db)
}

func provideMediaService(
	media repositories.MediaAttachmentRepository,
	vendorServices repositories.VendorServiceRepository,
	tasks repositories.TaskRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) services.MediaServiceInterface {
	return services.NewMediaService(media, vendorServices, tasks, cfg, logger)
}

func provideMediaController(mediaService services.MediaServiceInterface) *controllers.MediaController {
	return controllers.NewMediaController(mediaService)
}
