package invitation_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideInvitationRepo, provideInvitationService, provideInvitationController)

func provideInvitationRepo(db *gorm.DB) repositories.InvitationRepository {
	return repositories.NewInvitationRepository(db)
}

func provideInvitationService(
	invitations repositories.InvitationRepository,
	guests repositories.GuestRepository,
	events repositories.EventRepository,
	logger zerolog.Logger,
) services.InvitationServiceInterface {
	return services.NewInvitationService(invitations, guests, events, logger)
}

func provideInvitationController(invitationService services.InvitationServiceInterface) *controllers.InvitationController {
	return controllers.NewInvitationController(invitationService)
}
