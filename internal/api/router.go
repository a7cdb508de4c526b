package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"wedplan/config"
	"wedplan/internal/api/controllers"
	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/middleware"
	"wedplan/pkg/utils"
)

// Controllers collects every handler group the router mounts.
type Controllers struct {
	fx.In

	Auth          *controllers.AuthController
	User          *controllers.UserController
	Guest         *controllers.GuestController
	Event         *controllers.EventController
	Invitation    *controllers.InvitationController
	Vendor        *controllers.VendorController
	VendorService *controllers.VendorServiceController
	Budget        *controllers.BudgetController
	Task          *controllers.TaskController
	Gift          *controllers.GiftController
	Media         *controllers.MediaController

	EventTypes         *controllers.LookupController[db_models.EventType]
	VendorCategories   *controllers.LookupController[db_models.VendorCategory]
	DietaryPreferences *controllers.LookupController[db_models.DietaryPreference]
	GiftTypes          *controllers.LookupController[db_models.GiftType]
	RelationTypes      *controllers.LookupController[db_models.RelationType]
	FamilyGroups       *controllers.LookupController[db_models.FamilyGroup]
}

func ProvideRouter(
	cfg *config.Config,
	logger zerolog.Logger,
	jwtManager *utils.JWTManager,
	users repositories.UserRepository,
	ctrl Controllers,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, jwtManager, users, ctrl)
	return r
}

// RegisterRoutes mounts the full API under /api/v1. Reads are open to
// staff (admin, manager, user), writes to managers and admins, deletes
// to admins only; guest accounts only reach the self-service routes.
// Lookup tables are manager territory even for reads, with deletes
// reserved for admins.
func RegisterRoutes(r *gin.Engine, jwtManager *utils.JWTManager, users repositories.UserRepository, ctrl Controllers) {
	staffRead := middleware.RequireRoles(db_models.RoleAdmin, db_models.RoleManager, db_models.RoleUser)
	manage := middleware.RequireRoles(db_models.RoleAdmin, db_models.RoleManager)
	adminOnly := middleware.RequireRoles(db_models.RoleAdmin)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", ctrl.Auth.Register)
	auth.POST("/login", ctrl.Auth.Login)
	auth.POST("/refresh", ctrl.Auth.Refresh)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtManager, users))

	authed.GET("/auth/me", ctrl.Auth.Me)

	userGroup := authed.Group("/users")
	userGroup.PUT("/me", ctrl.User.UpdateProfile)
	userGroup.PUT("/me/password", ctrl.User.ChangePassword)
	userGroup.GET("", adminOnly, ctrl.User.ListUsers)
	userGroup.POST("", adminOnly, ctrl.User.CreateUser)
	userGroup.GET("/:id", adminOnly, ctrl.User.GetUser)
	userGroup.PUT("/:id", adminOnly, ctrl.User.UpdateUser)
	userGroup.DELETE("/:id", adminOnly, ctrl.User.DeleteUser)

	guests := authed.Group("/guests")
	guests.GET("", staffRead, ctrl.Guest.ListGuests)
	guests.GET("/summary", staffRead, ctrl.Guest.GetGuestSummary)
	guests.GET("/export", staffRead, ctrl.Guest.ExportGuests)
	guests.GET("/:id", staffRead, ctrl.Guest.GetGuest)
	guests.POST("", manage, ctrl.Guest.CreateGuest)
	guests.PUT("/:id", manage, ctrl.Guest.UpdateGuest)
	guests.DELETE("/:id", adminOnly, ctrl.Guest.DeleteGuest)

	events := authed.Group("/events")
	events.GET("", staffRead, ctrl.Event.ListEvents)
	events.GET("/upcoming", staffRead, ctrl.Event.ListUpcomingEvents)
	events.GET("/summary", staffRead, ctrl.Event.GetEventSummary)
	events.GET("/export", staffRead, ctrl.Event.ExportEvents)
	events.GET("/:id", staffRead, ctrl.Event.GetEvent)
	events.POST("", manage, ctrl.Event.CreateEvent)
	events.PUT("/:id", manage, ctrl.Event.UpdateEvent)
	events.DELETE("/:id", adminOnly, ctrl.Event.DeleteEvent)

	invitations := authed.Group("/invitations")
	invitations.GET("/my", ctrl.Invitation.MyInvitations)
	invitations.GET("", staffRead, ctrl.Invitation.ListInvitations)
	invitations.GET("/rsvp-summary/:eventId", staffRead, ctrl.Invitation.GetRSVPSummary)
	invitations.GET("/export", staffRead, ctrl.Invitation.ExportInvitations)
	invitations.GET("/:id", staffRead, ctrl.Invitation.GetInvitation)
	invitations.POST("", manage, ctrl.Invitation.CreateInvitation)
	invitations.POST("/bulk", manage, ctrl.Invitation.BulkInvite)
	invitations.POST("/bulk-rsvp", manage, ctrl.Invitation.BulkRSVP)
	invitations.PUT("/:id", manage, ctrl.Invitation.UpdateInvitation)
	invitations.DELETE("/:id", adminOnly, ctrl.Invitation.DeleteInvitation)

	vendors := authed.Group("/vendors")
	vendors.GET("", staffRead, ctrl.Vendor.ListVendors)
	vendors.GET("/summary", staffRead, ctrl.Vendor.GetVendorSummary)
	vendors.GET("/export", staffRead, ctrl.Vendor.ExportVendors)
	vendors.GET("/:id", staffRead, ctrl.Vendor.GetVendor)
	vendors.POST("", manage, ctrl.Vendor.CreateVendor)
	vendors.PUT("/:id", manage, ctrl.Vendor.UpdateVendor)
	vendors.DELETE("/:id", adminOnly, ctrl.Vendor.DeleteVendor)

	vendorServices := authed.Group("/vendor-services")
	vendorServices.GET("", staffRead, ctrl.VendorService.ListVendorServices)
	vendorServices.GET("/summary", staffRead, ctrl.VendorService.GetVendorServiceSummary)
	vendorServices.GET("/export", staffRead, ctrl.VendorService.ExportVendorServices)
	vendorServices.GET("/:id", staffRead, ctrl.VendorService.GetVendorService)
	vendorServices.POST("", manage, ctrl.VendorService.CreateVendorService)
	vendorServices.PUT("/:id", manage, ctrl.VendorService.UpdateVendorService)
	vendorServices.DELETE("/:id", adminOnly, ctrl.VendorService.DeleteVendorService)

	budget := authed.Group("/budget")
	budget.GET("/overview", staffRead, ctrl.Budget.GetOverview)
	budget.GET("/categories", staffRead, ctrl.Budget.ListCategories)
	budget.GET("/categories/:id", staffRead, ctrl.Budget.GetCategory)
	budget.POST("/categories", manage, ctrl.Budget.CreateCategory)
	budget.PUT("/categories/:id", manage, ctrl.Budget.UpdateCategory)
	budget.DELETE("/categories/:id", adminOnly, ctrl.Budget.DeleteCategory)
	budget.GET("/expenses", staffRead, ctrl.Budget.ListExpenses)
	budget.GET("/expenses/export", staffRead, ctrl.Budget.ExportExpenses)
	budget.GET("/expenses/:id", staffRead, ctrl.Budget.GetExpense)
	budget.POST("/expenses", manage, ctrl.Budget.CreateExpense)
	budget.PUT("/expenses/:id", manage, ctrl.Budget.UpdateExpense)
	budget.DELETE("/expenses/:id", adminOnly, ctrl.Budget.DeleteExpense)

	tasks := authed.Group("/tasks")
	tasks.GET("/my", ctrl.Task.MyTasks)
	tasks.PATCH("/:id/my", ctrl.Task.UpdateMyTask)
	tasks.GET("/overdue", ctrl.Task.ListOverdueTasks)
	tasks.GET("", manage, ctrl.Task.ListTasks)
	tasks.GET("/summary", manage, ctrl.Task.GetTaskSummary)
	tasks.GET("/export", manage, ctrl.Task.ExportTasks)
	tasks.GET("/:id", staffRead, ctrl.Task.GetTask)
	tasks.POST("", staffRead, ctrl.Task.CreateTask)
	tasks.PUT("/:id", manage, ctrl.Task.UpdateTask)
	tasks.DELETE("/:id", adminOnly, ctrl.Task.DeleteTask)

	gifts := authed.Group("/gifts")
	gifts.GET("", staffRead, ctrl.Gift.ListGifts)
	gifts.GET("/thank-you-pending", staffRead, ctrl.Gift.ListThankYouPending)
	gifts.GET("/summary", staffRead, ctrl.Gift.GetGiftSummary)
	gifts.GET("/export", staffRead, ctrl.Gift.ExportGifts)
	gifts.GET("/:id", staffRead, ctrl.Gift.GetGift)
	gifts.POST("", manage, ctrl.Gift.CreateGift)
	gifts.PUT("/:id", manage, ctrl.Gift.UpdateGift)
	gifts.DELETE("/:id", adminOnly, ctrl.Gift.DeleteGift)

	lookups := authed.Group("/lookups")
	ctrl.EventTypes.RegisterRoutes(lookups.Group("/event-types"), manage, adminOnly)
	ctrl.VendorCategories.RegisterRoutes(lookups.Group("/vendor-categories"), manage, adminOnly)
	ctrl.DietaryPreferences.RegisterRoutes(lookups.Group("/dietary-preferences"), manage, adminOnly)
	ctrl.GiftTypes.RegisterRoutes(lookups.Group("/gift-types"), manage, adminOnly)
	ctrl.RelationTypes.RegisterRoutes(lookups.Group("/relation-types"), manage, adminOnly)
	ctrl.FamilyGroups.RegisterRoutes(lookups.Group("/family-groups"), manage, adminOnly)

	media := authed.Group("/media")
	media.POST("/:entityType/:entityId", staffRead, ctrl.Media.Upload)
	media.GET("/:entityType/:entityId", staffRead, ctrl.Media.ListByEntity)
	media.GET("/files/:id", staffRead, ctrl.Media.Download)
	media.DELETE("/files/:id", manage, ctrl.Media.Delete)
}
