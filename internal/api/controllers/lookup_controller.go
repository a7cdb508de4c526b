package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/utils"
)

// LookupController serves one reference table. The six lookup routers
// are instances of this type with different services behind them.
type LookupController[T repositories.LookupEntity] struct {
	service *services.LookupService[T]
}

func NewLookupController[T repositories.LookupEntity](service *services.LookupService[T]) *LookupController[T] {
	return &LookupController[T]{service: service}
}

func (l *LookupController[T]) List(c *gin.Context) {
	if active := queryBoolPtr(c, "active_only"); active != nil && *active {
		items, err := l.service.ListActive(c.Request.Context())
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, items, "Entries fetched")
		return
	}

	page, pageSize, skip := parsePagination(c)
	items, total, err := l.service.List(c.Request.Context(), skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(items, total, page, pageSize), "Entries fetched")
}

func (l *LookupController[T]) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	item, err := l.service.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Entry fetched")
}

func (l *LookupController[T]) Create(c *gin.Context) {
	var req request_models.CreateLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := l.service.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, item, "Entry created")
}

func (l *LookupController[T]) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var req request_models.UpdateLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := l.service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Entry updated")
}

func (l *LookupController[T]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := l.service.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Entry deleted"}, "Entry deleted")
}

// RegisterRoutes mounts the standard lookup CRUD under the given group.
// Reads, creates and updates share one gate; deletes get a stricter one.
func (l *LookupController[T]) RegisterRoutes(group *gin.RouterGroup, readWrite, remove gin.HandlerFunc) {
	group.GET("", readWrite, l.List)
	group.GET("/:id", readWrite, l.Get)
	group.POST("", readWrite, l.Create)
	group.PUT("/:id", readWrite, l.Update)
	group.DELETE("/:id", remove, l.Delete)
}
