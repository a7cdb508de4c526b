package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/utils"
)

type GuestController struct {
	guestService services.GuestServiceInterface
}

func NewGuestController(guestService services.GuestServiceInterface) *GuestController {
	return &GuestController{guestService: guestService}
}

// ListGuests godoc
// @Summary List guests with optional side/family/VIP/dietary filters
// @Tags Guests
// @Router /guests [get]
func (g *GuestController) ListGuests(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.GuestFilter{
		FamilyGroupID:       queryUintPtr(c, "family_group_id"),
		IsVIP:               queryBoolPtr(c, "is_vip"),
		DietaryPreferenceID: queryUintPtr(c, "dietary_preference_id"),
	}
	if raw := c.Query("side"); raw != "" {
		side := db_models.GuestSide(raw)
		filter.Side = &side
	}

	guests, total, err := g.guestService.List(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(guests, total, page, pageSize), "Guests fetched")
}

func (g *GuestController) GetGuest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	guest, err := g.guestService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, guest, "Guest fetched")
}

func (g *GuestController) CreateGuest(c *gin.Context) {
	var req request_models.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	guest, err := g.guestService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, guest, "Guest created")
}

func (g *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	var req request_models.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	guest, err := g.guestService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, guest, "Guest updated")
}

func (g *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid guest id")
		return
	}

	if err := g.guestService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Guest deleted"}, "Guest deleted")
}

func (g *GuestController) GetGuestSummary(c *gin.Context) {
	summary, err := g.guestService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Guest summary fetched")
}

// ExportGuests streams the full guest list as an xlsx workbook.
func (g *GuestController) ExportGuests(c *gin.Context) {
	rows, err := g.guestService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.GuestExportRow]{
		{Header: "ID", Value: func(r response_models.GuestExportRow) any { return r.ID }},
		{Header: "First Name", Value: func(r response_models.GuestExportRow) any { return r.FirstName }},
		{Header: "Last Name", Value: func(r response_models.GuestExportRow) any { return r.LastName }},
		{Header: "Email", Value: func(r response_models.GuestExportRow) any { return r.Email }},
		{Header: "Phone", Value: func(r response_models.GuestExportRow) any { return r.Phone }},
		{Header: "Side", Value: func(r response_models.GuestExportRow) any { return r.Side }},
		{Header: "Relation", Value: func(r response_models.GuestExportRow) any { return r.RelationType }},
		{Header: "Family Group", Value: func(r response_models.GuestExportRow) any { return r.FamilyGroup }},
		{Header: "Dietary Preference", Value: func(r response_models.GuestExportRow) any { return r.DietaryPreference }},
		{Header: "Age Group", Value: func(r response_models.GuestExportRow) any { return r.AgeGroup }},
		{Header: "Persons", Value: func(r response_models.GuestExportRow) any { return r.NumberOfPersons }},
		{Header: "Room", Value: func(r response_models.GuestExportRow) any { return r.RoomNumber }},
		{Header: "Floor", Value: func(r response_models.GuestExportRow) any { return r.Floor }},
		{Header: "Arrival", Value: func(r response_models.GuestExportRow) any { return r.ArrivalAt }},
		{Header: "Departure", Value: func(r response_models.GuestExportRow) any { return r.DepartureAt }},
		{Header: "VIP", Value: func(r response_models.GuestExportRow) any { return r.IsVIP }},
		{Header: "Notes", Value: func(r response_models.GuestExportRow) any { return r.Notes }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Guests")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="guests.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
