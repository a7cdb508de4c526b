package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/services"
	"wedplan/pkg/middleware"
	"wedplan/pkg/utils"
)

type InvitationController struct {
	invitationService services.InvitationServiceInterface
}

func NewInvitationController(invitationService services.InvitationServiceInterface) *InvitationController {
	return &InvitationController{invitationService: invitationService}
}

// ListInvitations returns invitations, optionally scoped to one event
// or one guest via query params.
func (i *InvitationController) ListInvitations(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	if eventID := queryUintPtr(c, "event_id"); eventID != nil {
		items, total, err := i.invitationService.ListByEvent(c.Request.Context(), *eventID, skip, pageSize)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, response_models.NewPaginatedResponse(items, total, page, pageSize), "Invitations fetched")
		return
	}
	if guestID := queryUintPtr(c, "guest_id"); guestID != nil {
		items, err := i.invitationService.ListByGuest(c.Request.Context(), *guestID, skip, pageSize)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, items, "Invitations fetched")
		return
	}

	items, err := i.invitationService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Invitations fetched")
}

func (i *InvitationController) GetInvitation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invitation id")
		return
	}

	inv, err := i.invitationService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, inv, "Invitation fetched")
}

func (i *InvitationController) CreateInvitation(c *gin.Context) {
	var req request_models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := i.invitationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, inv, "Invitation created")
}

// BulkInvite godoc
// @Summary Invite many guests to one event in a single request
// @Tags Invitations
// @Router /invitations/bulk [post]
func (i *InvitationController) BulkInvite(c *gin.Context) {
	var req request_models.BulkInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := i.invitationService.BulkInvite(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, result, result.Message)
}

func (i *InvitationController) UpdateInvitation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invitation id")
		return
	}

	var req request_models.UpdateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := i.invitationService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, inv, "Invitation updated")
}

// BulkRSVP applies RSVP answers to many invitations at once.
func (i *InvitationController) BulkRSVP(c *gin.Context) {
	var req request_models.BulkRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := i.invitationService.BulkRSVP(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c,
		response_models.MessageResponse{Message: fmt.Sprintf("%d invitations updated", updated)},
		"RSVP updates applied")
}

func (i *InvitationController) DeleteInvitation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid invitation id")
		return
	}

	if err := i.invitationService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Invitation deleted"}, "Invitation deleted")
}

func (i *InvitationController) GetRSVPSummary(c *gin.Context) {
	eventID, ok := parseIDParam(c, "eventId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	summary, err := i.invitationService.GetRSVPSummary(c.Request.Context(), eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "RSVP summary fetched")
}

// MyInvitations lists the invitations of the guest record matching the
// caller's email.
func (i *InvitationController) MyInvitations(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	items, err := i.invitationService.MyInvitations(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Invitations fetched")
}

// ExportInvitations downloads the full invitation list as a workbook.
func (i *InvitationController) ExportInvitations(c *gin.Context) {
	rows, err := i.invitationService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.InvitationExportRow]{
		{Header: "ID", Value: func(r response_models.InvitationExportRow) any { return r.ID }},
		{Header: "Guest", Value: func(r response_models.InvitationExportRow) any { return r.Guest }},
		{Header: "Event", Value: func(r response_models.InvitationExportRow) any { return r.Event }},
		{Header: "Status", Value: func(r response_models.InvitationExportRow) any { return r.Status }},
		{Header: "Plus Ones", Value: func(r response_models.InvitationExportRow) any { return r.PlusOnes }},
		{Header: "Notes", Value: func(r response_models.InvitationExportRow) any { return r.Notes }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Invitations")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invitations.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
