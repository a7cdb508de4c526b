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

type GiftController struct {
	giftService services.GiftServiceInterface
}

func NewGiftController(giftService services.GiftServiceInterface) *GiftController {
	return &GiftController{giftService: giftService}
}

func (g *GiftController) ListGifts(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.GiftFilter{
		GuestID:    queryUintPtr(c, "guest_id"),
		GiftTypeID: queryUintPtr(c, "gift_type_id"),
	}

	gifts, total, err := g.giftService.List(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(gifts, total, page, pageSize), "Gifts fetched")
}

// ListThankYouPending lists gifts still waiting for a thank-you note.
func (g *GiftController) ListThankYouPending(c *gin.Context) {
	gifts, err := g.giftService.ListThankYouPending(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gifts, "Pending thank-you gifts fetched")
}

func (g *GiftController) GetGift(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid gift id")
		return
	}

	gift, err := g.giftService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gift, "Gift fetched")
}

func (g *GiftController) CreateGift(c *gin.Context) {
	var req request_models.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	gift, err := g.giftService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, gift, "Gift recorded")
}

func (g *GiftController) UpdateGift(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid gift id")
		return
	}

	var req request_models.UpdateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	gift, err := g.giftService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gift, "Gift updated")
}

func (g *GiftController) DeleteGift(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid gift id")
		return
	}

	if err := g.giftService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Gift deleted"}, "Gift deleted")
}

func (g *GiftController) GetGiftSummary(c *gin.Context) {
	summary, err := g.giftService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Gift summary fetched")
}

func (g *GiftController) ExportGifts(c *gin.Context) {
	rows, err := g.giftService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.GiftExportRow]{
		{Header: "ID", Value: func(r response_models.GiftExportRow) any { return r.ID }},
		{Header: "Guest", Value: func(r response_models.GiftExportRow) any { return r.Guest }},
		{Header: "Type", Value: func(r response_models.GiftExportRow) any { return r.GiftType }},
		{Header: "Description", Value: func(r response_models.GiftExportRow) any { return r.Description }},
		{Header: "Estimated Value", Value: func(r response_models.GiftExportRow) any { return r.EstimatedValue }},
		{Header: "Received", Value: func(r response_models.GiftExportRow) any { return r.ReceivedAt }},
		{Header: "Thank You Sent", Value: func(r response_models.GiftExportRow) any { return r.ThankYouSent }},
		{Header: "Notes", Value: func(r response_models.GiftExportRow) any { return r.Notes }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Gifts")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="gifts.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
