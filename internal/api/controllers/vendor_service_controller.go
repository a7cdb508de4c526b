package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/utils"
)

type VendorServiceController struct {
	itemService services.VendorServiceItemServiceInterface
}

func NewVendorServiceController(itemService services.VendorServiceItemServiceInterface) *VendorServiceController {
	return &VendorServiceController{itemService: itemService}
}

func (v *VendorServiceController) ListVendorServices(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.VendorServiceFilter{
		VendorID: queryUintPtr(c, "vendor_id"),
		EventID:  queryUintPtr(c, "event_id"),
	}
	if raw := c.Query("status"); raw != "" {
		status := db_models.VendorServiceStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("unassigned"); raw != "" {
		if unassigned, err := strconv.ParseBool(raw); err == nil {
			filter.Unassigned = unassigned
		}
	}

	items, total, err := v.itemService.List(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(items, total, page, pageSize), "Vendor services fetched")
}

func (v *VendorServiceController) GetVendorService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor service id")
		return
	}

	item, err := v.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Vendor service fetched")
}

func (v *VendorServiceController) CreateVendorService(c *gin.Context) {
	var req request_models.CreateVendorServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := v.itemService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, item, "Vendor service created")
}

func (v *VendorServiceController) UpdateVendorService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor service id")
		return
	}

	var req request_models.UpdateVendorServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := v.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, item, "Vendor service updated")
}

func (v *VendorServiceController) DeleteVendorService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor service id")
		return
	}

	if err := v.itemService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Vendor service deleted"}, "Vendor service deleted")
}

func (v *VendorServiceController) GetVendorServiceSummary(c *gin.Context) {
	summary, err := v.itemService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Vendor service summary fetched")
}

func (v *VendorServiceController) ExportVendorServices(c *gin.Context) {
	rows, err := v.itemService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.VendorServiceExportRow]{
		{Header: "ID", Value: func(r response_models.VendorServiceExportRow) any { return r.ID }},
		{Header: "Title", Value: func(r response_models.VendorServiceExportRow) any { return r.Title }},
		{Header: "Vendor", Value: func(r response_models.VendorServiceExportRow) any { return r.Vendor }},
		{Header: "Event", Value: func(r response_models.VendorServiceExportRow) any { return r.Event }},
		{Header: "Service Date", Value: func(r response_models.VendorServiceExportRow) any { return r.ServiceDate }},
		{Header: "Start Time", Value: func(r response_models.VendorServiceExportRow) any { return r.StartTime }},
		{Header: "End Time", Value: func(r response_models.VendorServiceExportRow) any { return r.EndTime }},
		{Header: "Amount", Value: func(r response_models.VendorServiceExportRow) any { return r.Amount }},
		{Header: "Status", Value: func(r response_models.VendorServiceExportRow) any { return r.Status }},
		{Header: "Notes", Value: func(r response_models.VendorServiceExportRow) any { return r.Notes }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Vendor Services")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vendor_services.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
