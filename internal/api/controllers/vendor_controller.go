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

type VendorController struct {
	vendorService services.VendorServiceInterface
}

func NewVendorController(vendorService services.VendorServiceInterface) *VendorController {
	return &VendorController{vendorService: vendorService}
}

func (v *VendorController) ListVendors(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.VendorFilter{
		VendorCategoryID: queryUintPtr(c, "vendor_category_id"),
		IsBooked:         queryBoolPtr(c, "is_booked"),
	}

	vendors, total, err := v.vendorService.List(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(vendors, total, page, pageSize), "Vendors fetched")
}

func (v *VendorController) GetVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	vendor, err := v.vendorService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vendor, "Vendor fetched")
}

func (v *VendorController) CreateVendor(c *gin.Context) {
	var req request_models.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	vendor, err := v.vendorService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, vendor, "Vendor created")
}

func (v *VendorController) UpdateVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	var req request_models.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	vendor, err := v.vendorService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vendor, "Vendor updated")
}

func (v *VendorController) DeleteVendor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vendor id")
		return
	}

	if err := v.vendorService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Vendor deleted"}, "Vendor deleted")
}

func (v *VendorController) GetVendorSummary(c *gin.Context) {
	summary, err := v.vendorService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Vendor summary fetched")
}

func (v *VendorController) ExportVendors(c *gin.Context) {
	rows, err := v.vendorService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.VendorExportRow]{
		{Header: "ID", Value: func(r response_models.VendorExportRow) any { return r.ID }},
		{Header: "Name", Value: func(r response_models.VendorExportRow) any { return r.Name }},
		{Header: "Category", Value: func(r response_models.VendorExportRow) any { return r.Category }},
		{Header: "Contact Person", Value: func(r response_models.VendorExportRow) any { return r.ContactPerson }},
		{Header: "Phone", Value: func(r response_models.VendorExportRow) any { return r.Phone }},
		{Header: "Email", Value: func(r response_models.VendorExportRow) any { return r.Email }},
		{Header: "Website", Value: func(r response_models.VendorExportRow) any { return r.Website }},
		{Header: "Booked", Value: func(r response_models.VendorExportRow) any { return r.IsBooked }},
		{Header: "Notes", Value: func(r response_models.VendorExportRow) any { return r.Notes }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Vendors")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="vendors.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
