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

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

func (e *EventController) ListEvents(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.EventFilter{
		EventTypeID: queryUintPtr(c, "event_type_id"),
	}
	if raw := c.Query("status"); raw != "" {
		status := db_models.EventStatus(raw)
		filter.Status = &status
	}

	events, total, err := e.eventService.List(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(events, total, page, pageSize), "Events fetched")
}

func (e *EventController) ListUpcomingEvents(c *gin.Context) {
	_, pageSize, skip := parsePagination(c)

	events, err := e.eventService.ListUpcoming(c.Request.Context(), skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, events, "Upcoming events fetched")
}

func (e *EventController) GetEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	event, err := e.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, event, "Event fetched")
}

func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := e.eventService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, event, "Event created")
}

func (e *EventController) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := e.eventService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, event, "Event updated")
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := e.eventService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Event deleted"}, "Event deleted")
}

func (e *EventController) GetEventSummary(c *gin.Context) {
	summary, err := e.eventService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Event summary fetched")
}

func (e *EventController) ExportEvents(c *gin.Context) {
	rows, err := e.eventService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.EventExportRow]{
		{Header: "ID", Value: func(r response_models.EventExportRow) any { return r.ID }},
		{Header: "Name", Value: func(r response_models.EventExportRow) any { return r.Name }},
		{Header: "Type", Value: func(r response_models.EventExportRow) any { return r.EventType }},
		{Header: "Date", Value: func(r response_models.EventExportRow) any { return r.EventDate }},
		{Header: "Start", Value: func(r response_models.EventExportRow) any { return r.StartTime }},
		{Header: "End", Value: func(r response_models.EventExportRow) any { return r.EndTime }},
		{Header: "Venue", Value: func(r response_models.EventExportRow) any { return r.VenueName }},
		{Header: "Address", Value: func(r response_models.EventExportRow) any { return r.VenueAddress }},
		{Header: "Status", Value: func(r response_models.EventExportRow) any { return r.Status }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Events")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="events.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
