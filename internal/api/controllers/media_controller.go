package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/services"
	"wedplan/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload accepts a multipart form with one or more "files" fields and
// attaches each file to the entity named in the path. A single "file"
// field is accepted too.
func (m *MediaController) Upload(c *gin.Context) {
	entityType := c.Param("entityType")
	entityID, ok := parseIDParam(c, "entityId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entity id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Multipart form expected")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "A 'files' form field is required")
		return
	}

	attachments := make([]*db_models.MediaAttachment, 0, len(files))
	for _, file := range files {
		attachment, err := m.mediaService.Upload(c.Request.Context(), entityType, entityID, file)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		attachments = append(attachments, attachment)
	}
	utils.RespondCreated(c, attachments, "Files uploaded")
}

func (m *MediaController) ListByEntity(c *gin.Context) {
	entityType := c.Param("entityType")
	entityID, ok := parseIDParam(c, "entityId")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entity id")
		return
	}

	attachments, err := m.mediaService.ListByEntity(c.Request.Context(), entityType, entityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, attachments, "Attachments fetched")
}

// Download streams the stored file back under its original filename.
func (m *MediaController) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid attachment id")
		return
	}

	attachment, err := m.mediaService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.FileAttachment(attachment.UploadPath, attachment.OriginalFilename)
}

func (m *MediaController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid attachment id")
		return
	}

	if err := m.mediaService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Attachment deleted"}, "Attachment deleted")
}
