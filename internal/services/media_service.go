package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wedplan/config"
	"wedplan/internal/models/db_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

const (
	EntityVendorService = "vendor_service"
	EntityTask          = "task"
)

var allowedMimeTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type MediaServiceInterface interface {
	Upload(ctx context.Context, entityType string, entityID uint, file *multipart.FileHeader) (*db_models.MediaAttachment, error)
	ListByEntity(ctx context.Context, entityType string, entityID uint) ([]db_models.MediaAttachment, error)
	GetByID(ctx context.Context, id uint) (*db_models.MediaAttachment, error)
	Delete(ctx context.Context, id uint) error
}

type MediaService struct {
	media          repositories.MediaAttachmentRepository
	vendorServices repositories.VendorServiceRepository
	tasks          repositories.TaskRepository
	uploadDir      string
	maxFileSize    int64
	logger         zerolog.Logger
}

func NewMediaService(
	media repositories.MediaAttachmentRepository,
	vendorServices repositories.VendorServiceRepository,
	tasks repositories.TaskRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) MediaServiceInterface {
	return &MediaService{
		media:          media,
		vendorServices: vendorServices,
		tasks:          tasks,
		uploadDir:      cfg.UploadDir,
		maxFileSize:    int64(cfg.MaxFileSizeMB) << 20,
		logger:         logger,
	}
}

func (s *MediaService) Upload(ctx context.Context, entityType string, entityID uint, file *multipart.FileHeader) (*db_models.MediaAttachment, error) {
	if err := s.checkEntity(ctx, entityType, entityID); err != nil {
		return nil, err
	}
	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: file exceeds the maximum size of %d bytes", utils.ErrBadRequest, s.maxFileSize)
	}

	mimeType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[mimeType] {
		return nil, fmt.Errorf("%w: file type %q is not allowed", utils.ErrBadRequest, mimeType)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	storedName := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	dir := filepath.Join(s.uploadDir, entityType, fmt.Sprint(entityID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: could not prepare upload directory", utils.ErrDatabaseError)
	}
	dest := filepath.Join(dir, storedName)

	if err := saveUploadedFile(file, dest); err != nil {
		return nil, fmt.Errorf("%w: could not store file", utils.ErrDatabaseError)
	}

	attachment := &db_models.MediaAttachment{
		EntityType:       entityType,
		EntityID:         entityID,
		OriginalFilename: file.Filename,
		StoredFilename:   storedName,
		FileSize:         file.Size,
		MimeType:         mimeType,
		UploadPath:       dest,
	}
	if err := s.media.Create(ctx, attachment); err != nil {
		// Keep the filesystem and the table in step.
		_ = os.Remove(dest)
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info().
		Str("entity_type", entityType).
		Uint("entity_id", entityID).
		Str("stored_filename", storedName).
		Int64("size", file.Size).
		Msg("attachment uploaded")

	return attachment, nil
}

func (s *MediaService) ListByEntity(ctx context.Context, entityType string, entityID uint) ([]db_models.MediaAttachment, error) {
	if err := s.checkEntity(ctx, entityType, entityID); err != nil {
		return nil, err
	}
	items, err := s.media.GetByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *MediaService) GetByID(ctx context.Context, id uint) (*db_models.MediaAttachment, error) {
	attachment, err := s.media.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if attachment == nil {
		return nil, fmt.Errorf("%w: attachment not found", utils.ErrNotFound)
	}
	return attachment, nil
}

func (s *MediaService) Delete(ctx context.Context, id uint) error {
	attachment, err := s.media.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if attachment == nil {
		return fmt.Errorf("%w: attachment not found", utils.ErrNotFound)
	}

	if _, err := s.media.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	if err := os.Remove(attachment.UploadPath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Err(err).Str("path", attachment.UploadPath).Msg("could not remove stored file")
	}
	return nil
}

func (s *MediaService) checkEntity(ctx context.Context, entityType string, entityID uint) error {
	switch entityType {
	case EntityVendorService:
		item, err := s.vendorServices.GetByID(ctx, entityID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if item == nil {
			return fmt.Errorf("%w: vendor service not found", utils.ErrNotFound)
		}
	case EntityTask:
		task, err := s.tasks.GetByID(ctx, entityID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if task == nil {
			return fmt.Errorf("%w: task not found", utils.ErrNotFound)
		}
	default:
		return fmt.Errorf("%w: attachments are not supported for entity type %q", utils.ErrBadRequest, entityType)
	}
	return nil
}

func saveUploadedFile(file *multipart.FileHeader, dest string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
