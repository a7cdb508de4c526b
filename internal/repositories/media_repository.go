package repositories

import (
	"context"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
)

type MediaAttachmentRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.MediaAttachment, error)
	GetByEntity(ctx context.Context, entityType string, entityID uint) ([]db_models.MediaAttachment, error)
	Create(ctx context.Context, attachment *db_models.MediaAttachment) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type mediaAttachmentRepository struct {
	*BaseRepository[db_models.MediaAttachment]
}

func NewMediaAttachmentRepository(db *gorm.DB) MediaAttachmentRepository {
	return &mediaAttachmentRepository{BaseRepository: NewBaseRepository[db_models.MediaAttachment](db)}
}

func (r *mediaAttachmentRepository) GetByEntity(ctx context.Context, entityType string, entityID uint) ([]db_models.MediaAttachment, error) {
	var attachments []db_models.MediaAttachment
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND is_deleted = ?", entityType, entityID, false).
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}
