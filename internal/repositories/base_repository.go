package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// BaseRepository implements the generic CRUD contract shared by every
// entity. All reads, updates and deletes filter out soft-deleted rows;
// GetByIDAny and HardDelete are the escape hatches that do not.
type BaseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// GetByID returns (nil, nil) when the row is missing or soft-deleted.
func (r *BaseRepository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDAny bypasses the soft-delete filter.
func (r *BaseRepository[T]) GetByIDAny(ctx context.Context, id uint) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *BaseRepository[T]) GetAll(ctx context.Context, skip, limit int) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update applies a partial field set. An empty set is a no-op that
// returns the current record.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, fields map[string]interface{}) (*T, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete flips the soft-delete flag. Returns false when the row is
// already deleted or missing.
func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HardDelete physically removes the row regardless of the flag.
func (r *BaseRepository[T]) HardDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BaseRepository[T]) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}
