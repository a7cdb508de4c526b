package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// LookupEntity is satisfied by the lookup tables through their embedded
// BaseModel and LookupFields.
type LookupEntity interface {
	GetID() uint
	GetName() string
}

// LookupRepository serves the six small reference tables through one
// generic implementation.
type LookupRepository[T LookupEntity] struct {
	*BaseRepository[T]
}

func NewLookupRepository[T LookupEntity](db *gorm.DB) *LookupRepository[T] {
	return &LookupRepository[T]{BaseRepository: NewBaseRepository[T](db)}
}

func (r *LookupRepository[T]) GetActive(ctx context.Context) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND is_active = ?", false, true).
		Order("name").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *LookupRepository[T]) FindByName(ctx context.Context, name string) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).
		Where("name = ? AND is_deleted = ?", name, false).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
