package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.User, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.User, error)
	Create(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.User, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	*BaseRepository[db_models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[db_models.User](db)}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	user, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}
