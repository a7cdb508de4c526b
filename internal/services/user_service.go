package services

import (
	"context"
	"fmt"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

type UserServiceInterface interface {
	List(ctx context.Context, skip, limit int) ([]db_models.User, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.User, error)
	Create(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error)
	UpdateByAdmin(ctx context.Context, id uint, req request_models.UpdateUserAdminRequest) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID uint, req request_models.UpdateProfileRequest) (*db_models.User, error)
	ChangePassword(ctx context.Context, userID uint, req request_models.UpdatePasswordRequest) error
	Delete(ctx context.Context, id uint) error
}

type UserService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserServiceInterface {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]db_models.User, int64, error) {
	items, err := s.users.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*db_models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", utils.ErrNotFound)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error) {
	role := db_models.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", utils.ErrBadRequest, req.Role)
	}

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, fmt.Errorf("%w: email already registered", utils.ErrConflict)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:          req.Email,
		HashedPassword: hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Role:           role,
		IsActive:       true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *UserService) UpdateByAdmin(ctx context.Context, id uint, req request_models.UpdateUserAdminRequest) (*db_models.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: user not found", utils.ErrNotFound)
	}

	fields := map[string]interface{}{}
	if req.Email != nil && *req.Email != existing.Email {
		taken, err := s.users.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if taken {
			return nil, fmt.Errorf("%w: email already registered", utils.ErrConflict)
		}
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Role != nil {
		role := db_models.UserRole(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", utils.ErrBadRequest, *req.Role)
		}
		fields["role"] = role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	updated, err := s.users.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, req request_models.UpdateProfileRequest) (*db_models.User, error) {
	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}

	updated, err := s.users.Update(ctx, userID, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: user not found", utils.ErrNotFound)
	}
	return updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, req request_models.UpdatePasswordRequest) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", utils.ErrNotFound)
	}

	if err := utils.ComparePasswords(user.HashedPassword, req.CurrentPassword); err != nil {
		return fmt.Errorf("%w: current password is incorrect", utils.ErrBadRequest)
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if _, err := s.users.Update(ctx, userID, map[string]interface{}{"hashed_password": hashed}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: user not found", utils.ErrNotFound)
	}
	return nil
}
