package services

import (
	"context"
	"fmt"

	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

// LookupService covers the small reference tables (event types, vendor
// categories, and so on) with one generic implementation. Construction
// of the concrete row type cannot be expressed generically, so each
// instantiation supplies a build function.
type LookupService[T repositories.LookupEntity] struct {
	repo  *repositories.LookupRepository[T]
	build func(req request_models.CreateLookupRequest) *T
	label string
}

func NewLookupService[T repositories.LookupEntity](
	repo *repositories.LookupRepository[T],
	label string,
	build func(req request_models.CreateLookupRequest) *T,
) *LookupService[T] {
	return &LookupService[T]{repo: repo, build: build, label: label}
}

func (s *LookupService[T]) List(ctx context.Context, skip, limit int) ([]T, int64, error) {
	items, err := s.repo.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *LookupService[T]) ListActive(ctx context.Context) ([]T, error) {
	items, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *LookupService[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s not found", utils.ErrNotFound, s.label)
	}
	return item, nil
}

func (s *LookupService[T]) Create(ctx context.Context, req request_models.CreateLookupRequest) (*T, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s '%s' already exists", utils.ErrConflict, s.label, req.Name)
	}

	item := s.build(req)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *LookupService[T]) Update(ctx context.Context, id uint, req request_models.UpdateLookupRequest) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s not found", utils.ErrNotFound, s.label)
	}

	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != (*existing).GetName() {
		byName, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if byName != nil {
			return nil, fmt.Errorf("%w: %s '%s' already exists", utils.ErrConflict, s.label, *req.Name)
		}
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *LookupService[T]) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: %s not found", utils.ErrNotFound, s.label)
	}
	return nil
}
