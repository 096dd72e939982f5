package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

// UpdateStaffParams: name and phone number are set-or-skip, description is
// set-or-clear.
type UpdateStaffParams struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Description *string `json:"description"`
}

type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindByID(ctx context.Context, userID, id uint) (*model.Staff, error)
	Update(ctx context.Context, userID, id uint, params UpdateStaffParams) (*model.Staff, error)
	Delete(ctx context.Context, userID, id uint) (*model.Staff, error)
	ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Staff], error)
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) FindByID(ctx context.Context, userID, id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) Update(ctx context.Context, userID, id uint, params UpdateStaffParams) (*model.Staff, error) {
	staff, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"description": params.Description,
	}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.PhoneNumber != nil {
		updates["phone_number"] = *params.PhoneNumber
	}

	if err := r.db.WithContext(ctx).Model(staff).Updates(updates).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepo) Delete(ctx context.Context, userID, id uint) (*model.Staff, error) {
	staff, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Staff{}, "id = ?", staff.ID).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepo) ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Staff], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Staff{}).
			Where("user_id = ?", userID).
			Scopes(params.Filters("name", "description"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Staff{}
	if err := query().Scopes(params.Paginate()).Find(&data).Error; err != nil {
		return nil, err
	}

	return &ListResult[model.Staff]{Total: total, Data: data}, nil
}
