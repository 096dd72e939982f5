package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

type UpdateProductionParams struct {
	Description *string `json:"description"`
}

type ProductionRepository interface {
	Create(ctx context.Context, production *model.Production) error
	FindByID(ctx context.Context, userID, id uint) (*model.Production, error)
	Update(ctx context.Context, userID, id uint, params UpdateProductionParams) (*model.Production, error)
	Delete(ctx context.Context, userID, id uint) (*model.Production, error)
	// Settle flips the settled flag to true. Settling an already settled
	// batch is a valid no-op, not an error.
	Settle(ctx context.Context, userID, id uint) (*model.Production, error)
	ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Production], error)
}

type productionRepo struct {
	db *gorm.DB
}

func NewProductionRepo(db *gorm.DB) ProductionRepository {
	return &productionRepo{db}
}

// ownedByUser restricts a production query to staff of the given user, as a
// sub-query evaluated by the store.
func (r *productionRepo) ownedByUser(userID uint, staffIDs []uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := r.db.Model(&model.Staff{}).Select("id").Where("user_id = ?", userID)
		if len(staffIDs) > 0 {
			sub = sub.Where("id IN ?", staffIDs)
		}
		return db.Where("staff_id IN (?)", sub)
	}
}

func (r *productionRepo) Create(ctx context.Context, production *model.Production) error {
	return r.db.WithContext(ctx).Create(production).Error
}

func (r *productionRepo) FindByID(ctx context.Context, userID, id uint) (*model.Production, error) {
	var production model.Production
	err := r.db.WithContext(ctx).
		Preload("Items").
		Scopes(r.ownedByUser(userID, nil)).
		Where("id = ?", id).
		First(&production).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("production %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &production, nil
}

func (r *productionRepo) Update(ctx context.Context, userID, id uint, params UpdateProductionParams) (*model.Production, error) {
	production, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(production).
		Update("description", params.Description).Error
	if err != nil {
		return nil, err
	}
	return production, nil
}

func (r *productionRepo) Delete(ctx context.Context, userID, id uint) (*model.Production, error) {
	production, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Production{}, "id = ?", production.ID).Error; err != nil {
		return nil, err
	}
	return production, nil
}

func (r *productionRepo) Settle(ctx context.Context, userID, id uint) (*model.Production, error) {
	production, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Model(production).
		Update("settled", true).Error
	if err != nil {
		return nil, err
	}
	return production, nil
}

func (r *productionRepo) ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Production], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Production{}).
			Scopes(r.ownedByUser(userID, params.StaffIDs)).
			Scopes(params.Filters("description"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Production{}
	if err := query().Preload("Items").Scopes(params.Paginate()).Find(&data).Error; err != nil {
		return nil, err
	}

	return &ListResult[model.Production]{Total: total, Data: data}, nil
}
