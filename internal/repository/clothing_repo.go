package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

// UpdateClothingParams: price is select-only and has no update path. Name is
// set-or-skip; description and image are set-or-clear.
type UpdateClothingParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type ClothingRepository interface {
	// Create verifies the referenced boss belongs to the user before
	// inserting; a foreign boss reads as NotFound.
	Create(ctx context.Context, userID uint, clothing *model.Clothing) error
	FindByID(ctx context.Context, userID, id uint) (*model.Clothing, error)
	Update(ctx context.Context, userID, id uint, params UpdateClothingParams) (*model.Clothing, error)
	Delete(ctx context.Context, userID, id uint) (*model.Clothing, error)
	ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Clothing], error)
}

type clothingRepo struct {
	db *gorm.DB
}

func NewClothingRepo(db *gorm.DB) ClothingRepository {
	return &clothingRepo{db}
}

// ownedByUser restricts a clothing query to bosses of the given user. The
// ownership chain is resolved by the store in a sub-query, not by fetching
// bosses first.
func (r *clothingRepo) ownedByUser(userID uint, bossIDs []uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := r.db.Model(&model.Boss{}).Select("id").Where("user_id = ?", userID)
		if len(bossIDs) > 0 {
			sub = sub.Where("id IN ?", bossIDs)
		}
		return db.Where("boss_id IN (?)", sub)
	}
}

func (r *clothingRepo) Create(ctx context.Context, userID uint, clothing *model.Clothing) error {
	var owned int64
	err := r.db.WithContext(ctx).
		Model(&model.Boss{}).
		Where("id = ? AND user_id = ?", clothing.BossID, userID).
		Count(&owned).Error
	if err != nil {
		return err
	}
	if owned == 0 {
		return fmt.Errorf("boss %w", apperr.ErrNotFound)
	}

	return r.db.WithContext(ctx).Create(clothing).Error
}

func (r *clothingRepo) FindByID(ctx context.Context, userID, id uint) (*model.Clothing, error) {
	var clothing model.Clothing
	err := r.db.WithContext(ctx).
		Scopes(r.ownedByUser(userID, nil)).
		Where("id = ?", id).
		First(&clothing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("clothing %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &clothing, nil
}

func (r *clothingRepo) Update(ctx context.Context, userID, id uint, params UpdateClothingParams) (*model.Clothing, error) {
	clothing, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"description": params.Description,
		"image":       params.Image,
	}
	if params.Name != nil {
		updates["name"] = *params.Name
	}

	if err := r.db.WithContext(ctx).Model(clothing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return clothing, nil
}

func (r *clothingRepo) Delete(ctx context.Context, userID, id uint) (*model.Clothing, error) {
	clothing, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Clothing{}, "id = ?", clothing.ID).Error; err != nil {
		return nil, err
	}
	return clothing, nil
}

func (r *clothingRepo) ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Clothing], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Clothing{}).
			Scopes(r.ownedByUser(userID, params.BossIDs)).
			Scopes(params.Filters("name", "description"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Clothing{}
	if err := query().Scopes(params.Paginate()).Find(&data).Error; err != nil {
		return nil, err
	}

	return &ListResult[model.Clothing]{Total: total, Data: data}, nil
}
