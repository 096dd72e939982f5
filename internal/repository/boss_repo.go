package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

// UpdateBossParams carries the partial-update payload. Name and phone number
// are set-or-skip; description and address are set-or-clear (a missing field
// clears the column).
type UpdateBossParams struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

type BossRepository interface {
	Create(ctx context.Context, boss *model.Boss) error
	FindByID(ctx context.Context, userID, id uint) (*model.Boss, error)
	Update(ctx context.Context, userID, id uint, params UpdateBossParams) (*model.Boss, error)
	Delete(ctx context.Context, userID, id uint) (*model.Boss, error)
	ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Boss], error)
}

type bossRepo struct {
	db *gorm.DB
}

func NewBossRepo(db *gorm.DB) BossRepository {
	return &bossRepo{db}
}

func (r *bossRepo) Create(ctx context.Context, boss *model.Boss) error {
	return r.db.WithContext(ctx).Create(boss).Error
}

// FindByID filters by owner in the query itself; a boss belonging to another
// user is indistinguishable from a missing row.
func (r *bossRepo) FindByID(ctx context.Context, userID, id uint) (*model.Boss, error) {
	var boss model.Boss
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&boss).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("boss %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &boss, nil
}

func (r *bossRepo) Update(ctx context.Context, userID, id uint, params UpdateBossParams) (*model.Boss, error) {
	boss, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"description": params.Description,
		"address":     params.Address,
	}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.PhoneNumber != nil {
		updates["phone_number"] = *params.PhoneNumber
	}

	if err := r.db.WithContext(ctx).Model(boss).Updates(updates).Error; err != nil {
		return nil, err
	}
	return boss, nil
}

func (r *bossRepo) Delete(ctx context.Context, userID, id uint) (*model.Boss, error) {
	boss, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Boss{}, "id = ?", boss.ID).Error; err != nil {
		return nil, err
	}
	return boss, nil
}

func (r *bossRepo) ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Boss], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Boss{}).
			Where("user_id = ?", userID).
			Scopes(params.Filters("name", "description"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Boss{}
	if err := query().Scopes(params.Paginate()).Find(&data).Error; err != nil {
		return nil, err
	}

	return &ListResult[model.Boss]{Total: total, Data: data}, nil
}
