package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

type UpdateProcurementParams struct {
	Description *string `json:"description"`
}

type ProcurementRepository interface {
	// Create inserts the parent row and its items in one transaction; an
	// item failure rolls the parent back.
	Create(ctx context.Context, procurement *model.Procurement) error
	FindByID(ctx context.Context, userID, id uint) (*model.Procurement, error)
	Update(ctx context.Context, userID, id uint, params UpdateProcurementParams) (*model.Procurement, error)
	Delete(ctx context.Context, userID, id uint) (*model.Procurement, error)
	ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Procurement], error)
}

type procurementRepo struct {
	db *gorm.DB
}

func NewProcurementRepo(db *gorm.DB) ProcurementRepository {
	return &procurementRepo{db}
}

func (r *procurementRepo) Create(ctx context.Context, procurement *model.Procurement) error {
	// Create with associations runs parent and item inserts in a single
	// transaction.
	return r.db.WithContext(ctx).Create(procurement).Error
}

// FindByID returns the parent with its full item collection.
func (r *procurementRepo) FindByID(ctx context.Context, userID, id uint) (*model.Procurement, error) {
	var procurement model.Procurement
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&procurement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("procurement %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &procurement, nil
}

func (r *procurementRepo) Update(ctx context.Context, userID, id uint, params UpdateProcurementParams) (*model.Procurement, error) {
	procurement, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Description is the only mutable field and follows set-or-clear.
	err = r.db.WithContext(ctx).
		Model(procurement).
		Update("description", params.Description).Error
	if err != nil {
		return nil, err
	}
	return procurement, nil
}

func (r *procurementRepo) Delete(ctx context.Context, userID, id uint) (*model.Procurement, error) {
	procurement, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Procurement{}, "id = ?", procurement.ID).Error; err != nil {
		return nil, err
	}
	return procurement, nil
}

func (r *procurementRepo) ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Procurement], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Procurement{}).
			Where("user_id = ?", userID).
			Scopes(params.Filters("description"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Procurement{}
	if err := query().Preload("Items").Scopes(params.Paginate()).Find(&data).Error; err != nil {
		return nil, err
	}

	return &ListResult[model.Procurement]{Total: total, Data: data}, nil
}
