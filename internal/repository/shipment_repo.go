package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/internal/model"
)

type UpdateShipmentParams struct {
	Description *string `json:"description"`
}

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *model.Shipment) error
	FindByID(ctx context.Context, userID, id uint) (*model.Shipment, error)
	Update(ctx context.Context, userID, id uint, params UpdateShipmentParams) (*model.Shipment, error)
	Delete(ctx context.Context, userID, id uint) (*model.Shipment, error)
	ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Shipment], error)
}

type shipmentRepo struct {
	db *gorm.DB
}

func NewShipmentRepo(db *gorm.DB) ShipmentRepository {
	return &shipmentRepo{db}
}

func (r *shipmentRepo) Create(ctx context.Context, shipment *model.Shipment) error {
	return r.db.WithContext(ctx).Create(shipment).Error
}

func (r *shipmentRepo) FindByID(ctx context.Context, userID, id uint) (*model.Shipment, error) {
	var shipment model.Shipment
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&shipment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shipment %w", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &shipment, nil
}

func (r *shipmentRepo) Update(ctx context.Context, userID, id uint, params UpdateShipmentParams) (*model.Shipment, error) {
	shipment, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(shipment).
		Update("description", params.Description).Error
	if err != nil {
		return nil, err
	}
	return shipment, nil
}

func (r *shipmentRepo) Delete(ctx context.Context, userID, id uint) (*model.Shipment, error) {
	shipment, err := r.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&model.Shipment{}, "id = ?", shipment.ID).Error; err != nil {
		return nil, err
	}
	return shipment, nil
}

func (r *shipmentRepo) ListByUser(ctx context.Context, userID uint, params ListParams) (*ListResult[model.Shipment], error) {
	query := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&model.Shipment{}).
			Where("user_id = ?", userID).
			Scopes(params.Filters("description"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, err
	}

	data := []model.Shipment{}
	if err := query().Preload("Items").Scopes(params.Paginate()).Find(&data).Error; err != nil {
		return nil, err
	}

	return &ListResult[model.Shipment]{Total: total, Data: data}, nil
}
