package service

import (
	"context"
	"fmt"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/ws"
	"go-garment-supply/pkg/validator"
)

type CreateShipmentParams struct {
	Description *string                 `json:"description"`
	Items       []CreateStockItemParams `json:"items" validate:"required,min=1,dive"`
}

type ShipmentService interface {
	Create(ctx context.Context, userID uint, params CreateShipmentParams) (*model.Shipment, error)
	FindByID(ctx context.Context, userID, id uint) (*model.Shipment, error)
	Update(ctx context.Context, userID, id uint, params repository.UpdateShipmentParams) (*model.Shipment, error)
	Delete(ctx context.Context, userID, id uint) (*model.Shipment, error)
	List(ctx context.Context, userID uint, params repository.ListParams) (*repository.ListResult[model.Shipment], error)
}

type shipmentService struct {
	repo repository.ShipmentRepository
	hub  *ws.Hub
}

func NewShipmentService(repo repository.ShipmentRepository, hub *ws.Hub) ShipmentService {
	return &shipmentService{repo: repo, hub: hub}
}

func (s *shipmentService) Create(ctx context.Context, userID uint, params CreateShipmentParams) (*model.Shipment, error) {
	if errs := validator.ValidateStruct(params); len(errs) > 0 {
		return nil, errs[0]
	}

	shipment := &model.Shipment{
		Description: params.Description,
		UserID:      userID,
		Items:       make([]model.ShipmentItem, len(params.Items)),
	}
	for i, item := range params.Items {
		shipment.Items[i] = model.ShipmentItem{
			Amount:     item.Amount,
			ClothingID: item.ClothingID,
		}
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, err
	}

	go s.hub.BroadcastJSON(ws.Event{
		Type:    "activity",
		Action:  "shipment_created",
		Data:    shipment,
		Message: fmt.Sprintf("shipment #%d recorded with %d items", shipment.ID, len(shipment.Items)),
	})

	return shipment, nil
}

func (s *shipmentService) FindByID(ctx context.Context, userID, id uint) (*model.Shipment, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *shipmentService) Update(ctx context.Context, userID, id uint, params repository.UpdateShipmentParams) (*model.Shipment, error) {
	return s.repo.Update(ctx, userID, id, params)
}

func (s *shipmentService) Delete(ctx context.Context, userID, id uint) (*model.Shipment, error) {
	return s.repo.Delete(ctx, userID, id)
}

func (s *shipmentService) List(ctx context.Context, userID uint, params repository.ListParams) (*repository.ListResult[model.Shipment], error) {
	return s.repo.ListByUser(ctx, userID, params)
}
