package service

import (
	"context"
	"fmt"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/ws"
	"go-garment-supply/pkg/validator"
)

type CreateStockItemParams struct {
	Amount     int  `json:"amount" validate:"gte=0"`
	ClothingID uint `json:"clothing_id" validate:"required"`
}

type CreateProcurementParams struct {
	Description *string                 `json:"description"`
	Items       []CreateStockItemParams `json:"items" validate:"required,min=1,dive"`
}

type ProcurementService interface {
	Create(ctx context.Context, userID uint, params CreateProcurementParams) (*model.Procurement, error)
	FindByID(ctx context.Context, userID, id uint) (*model.Procurement, error)
	Update(ctx context.Context, userID, id uint, params repository.UpdateProcurementParams) (*model.Procurement, error)
	Delete(ctx context.Context, userID, id uint) (*model.Procurement, error)
	List(ctx context.Context, userID uint, params repository.ListParams) (*repository.ListResult[model.Procurement], error)
}

type procurementService struct {
	repo repository.ProcurementRepository
	hub  *ws.Hub
}

func NewProcurementService(repo repository.ProcurementRepository, hub *ws.Hub) ProcurementService {
	return &procurementService{repo: repo, hub: hub}
}

func (s *procurementService) Create(ctx context.Context, userID uint, params CreateProcurementParams) (*model.Procurement, error) {
	if errs := validator.ValidateStruct(params); len(errs) > 0 {
		return nil, errs[0]
	}

	procurement := &model.Procurement{
		Description: params.Description,
		UserID:      userID,
		Items:       make([]model.ProcurementItem, len(params.Items)),
	}
	for i, item := range params.Items {
		procurement.Items[i] = model.ProcurementItem{
			Amount:     item.Amount,
			ClothingID: item.ClothingID,
		}
	}

	if err := s.repo.Create(ctx, procurement); err != nil {
		return nil, err
	}

	go s.hub.BroadcastJSON(ws.Event{
		Type:    "activity",
		Action:  "procurement_created",
		Data:    procurement,
		Message: fmt.Sprintf("procurement #%d recorded with %d items", procurement.ID, len(procurement.Items)),
	})

	return procurement, nil
}

func (s *procurementService) FindByID(ctx context.Context, userID, id uint) (*model.Procurement, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *procurementService) Update(ctx context.Context, userID, id uint, params repository.UpdateProcurementParams) (*model.Procurement, error) {
	return s.repo.Update(ctx, userID, id, params)
}

func (s *procurementService) Delete(ctx context.Context, userID, id uint) (*model.Procurement, error) {
	return s.repo.Delete(ctx, userID, id)
}

func (s *procurementService) List(ctx context.Context, userID uint, params repository.ListParams) (*repository.ListResult[model.Procurement], error) {
	return s.repo.ListByUser(ctx, userID, params)
}
