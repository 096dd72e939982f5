package service

import (
	"context"
	"fmt"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/ws"
	"go-garment-supply/pkg/validator"
)

type CreateProductionItemParams struct {
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
	Count      int     `json:"count" validate:"gte=0"`
	ClothingID uint    `json:"clothing_id" validate:"required"`
}

type CreateProductionParams struct {
	Description *string                      `json:"description"`
	StaffID     uint                         `json:"staff_id" validate:"required"`
	Items       []CreateProductionItemParams `json:"items" validate:"required,min=1,dive"`
}

type ProductionService interface {
	Create(ctx context.Context, userID uint, params CreateProductionParams) (*model.Production, error)
	FindByID(ctx context.Context, userID, id uint) (*model.Production, error)
	Update(ctx context.Context, userID, id uint, params repository.UpdateProductionParams) (*model.Production, error)
	Delete(ctx context.Context, userID, id uint) (*model.Production, error)
	Settle(ctx context.Context, userID, id uint) (*model.Production, error)
	List(ctx context.Context, userID uint, params repository.ListParams) (*repository.ListResult[model.Production], error)
}

type productionService struct {
	repo      repository.ProductionRepository
	staffRepo repository.StaffRepository
	hub       *ws.Hub
}

func NewProductionService(repo repository.ProductionRepository, staffRepo repository.StaffRepository, hub *ws.Hub) ProductionService {
	return &productionService{repo: repo, staffRepo: staffRepo, hub: hub}
}

func (s *productionService) Create(ctx context.Context, userID uint, params CreateProductionParams) (*model.Production, error) {
	if errs := validator.ValidateStruct(params); len(errs) > 0 {
		return nil, errs[0]
	}

	// The referenced staff member must belong to the caller; a foreign
	// staff id reads as NotFound.
	staff, err := s.staffRepo.FindByID(ctx, userID, params.StaffID)
	if err != nil {
		return nil, err
	}

	production := &model.Production{
		Description: params.Description,
		StaffID:     staff.ID,
		Items:       make([]model.ProductionItem, len(params.Items)),
	}
	for i, item := range params.Items {
		salary := item.UnitPrice * float64(item.Count)
		production.Items[i] = model.ProductionItem{
			UnitPrice:  item.UnitPrice,
			Count:      item.Count,
			Salary:     salary,
			ClothingID: item.ClothingID,
		}
		production.TotalSalary += salary
	}

	if err := s.repo.Create(ctx, production); err != nil {
		return nil, err
	}

	go s.hub.BroadcastJSON(ws.Event{
		Type:    "activity",
		Action:  "production_created",
		Data:    production,
		Message: fmt.Sprintf("production #%d recorded, total salary %.2f", production.ID, production.TotalSalary),
	})

	return production, nil
}

func (s *productionService) FindByID(ctx context.Context, userID, id uint) (*model.Production, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *productionService) Update(ctx context.Context, userID, id uint, params repository.UpdateProductionParams) (*model.Production, error) {
	return s.repo.Update(ctx, userID, id, params)
}

func (s *productionService) Delete(ctx context.Context, userID, id uint) (*model.Production, error) {
	return s.repo.Delete(ctx, userID, id)
}

func (s *productionService) Settle(ctx context.Context, userID, id uint) (*model.Production, error) {
	production, err := s.repo.Settle(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	go s.hub.BroadcastJSON(ws.Event{
		Type:    "activity",
		Action:  "production_settled",
		Data:    production,
		Message: fmt.Sprintf("production #%d settled", production.ID),
	})

	return production, nil
}

func (s *productionService) List(ctx context.Context, userID uint, params repository.ListParams) (*repository.ListResult[model.Production], error) {
	return s.repo.ListByUser(ctx, userID, params)
}
