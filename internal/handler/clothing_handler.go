package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/pkg/validator"
)

type ClothingHandler struct {
	repo repository.ClothingRepository
}

func NewClothingHandler(repo repository.ClothingRepository) *ClothingHandler {
	return &ClothingHandler{repo: repo}
}

type createClothingRequest struct {
	BossID      uint    `json:"boss_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (h *ClothingHandler) Create(c *fiber.Ctx) error {
	var req createClothingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errs[0]
	}

	clothing := &model.Clothing{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		BossID:      req.BossID,
	}
	if err := h.repo.Create(c.UserContext(), currentUserID(c), clothing); err != nil {
		return err
	}
	return c.JSON(clothing)
}

func (h *ClothingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	clothing, err := h.repo.FindByID(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(clothing)
}

func (h *ClothingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var params repository.UpdateClothingParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	clothing, err := h.repo.Update(c.UserContext(), currentUserID(c), id, params)
	if err != nil {
		return err
	}
	return c.JSON(clothing)
}

func (h *ClothingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	clothing, err := h.repo.Delete(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(clothing)
}

func (h *ClothingHandler) List(c *fiber.Ctx) error {
	result, err := h.repo.ListByUser(c.UserContext(), currentUserID(c), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
