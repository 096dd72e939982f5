package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/pkg/validator"
)

type BossHandler struct {
	repo repository.BossRepository
}

func NewBossHandler(repo repository.BossRepository) *BossHandler {
	return &BossHandler{repo: repo}
}

type createBossRequest struct {
	Name        string  `json:"name" validate:"required"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

func (h *BossHandler) Create(c *fiber.Ctx) error {
	var req createBossRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errs[0]
	}

	// Owner linkage comes from the token, never from the payload.
	boss := &model.Boss{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
		Address:     req.Address,
		UserID:      currentUserID(c),
	}
	if err := h.repo.Create(c.UserContext(), boss); err != nil {
		return err
	}
	return c.JSON(boss)
}

func (h *BossHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	boss, err := h.repo.FindByID(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(boss)
}

func (h *BossHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var params repository.UpdateBossParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	boss, err := h.repo.Update(c.UserContext(), currentUserID(c), id, params)
	if err != nil {
		return err
	}
	return c.JSON(boss)
}

func (h *BossHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	boss, err := h.repo.Delete(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(boss)
}

func (h *BossHandler) List(c *fiber.Ctx) error {
	result, err := h.repo.ListByUser(c.UserContext(), currentUserID(c), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
