package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/service"
)

type ProductionHandler struct {
	service service.ProductionService
}

func NewProductionHandler(s service.ProductionService) *ProductionHandler {
	return &ProductionHandler{service: s}
}

func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var params service.CreateProductionParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	production, err := h.service.Create(c.UserContext(), currentUserID(c), params)
	if err != nil {
		return err
	}
	return c.JSON(production)
}

func (h *ProductionHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	production, err := h.service.FindByID(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(production)
}

func (h *ProductionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var params repository.UpdateProductionParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	production, err := h.service.Update(c.UserContext(), currentUserID(c), id, params)
	if err != nil {
		return err
	}
	return c.JSON(production)
}

func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	production, err := h.service.Delete(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(production)
}

// Settle marks a batch as financially closed. The transition is one-way; a
// repeat call returns the settled batch unchanged.
// POST /production/:id/settle
func (h *ProductionHandler) Settle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	production, err := h.service.Settle(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(production)
}

func (h *ProductionHandler) List(c *fiber.Ctx) error {
	result, err := h.service.List(c.UserContext(), currentUserID(c), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
