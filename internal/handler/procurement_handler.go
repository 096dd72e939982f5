package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/service"
)

type ProcurementHandler struct {
	service service.ProcurementService
}

func NewProcurementHandler(s service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{service: s}
}

func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var params service.CreateProcurementParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	procurement, err := h.service.Create(c.UserContext(), currentUserID(c), params)
	if err != nil {
		return err
	}
	return c.JSON(procurement)
}

func (h *ProcurementHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	procurement, err := h.service.FindByID(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(procurement)
}

func (h *ProcurementHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var params repository.UpdateProcurementParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	procurement, err := h.service.Update(c.UserContext(), currentUserID(c), id, params)
	if err != nil {
		return err
	}
	return c.JSON(procurement)
}

func (h *ProcurementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	procurement, err := h.service.Delete(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(procurement)
}

func (h *ProcurementHandler) List(c *fiber.Ctx) error {
	result, err := h.service.List(c.UserContext(), currentUserID(c), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
