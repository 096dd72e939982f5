package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/repository"
	"go-garment-supply/internal/service"
)

type ShipmentHandler struct {
	service service.ShipmentService
}

func NewShipmentHandler(s service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: s}
}

func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var params service.CreateShipmentParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	shipment, err := h.service.Create(c.UserContext(), currentUserID(c), params)
	if err != nil {
		return err
	}
	return c.JSON(shipment)
}

func (h *ShipmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	shipment, err := h.service.FindByID(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(shipment)
}

func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var params repository.UpdateShipmentParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	shipment, err := h.service.Update(c.UserContext(), currentUserID(c), id, params)
	if err != nil {
		return err
	}
	return c.JSON(shipment)
}

func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	shipment, err := h.service.Delete(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(shipment)
}

func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	result, err := h.service.List(c.UserContext(), currentUserID(c), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
