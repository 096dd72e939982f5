package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/model"
	"go-garment-supply/internal/repository"
	"go-garment-supply/pkg/validator"
)

type StaffHandler struct {
	repo repository.StaffRepository
}

func NewStaffHandler(repo repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

type createStaffRequest struct {
	Name        string  `json:"name" validate:"required"`
	PhoneNumber string  `json:"phone_number" validate:"required"`
	Description *string `json:"description"`
}

func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req createStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return errs[0]
	}

	staff := &model.Staff{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
		UserID:      currentUserID(c),
	}
	if err := h.repo.Create(c.UserContext(), staff); err != nil {
		return err
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	staff, err := h.repo.FindByID(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var params repository.UpdateStaffParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	staff, err := h.repo.Update(c.UserContext(), currentUserID(c), id, params)
	if err != nil {
		return err
	}
	return c.JSON(staff)
}

func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	staff, err := h.repo.Delete(c.UserContext(), currentUserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(staff)
}

func (h *StaffHandler) List(c *fiber.Ctx) error {
	result, err := h.repo.ListByUser(c.UserContext(), currentUserID(c), parseListParams(c))
	if err != nil {
		return err
	}
	return c.JSON(result)
}
