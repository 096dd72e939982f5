package handler

import (
	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Register handles user registration
// POST /user
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var params service.RegisterParams
	if err := c.BodyParser(&params); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.authService.Register(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Login verifies the phone number + password pair and returns a token with
// the user record.
// POST /user/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.PhoneNumber == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone_number and password are required")
	}

	response, err := h.authService.Login(c.UserContext(), req.PhoneNumber, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// Deregister deletes the current user and everything it owns.
// DELETE /user
func (h *AuthHandler) Deregister(c *fiber.Ctx) error {
	user, err := h.authService.Deregister(c.UserContext(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
