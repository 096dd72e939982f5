package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"go-garment-supply/internal/apperr"
	"go-garment-supply/pkg/validator"
)

// ErrorHandler maps error kinds to status codes and renders the uniform
// {code, reason} envelope. Repository and service errors arrive here
// unchanged; nothing retries.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrExpiredToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrMissingCredentials), errors.Is(err, apperr.ErrInvalidToken):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrTokenCreation):
		status = fiber.StatusInternalServerError
	default:
		var validationErr *validator.ErrorResponse
		var fiberErr *fiber.Error
		if errors.As(err, &validationErr) {
			status = fiber.StatusBadRequest
		} else if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}

	reason := err.Error()
	if status == fiber.StatusInternalServerError {
		// Internal details stay out of the response body.
		reason = "something went wrong: " + reason
	}

	return c.Status(status).JSON(fiber.Map{
		"code":   status,
		"reason": reason,
	})
}
