package handlers

import (
	"Shelf/internal/middleware"
	"Shelf/internal/services"
	"Shelf/internal/validation"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const serverErrorMessage = "Server Error"

// respondError maps service errors to responses: validation failures to 422,
// unknown resources to an empty 404 and everything else to a logged 500.
func respondError(c *fiber.Ctx, logService services.LogService, err error) error {
	var validationErr *validation.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": validationErr.Message(),
			"errors":  validationErr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		// 404s carry no body; SendStatus would write the status text.
		return c.Status(fiber.StatusNotFound).Send(nil)
	case errors.As(err, &fiberErr):
		return err
	default:
		logServerError(c, logService, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": serverErrorMessage})
	}
}

// ErrorHandler renders errors that reach fiber, such as unmatched routes or
// malformed bodies.
func ErrorHandler(logService services.LogService) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		logServerError(c, logService, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": serverErrorMessage})
	}
}

func logServerError(c *fiber.Ctx, logService services.LogService, err error) {
	logService.Log.WithFields(logrus.Fields{
		"request_id": middleware.RequestIDFromCtx(c),
		"method":     c.Method(),
		"path":       c.Path(),
		"error":      err.Error(),
	}).Error("request failed")
}
