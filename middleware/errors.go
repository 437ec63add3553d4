package middleware

import (
	"errors"

	"kicker-league/models"
	"kicker-league/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler maps the error taxonomy onto HTTP responses:
// validation and referential-integrity errors are client errors,
// fiber errors keep their status, and everything else is logged and
// reported as 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "internal server error"

		var (
			validationErr *models.ValidationError
			fiberErr      *fiber.Error
		)
		switch {
		case errors.As(err, &validationErr):
			status = fiber.StatusBadRequest
			message = validationErr.Message
		case errors.Is(err, storage.ErrReferentialIntegrity):
			status = fiber.StatusBadRequest
			message = "Unknown player or team name"
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, storage.ErrUnsupportedOperation):
			log.Error("❌ unsupported storage operation reached the API",
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.String("request_id", RequestID(c)),
			)
		default:
			log.Error("request failed",
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.String("request_id", RequestID(c)),
			)
		}

		return c.Status(status).JSON(fiber.Map{"error": message})
	}
}
