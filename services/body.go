package services

import (
	"github.com/gofiber/fiber/v2"
)

// bodyFields decodes a JSON object body into an untyped field map for the
// models Create factories. The Content-Type header is not required.
func bodyFields(c *fiber.Ctx) (map[string]any, error) {
	var fields map[string]any
	if err := c.App().Config().JSONDecoder(c.Body(), &fields); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
	}
	if fields == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "request body must be a JSON object")
	}
	return fields, nil
}

// emptyOK answers a successful request that has nothing to return.
func emptyOK(c *fiber.Ctx) error {
	c.Status(fiber.StatusOK)
	return nil
}
