package handlers

import (
	"fmt"

	"kicker-league/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAssetRoutes serves the front-end bundle: the entry file at "/" and
// the whole directory under /static.
func SetupAssetRoutes(app *fiber.App, assetsDir string) error {
	entry, err := utils.FindEntryPoint(assetsDir)
	if err != nil {
		return fmt.Errorf("front-end assets: %w", err)
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendFile(entry)
	})
	app.Static("/static", assetsDir)
	return nil
}
