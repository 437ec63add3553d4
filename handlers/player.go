package handlers

import (
	"kicker-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	app.Post("/profiles", playerService.CreatePlayer)
	app.Get("/profiles", playerService.ListPlayers)
	app.Get("/profiles/:name", playerService.GetPlayer)
	app.Delete("/profiles/:name", playerService.DeletePlayer)
}
