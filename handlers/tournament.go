package handlers

import (
	"kicker-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTournamentRoutes(app *fiber.App, tournamentService *services.TournamentService) {
	app.Post("/tournaments", tournamentService.CreateTournament)
}
