package handlers

import (
	"kicker-league/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	app.Get("/teams", teamService.ListTeams)
	app.Post("/teams", teamService.CreateTeam)
	app.Delete("/teams/:name", teamService.DeleteTeam)

	app.Post("/memberships", teamService.CreateMembership)
}
