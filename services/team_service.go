package services

import (
	"kicker-league/models"
	"kicker-league/storage"

	"github.com/gofiber/fiber/v2"
)

// TeamService serves teams and team memberships.
type TeamService struct {
	Storage *storage.Dispatcher
}

func NewTeamService(d *storage.Dispatcher) *TeamService {
	return &TeamService{Storage: d}
}

func (s *TeamService) ListTeams(c *fiber.Ctx) error {
	teams, err := s.Storage.Load(c.UserContext(), models.AllTeams)
	if err != nil {
		return err
	}
	return c.JSON(teams)
}

// CreateTeam answers with the new team, or with an empty body when a team
// of that name already exists.
func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	fields, err := bodyFields(c)
	if err != nil {
		return err
	}
	team, err := models.CreateTeam(fields)
	if err != nil {
		return err
	}
	saved, err := s.Storage.Save(c.UserContext(), team)
	if err != nil {
		return err
	}
	if saved == nil {
		return emptyOK(c)
	}
	return c.JSON(saved)
}

func (s *TeamService) DeleteTeam(c *fiber.Ctx) error {
	removed, err := s.Storage.Delete(c.UserContext(), models.TeamNamed(c.Params("name")))
	if err != nil {
		return err
	}
	if !removed {
		return fiber.ErrNotFound
	}
	return emptyOK(c)
}

// CreateMembership adds a player to a team, creating the team if needed.
// Unknown players surface as a referential-integrity error (400).
func (s *TeamService) CreateMembership(c *fiber.Ctx) error {
	fields, err := bodyFields(c)
	if err != nil {
		return err
	}
	membership, err := models.CreateMembership(fields)
	if err != nil {
		return err
	}
	saved, err := s.Storage.Save(c.UserContext(), membership)
	if err != nil {
		return err
	}
	if saved == nil {
		return emptyOK(c)
	}
	return c.JSON(saved)
}
