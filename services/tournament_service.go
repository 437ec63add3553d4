package services

import (
	"kicker-league/models"
	"kicker-league/storage"

	"github.com/gofiber/fiber/v2"
)

type TournamentService struct {
	Storage *storage.Dispatcher
}

func NewTournamentService(d *storage.Dispatcher) *TournamentService {
	return &TournamentService{Storage: d}
}

// CreateTournament validates the tournament and echoes it back. Tournaments
// are accepted but not stored yet.
func (s *TournamentService) CreateTournament(c *fiber.Ctx) error {
	fields, err := bodyFields(c)
	if err != nil {
		return err
	}
	tournament, err := models.CreateTournament(fields)
	if err != nil {
		return err
	}
	accepted, err := s.Storage.Save(c.UserContext(), tournament)
	if err != nil {
		return err
	}
	return c.JSON(accepted)
}
