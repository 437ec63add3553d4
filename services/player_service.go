package services

import (
	"kicker-league/models"
	"kicker-league/storage"

	"github.com/gofiber/fiber/v2"
)

// PlayerService serves player profiles.
type PlayerService struct {
	Storage *storage.Dispatcher
}

func NewPlayerService(d *storage.Dispatcher) *PlayerService {
	return &PlayerService{Storage: d}
}

// CreatePlayer creates a player or moves an existing one to a new location.
func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	fields, err := bodyFields(c)
	if err != nil {
		return err
	}
	player, err := models.CreatePlayer(fields)
	if err != nil {
		return err
	}
	saved, err := s.Storage.Save(c.UserContext(), player)
	if err != nil {
		return err
	}
	return c.JSON(saved)
}

func (s *PlayerService) GetPlayer(c *fiber.Ctx) error {
	found, err := s.Storage.Load(c.UserContext(), models.NewPlayerRequest(c.Params("name")))
	if err != nil {
		return err
	}
	if found == nil {
		return fiber.ErrNotFound
	}
	return c.JSON(found)
}

func (s *PlayerService) DeletePlayer(c *fiber.Ctx) error {
	removed, err := s.Storage.Delete(c.UserContext(), models.NewPlayerRequest(c.Params("name")))
	if err != nil {
		return err
	}
	if !removed {
		return fiber.ErrNotFound
	}
	return emptyOK(c)
}

func (s *PlayerService) ListPlayers(c *fiber.Ctx) error {
	players, err := s.Storage.Load(c.UserContext(), models.AllPlayers)
	if err != nil {
		return err
	}
	return c.JSON(players)
}
