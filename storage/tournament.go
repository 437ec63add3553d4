package storage

import (
	"context"

	"kicker-league/models"
)

// SaveTournament accepts t without persisting it. The tournament table is
// created by Migrate but nothing reads or writes it yet.
func (s *Store) SaveTournament(ctx context.Context, t models.Tournament) (models.Tournament, error) {
	return t, nil
}
