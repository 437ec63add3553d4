package storage

import (
	"context"
	"errors"
	"fmt"

	"kicker-league/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavePlayer inserts p, or updates the location of the player with the same
// name. It always returns p.
func (s *Store) SavePlayer(ctx context.Context, p models.Player) (models.Player, error) {
	row := playerRow{Name: p.Name, Location: p.Location}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"location"}),
		}).Create(&row).Error
	})
	if err != nil {
		return models.Player{}, fmt.Errorf("save player %q: %w", p.Name, err)
	}
	return p, nil
}

// FindPlayer looks a player up by name. The bool is false when none exists.
func (s *Store) FindPlayer(ctx context.Context, req models.PlayerRequest) (models.Player, bool, error) {
	var row playerRow
	err := s.db.WithContext(ctx).Where("name = ?", req.Name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Player{}, false, nil
	}
	if err != nil {
		return models.Player{}, false, fmt.Errorf("load player %q: %w", req.Name, err)
	}
	return models.Player{Name: row.Name, Location: row.Location}, true, nil
}

// ListPlayers returns every player in the table's natural order.
func (s *Store) ListPlayers(ctx context.Context) (models.PlayerList, error) {
	var rows []playerRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	players := make(models.PlayerList, 0, len(rows))
	for _, row := range rows {
		players = append(players, models.Player{Name: row.Name, Location: row.Location})
	}
	return players, nil
}

// DeletePlayer removes the named player together with their memberships.
// It reports whether a player was removed.
func (s *Store) DeletePlayer(ctx context.Context, req models.PlayerRequest) (bool, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("name = ?", req.Name).Delete(&playerRow{})
		removed = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete player %q: %w", req.Name, err)
	}
	return removed > 0, nil
}
