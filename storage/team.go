package storage

import (
	"context"
	"fmt"

	"kicker-league/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveTeam inserts t unless a team with that name already exists. The bool
// reports whether a new row was created.
func (s *Store) SaveTeam(ctx context.Context, t models.Team) (models.Team, bool, error) {
	var created bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = ensureTeamExists(tx, t.Name)
		return err
	})
	if err != nil {
		return models.Team{}, false, fmt.Errorf("save team %q: %w", t.Name, err)
	}
	if !created {
		return models.Team{}, false, nil
	}
	return t, true, nil
}

// ensureTeamExists is the insert-or-ignore step shared by team and
// membership saves. It must run on a transaction handle.
func ensureTeamExists(tx *gorm.DB, name string) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&teamRow{Name: name})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListTeams returns every team in the table's natural order.
func (s *Store) ListTeams(ctx context.Context) (models.TeamList, error) {
	var rows []teamRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	teams := make(models.TeamList, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, models.Team{Name: row.Name})
	}
	return teams, nil
}

// DeleteTeam removes the named team and, by cascade, its memberships.
func (s *Store) DeleteTeam(ctx context.Context, t models.Team) (bool, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("name = ?", t.Name).Delete(&teamRow{})
		removed = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("delete team %q: %w", t.Name, err)
	}
	return removed > 0, nil
}
