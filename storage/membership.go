package storage

import (
	"context"
	"fmt"

	"kicker-league/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveMembership records m in one transaction made of two steps:
//
//  1. ensureTeamExists for m.Within, when ensureTeam is set;
//  2. insertMembership, under its own savepoint.
//
// The player is never created. When m.Member (or, without ensureTeam,
// m.Within) is unknown, only step 2 is rolled back: the error wraps
// ErrReferentialIntegrity and the team created by step 1 is kept. The bool
// is false when the pair was already recorded.
func (s *Store) SaveMembership(ctx context.Context, m models.Membership, ensureTeam bool) (models.Membership, bool, error) {
	var (
		created   bool
		integrity error
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if ensureTeam {
			teamCreated, err := ensureTeamExists(tx, m.Within)
			if err != nil {
				return err
			}
			if teamCreated {
				s.log.Debug("team created for membership", zap.String("team", m.Within))
			}
		}
		var err error
		created, err = insertMembership(tx, m)
		if isForeignKeyViolation(err) {
			integrity = fmt.Errorf("membership %q in %q: %w", m.Member, m.Within, ErrReferentialIntegrity)
			return nil
		}
		return err
	})
	if err != nil {
		return models.Membership{}, false, fmt.Errorf("save membership %q in %q: %w", m.Member, m.Within, err)
	}
	if integrity != nil {
		return models.Membership{}, false, integrity
	}
	if !created {
		return models.Membership{}, false, nil
	}
	return m, true, nil
}

// insertMembership runs as a nested transaction so a constraint failure
// rolls back to its savepoint and leaves the enclosing transaction usable.
func insertMembership(tx *gorm.DB, m models.Membership) (bool, error) {
	var created bool
	err := tx.Transaction(func(sp *gorm.DB) error {
		res := sp.Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&membershipRow{Within: m.Within, Member: m.Member})
		created = res.RowsAffected > 0
		return res.Error
	})
	return created, err
}
