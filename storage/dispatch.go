package storage

import (
	"context"

	"kicker-league/models"

	"go.uber.org/zap"
)

// Dispatcher routes a domain value to the Store operation for its type.
//
//	save:   Player, Team, Membership, Tournament
//	load:   PlayerIndex, PlayerRequest, TeamIndex
//	delete: PlayerRequest, Team
//
// Any other (operation, value) pair fails with *UnsupportedOperationError.
type Dispatcher struct {
	store *Store
	log   *zap.Logger
}

// NewDispatcher wraps store.
func NewDispatcher(store *Store, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{store: store, log: log}
}

type saveOptions struct {
	withDependencies bool
}

// SaveOption adjusts a single Save call.
type SaveOption func(*saveOptions)

// WithoutDependencies stops a Membership save from creating its team.
func WithoutDependencies() SaveOption {
	return func(o *saveOptions) { o.withDependencies = false }
}

// Save stores v. A nil Value with a nil error means no new record was
// created (existing team, already recorded membership).
func (d *Dispatcher) Save(ctx context.Context, v models.Value, opts ...SaveOption) (models.Value, error) {
	o := saveOptions{withDependencies: true}
	for _, opt := range opts {
		opt(&o)
	}
	d.trace("save", v)

	switch v := v.(type) {
	case models.Player:
		p, err := d.store.SavePlayer(ctx, v)
		if err != nil {
			return nil, err
		}
		return p, nil
	case models.Team:
		team, created, err := d.store.SaveTeam(ctx, v)
		if err != nil || !created {
			return nil, err
		}
		return team, nil
	case models.Membership:
		m, created, err := d.store.SaveMembership(ctx, v, o.withDependencies)
		if err != nil || !created {
			return nil, err
		}
		return m, nil
	case models.Tournament:
		t, err := d.store.SaveTournament(ctx, v)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, d.unsupported("save", v)
	}
}

// Load reads the records selected by v. PlayerIndex and TeamIndex yield a
// PlayerList or TeamList, never nil. PlayerRequest yields a Player, or nil
// when no player has that name.
func (d *Dispatcher) Load(ctx context.Context, v models.Value) (models.Value, error) {
	d.trace("load", v)

	switch v := v.(type) {
	case models.PlayerIndex:
		players, err := d.store.ListPlayers(ctx)
		if err != nil {
			return nil, err
		}
		return players, nil
	case models.PlayerRequest:
		p, found, err := d.store.FindPlayer(ctx, v)
		if err != nil || !found {
			return nil, err
		}
		return p, nil
	case models.TeamIndex:
		teams, err := d.store.ListTeams(ctx)
		if err != nil {
			return nil, err
		}
		return teams, nil
	default:
		return nil, d.unsupported("load", v)
	}
}

// Delete removes the record keyed by v and reports whether one existed.
func (d *Dispatcher) Delete(ctx context.Context, v models.Value) (bool, error) {
	d.trace("delete", v)

	switch v := v.(type) {
	case models.PlayerRequest:
		return d.store.DeletePlayer(ctx, v)
	case models.Team:
		return d.store.DeleteTeam(ctx, v)
	default:
		return false, d.unsupported("delete", v)
	}
}

func (d *Dispatcher) trace(op string, v models.Value) {
	if ce := d.log.Check(zap.DebugLevel, "storage dispatch"); ce != nil {
		ce.Write(zap.String("op", op), zap.String("kind", kindOf(v)))
	}
}

func (d *Dispatcher) unsupported(op string, v models.Value) error {
	err := &UnsupportedOperationError{Op: op, Kind: models.Kind(kindOf(v))}
	d.log.Error("unsupported storage operation", zap.String("op", op), zap.String("kind", kindOf(v)))
	return err
}

func kindOf(v models.Value) string {
	if v == nil {
		return "<nil>"
	}
	return string(v.Kind())
}
