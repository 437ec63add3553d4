package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"kicker-league/models"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(newTestStore(t), zap.NewNop())
}

func TestDispatchPlayerScenario(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	v, err := d.Save(ctx, models.Player{Name: "alice", Location: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, models.Player{Name: "alice", Location: "Berlin"}, v)

	v, err = d.Save(ctx, models.Player{Name: "alice", Location: "Munich"})
	require.NoError(t, err)
	assert.Equal(t, models.Player{Name: "alice", Location: "Munich"}, v)

	v, err = d.Load(ctx, models.PlayerRequest{Name: "alice"})
	require.NoError(t, err)
	assert.Equal(t, models.Player{Name: "alice", Location: "Munich"}, v)
}

func TestDispatchLoadMissingPlayerIsNil(t *testing.T) {
	d := newTestDispatcher(t)

	v, err := d.Load(context.Background(), models.PlayerRequest{Name: "ghost"})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDispatchIndexes(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	v, err := d.Load(ctx, models.AllPlayers)
	require.NoError(t, err)
	assert.Equal(t, models.PlayerList{}, v)

	v, err = d.Load(ctx, models.AllTeams)
	require.NoError(t, err)
	assert.Equal(t, models.TeamList{}, v)

	_, err = d.Save(ctx, models.Team{Name: "Kickers"})
	require.NoError(t, err)

	v, err = d.Load(ctx, models.AllTeams)
	require.NoError(t, err)
	assert.Equal(t, models.TeamList{{Name: "Kickers"}}, v)
}

func TestDispatchTeamSaveReportsNoNewRecord(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	v, err := d.Save(ctx, models.Team{Name: "Kickers"})
	require.NoError(t, err)
	assert.Equal(t, models.Team{Name: "Kickers"}, v)

	v, err = d.Save(ctx, models.Team{Name: "Kickers"})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDispatchDelete(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	removed, err := d.Delete(ctx, models.NewPlayerRequest("ghost"))
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = d.Save(ctx, models.Team{Name: "Kickers"})
	require.NoError(t, err)
	removed, err = d.Delete(ctx, models.TeamNamed("Kickers"))
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestDispatchMembership(t *testing.T) {
	ctx := context.Background()
	d := newTestDispatcher(t)

	_, err := d.Save(ctx, models.Membership{Member: "ghost", Within: "NewTeam"})
	require.ErrorIs(t, err, ErrReferentialIntegrity)

	teams, err := d.Load(ctx, models.AllTeams)
	require.NoError(t, err)
	assert.Equal(t, models.TeamList{{Name: "NewTeam"}}, teams)

	_, err = d.Save(ctx, models.Player{Name: "alice", Location: models.Berlin})
	require.NoError(t, err)

	_, err = d.Save(ctx, models.Membership{Member: "alice", Within: "Other"}, WithoutDependencies())
	require.ErrorIs(t, err, ErrReferentialIntegrity)

	v, err := d.Save(ctx, models.Membership{Member: "alice", Within: "NewTeam"})
	require.NoError(t, err)
	assert.Equal(t, models.Membership{Member: "alice", Within: "NewTeam"}, v)

	v, err = d.Save(ctx, models.Membership{Member: "alice", Within: "NewTeam"})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDispatchTournamentEchoes(t *testing.T) {
	d := newTestDispatcher(t)

	in := models.Tournament{Location: models.Munich, Mode: models.ModeOneMatch, A: "a", B: "b"}
	v, err := d.Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in, v)
}

func TestDispatchUnsupported(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.ErrorLevel)
	d := NewDispatcher(newTestStore(t), zap.New(core))

	tests := []struct {
		op   string
		kind models.Kind
		call func() error
	}{
		{"save", models.KindPlayerRequest, func() error { _, err := d.Save(ctx, models.PlayerRequest{Name: "x"}); return err }},
		{"save", models.KindPlayerIndex, func() error { _, err := d.Save(ctx, models.AllPlayers); return err }},
		{"save", models.KindMatch, func() error { _, err := d.Save(ctx, models.Match{A: 1, B: 2}); return err }},
		{"load", models.KindPlayer, func() error { _, err := d.Load(ctx, models.Player{Name: "x"}); return err }},
		{"load", models.KindMembership, func() error { _, err := d.Load(ctx, models.Membership{}); return err }},
		{"delete", models.KindPlayer, func() error { _, err := d.Delete(ctx, models.Player{Name: "x"}); return err }},
		{"delete", models.KindTournament, func() error { _, err := d.Delete(ctx, models.Tournament{}); return err }},
		{"delete", models.KindTeamIndex, func() error { _, err := d.Delete(ctx, models.AllTeams); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.op+" "+string(tt.kind), func(t *testing.T) {
			err := tt.call()
			require.ErrorIs(t, err, ErrUnsupportedOperation)

			var unsupported *UnsupportedOperationError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tt.op, unsupported.Op)
			assert.Equal(t, tt.kind, unsupported.Kind)
			assert.Contains(t, err.Error(), string(tt.kind))
		})
	}
	assert.Equal(t, len(tests), logs.FilterMessage("unsupported storage operation").Len())
}

func TestDispatchNilValue(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Save(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
