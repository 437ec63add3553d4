package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"kicker-league/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), Options{Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenInMemory(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, "sqlite", s.Driver())

	for _, table := range []string{"player", "team", "membership", "tournament"} {
		assert.True(t, s.db.Migrator().HasTable(table), "table %s", table)
	}

	var enabled int
	require.NoError(t, s.db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestStore(t)
	b := newTestStore(t)

	_, err := a.SavePlayer(ctx, models.Player{Name: "alice", Location: models.Berlin})
	require.NoError(t, err)

	players, err := b.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestDialectorFor(t *testing.T) {
	driver, _ := dialectorFor("")
	assert.Equal(t, "sqlite", driver)

	driver, _ = dialectorFor("postgres://kicker@localhost/league")
	assert.Equal(t, "postgres", driver)

	driver, _ = dialectorFor("postgresql://kicker@localhost/league")
	assert.Equal(t, "postgres", driver)

	driver, _ = dialectorFor("league.db")
	assert.Equal(t, "sqlite", driver)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)

	_, err = s.SavePlayer(ctx, models.Player{Name: "alice", Location: models.Berlin})
	require.NoError(t, err)
	_, _, err = s.SaveMembership(ctx, models.Membership{Member: "alice", Within: "Kickers"}, true)
	require.NoError(t, err)

	st, err = s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Players: 1, Teams: 1, Memberships: 1}, st)
}

func TestCloseNil(t *testing.T) {
	var s *Store
	assert.NoError(t, s.Close())
}
