package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"kicker-league/models"
	"kicker-league/storage"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(context.Background(), storage.Options{Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReportLogsCounts(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	_, err := s.SavePlayer(ctx, models.Player{Name: "alice", Location: models.Berlin})
	require.NoError(t, err)
	_, _, err = s.SaveMembership(ctx, models.Membership{Member: "alice", Within: "Kickers"}, true)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.InfoLevel)
	w := NewStatsWorker(s, zap.New(core), time.Minute)
	w.report()

	entries := logs.FilterMessage("league stats").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(1), fields["players"])
	assert.Equal(t, int64(1), fields["teams"])
	assert.Equal(t, int64(1), fields["memberships"])
}

func TestStartRunsImmediately(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := NewStatsWorker(newStore(t), zap.New(core), time.Hour)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	assert.Eventually(t, func() bool {
		return logs.FilterMessage("league stats").Len() > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestStartRejectsZeroInterval(t *testing.T) {
	w := NewStatsWorker(newStore(t), nil, 0)
	assert.Error(t, w.Start())
	assert.NoError(t, w.Stop())
}
