// Package workers runs background jobs next to the HTTP server.
package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"kicker-league/storage"
)

const statsTimeout = 10 * time.Second

// StatsWorker periodically logs how many players, teams and memberships
// the league holds.
type StatsWorker struct {
	store    *storage.Store
	log      *zap.Logger
	interval time.Duration
	sched    gocron.Scheduler
}

func NewStatsWorker(store *storage.Store, log *zap.Logger, interval time.Duration) *StatsWorker {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatsWorker{store: store, log: log.Named("stats"), interval: interval}
}

// Start schedules the job and runs it once right away.
func (w *StatsWorker) Start() error {
	if w.interval <= 0 {
		return fmt.Errorf("stats interval must be positive, got %s", w.interval)
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.report),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("schedule stats job: %w", err)
	}
	sched.Start()
	w.sched = sched
	w.log.Info("🔁 stats worker running", zap.Duration("interval", w.interval))
	return nil
}

func (w *StatsWorker) Stop() error {
	if w.sched == nil {
		return nil
	}
	err := w.sched.Shutdown()
	w.sched = nil
	return err
}

func (w *StatsWorker) report() {
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	st, err := w.store.Stats(ctx)
	if err != nil {
		w.log.Warn("⚠️ stats query failed", zap.Error(err))
		return
	}
	w.log.Info("league stats",
		zap.Int64("players", st.Players),
		zap.Int64("teams", st.Teams),
		zap.Int64("memberships", st.Memberships),
	)
}
