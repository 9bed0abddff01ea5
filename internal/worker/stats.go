// Package worker runs periodic jobs beside the API.
package worker

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

type StatsSource interface {
	DashboardStats() domain.DashboardStats
}

// StatsReporter logs the program totals on a fixed interval.
type StatsReporter struct {
	source StatsSource
	sched  gocron.Scheduler
}

func NewStatsReporter(source StatsSource, clock clockwork.Clock) (*StatsReporter, error) {
	opts := []gocron.SchedulerOption{
		gocron.WithLogger(gocron.NewLogger(gocron.LogLevelError)),
	}
	if clock != nil {
		opts = append(opts, gocron.WithClock(clock))
	}

	sched, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("gocron.NewScheduler -> %w", err)
	}

	return &StatsReporter{
		source: source,
		sched:  sched,
	}, nil
}

// Start reports once right away and then every interval.
func (r *StatsReporter) Start(interval time.Duration) error {
	_, err := r.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(r.Report),
		gocron.WithName("dashboard-stats"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("r.sched.NewJob -> %w", err)
	}

	r.sched.Start()
	zap.L().Info("stats reporter started", zap.Duration("interval", interval))

	return nil
}

func (r *StatsReporter) Report() {
	stats := r.source.DashboardStats()
	zap.L().Info("ledger stats",
		zap.Int("users", stats.TotalUsers),
		zap.Int("events", stats.TotalEvents),
		zap.Int("completions", stats.TotalCompletedEvents),
		zap.Int("points_awarded", stats.TotalPointsAwarded),
	)
}

func (r *StatsReporter) Shutdown() error {
	if err := r.sched.Shutdown(); err != nil {
		return fmt.Errorf("r.sched.Shutdown -> %w", err)
	}
	return nil
}
