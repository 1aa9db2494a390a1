package scheduler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/usecases"
)

// Ledger remembers which reminders went out so a cycle is reminded once per deadline.
type Ledger interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type ReminderMonitor struct {
	deadlines   usecases.FindUpcomingDeadlinesUsecase
	reminder    usecases.SendReminderNotificationUsecase
	ledger      Ledger
	hoursBefore int
	log         *zap.Logger
}

func NewReminderMonitor(deadlines usecases.FindUpcomingDeadlinesUsecase, reminder usecases.SendReminderNotificationUsecase,
	ledger Ledger, hoursBefore int, log *zap.Logger) *ReminderMonitor {
	return &ReminderMonitor{
		deadlines:   deadlines,
		reminder:    reminder,
		ledger:      ledger,
		hoursBefore: hoursBefore,
		log:         log,
	}
}

// Start checks for upcoming deadlines right away and then every interval until ctx is done.
func (m *ReminderMonitor) Start(ctx context.Context, interval time.Duration) {
	m.log.Info("reminder monitor started", zap.Duration("interval", interval), zap.Int("hours_before", m.hoursBefore))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.RunOnce(ctx)
	for {
		select {
		case <-ticker.C:
			m.RunOnce(ctx)
		case <-ctx.Done():
			m.log.Info("reminder monitor stopped")
			return
		}
	}
}

// RunOnce handles every upcoming deadline not handled yet and returns how many
// reminders were posted. Failures are logged and retried next run.
func (m *ReminderMonitor) RunOnce(ctx context.Context) int {
	deadlines, err := m.deadlines.Execute(ctx, m.hoursBefore)
	if err != nil {
		m.log.Error("failed to find upcoming deadlines", zap.Error(err))
		return 0
	}

	ttl := time.Duration(m.hoursBefore)*time.Hour + time.Hour
	sent := 0
	for _, d := range deadlines {
		key := fmt.Sprintf("%s:%d", d.CycleID, d.Deadline.Unix())
		claimed, err := m.ledger.Claim(ctx, key, ttl)
		if err != nil {
			m.log.Error("failed to claim reminder", zap.Stringer("cycle_id", d.CycleID), zap.Error(err))
			continue
		}
		if !claimed {
			continue
		}

		notified, err := m.reminder.Execute(ctx, d.CycleID)
		if err != nil {
			m.log.Error("failed to send reminder",
				zap.Stringer("cycle_id", d.CycleID),
				zap.String("cycle", d.CycleName),
				zap.Error(err),
			)
			if err := m.ledger.Release(ctx, key); err != nil {
				m.log.Warn("failed to release reminder claim", zap.String("key", key), zap.Error(err))
			}
			continue
		}

		if !notified {
			m.log.Info("no reminder needed, everyone submitted", zap.String("cycle", d.CycleName))
			continue
		}

		m.log.Info("reminder sent", zap.String("cycle", d.CycleName), zap.Time("deadline", d.Deadline))
		sent++
	}
	return sent
}
