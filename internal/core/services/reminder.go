// internal/core/services/reminder.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
	"github.com/shelfwatch/shelfwatch-be/internal/workers"
)

// Reminder slots: 18:00 on the expiration day and 00:00 the day after.
const (
	SlotEvening  = "18"
	SlotMidnight = "24"
)

// ReminderTaskName returns the deterministic task name for a batch and slot.
func ReminderTaskName(batchID int64, slot string) string {
	return fmt.Sprintf("expiry:%d:%s", batchID, slot)
}

// ReminderScheduler arms and disarms the two fixed reminder tasks per batch
// on the durable task runner.
type ReminderScheduler struct {
	tasks  ports.TaskScheduler
	logger *slog.Logger
	now    func() time.Time
}

// Statically assert that *ReminderScheduler implements the port.
var _ ports.ReminderScheduler = (*ReminderScheduler)(nil)

// NewReminderScheduler creates a reminder scheduler.
func NewReminderScheduler(tasks ports.TaskScheduler, logger *slog.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		tasks:  tasks,
		logger: logger.With(slog.String("service", "reminder")),
		now:    time.Now,
	}
}

// WithClock overrides the scheduler's time source.
func (s *ReminderScheduler) WithClock(now func() time.Time) *ReminderScheduler {
	s.now = now
	return s
}

// ScheduleTwoAlerts arms one deferred task per reminder slot for the batch.
// A trigger instant not strictly in the future is silently skipped; arming a
// slot already pending replaces it.
func (s *ReminderScheduler) ScheduleTwoAlerts(ctx context.Context, batchID int64, expiresAt time.Time) error {
	day := domain.StartOfDay(expiresAt)

	triggers := []struct {
		slot string
		at   time.Time
	}{
		{SlotEvening, time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, day.Location())},
		{SlotMidnight, time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())},
	}

	payload, err := json.Marshal(workers.ReminderPayload{BatchID: batchID})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	now := s.now()
	for _, trigger := range triggers {
		if !trigger.at.After(now) {
			s.logger.DebugContext(ctx, "reminder slot already past, skipping",
				slog.Int64("batch_id", batchID),
				slog.String("slot", trigger.slot),
				slog.Time("trigger_at", trigger.at))
			continue
		}

		name := ReminderTaskName(batchID, trigger.slot)
		if err := s.tasks.Arm(ctx, name, trigger.at, payload); err != nil {
			return fmt.Errorf("failed to schedule %s alert for batch %d: %w", trigger.slot, batchID, err)
		}

		s.logger.InfoContext(ctx, "reminder scheduled",
			slog.Int64("batch_id", batchID),
			slog.String("slot", trigger.slot),
			slog.Time("trigger_at", trigger.at))
	}

	return nil
}

// CancelAlerts cancels both pending reminder tasks for the batch,
// best-effort.
func (s *ReminderScheduler) CancelAlerts(ctx context.Context, batchID int64) error {
	for _, slot := range []string{SlotEvening, SlotMidnight} {
		if err := s.tasks.Cancel(ctx, ReminderTaskName(batchID, slot)); err != nil {
			s.logger.WarnContext(ctx, "failed to cancel reminder",
				slog.Int64("batch_id", batchID),
				slog.String("slot", slot),
				slog.String("error", err.Error()))
		}
	}
	return nil
}
