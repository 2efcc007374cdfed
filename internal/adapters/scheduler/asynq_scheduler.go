// internal/adapters/scheduler/asynq_scheduler.go
package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
	"github.com/shelfwatch/shelfwatch-be/internal/workers"
)

// Queue names. Reminders outrank exports so alert delivery is never starved
// by a long export.
const (
	QueueReminders = "reminders"
	QueueLow       = "low"
)

// AsynqScheduler implements the durable deferred-task runner on asynq.
// Task names map to asynq task IDs; tasks live in Redis and survive process
// restarts.
type AsynqScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	logger    *slog.Logger
	retention time.Duration
}

// Statically assert the implemented ports.
var (
	_ ports.TaskScheduler = (*AsynqScheduler)(nil)
	_ ports.ExportQueue   = (*AsynqScheduler)(nil)
)

// NewAsynqScheduler creates a scheduler over the given Redis connection.
func NewAsynqScheduler(opt asynq.RedisClientOpt, logger *slog.Logger) *AsynqScheduler {
	return &AsynqScheduler{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
		logger:    logger.With(slog.String("component", "scheduler")),
		retention: 24 * time.Hour,
	}
}

// Arm registers a one-shot expiry-reminder task under the given unique name,
// to run at processAt. A pending task with the same name is replaced: asynq's
// task IDs reject duplicates, so the prior task is dropped first.
func (s *AsynqScheduler) Arm(ctx context.Context, name string, processAt time.Time, payload []byte) error {
	if err := s.dropPending(name); err != nil {
		return err
	}

	task := asynq.NewTask(workers.TypeExpiryReminder, payload)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(processAt),
		asynq.TaskID(name),
		asynq.Queue(QueueReminders),
		asynq.MaxRetry(3),
		asynq.Retention(s.retention))
	if err != nil {
		return fmt.Errorf("failed to arm task %s: %w", name, err)
	}

	s.logger.DebugContext(ctx, "reminder task armed",
		slog.String("task_id", info.ID),
		slog.Time("process_at", processAt))

	return nil
}

// Cancel drops the pending task with the given name; unknown names are a
// no-op. A task that has already fired is unaffected.
func (s *AsynqScheduler) Cancel(ctx context.Context, name string) error {
	if err := s.dropPending(name); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "reminder task cancelled", slog.String("task_id", name))
	return nil
}

// EnqueueExport queues a background inventory export on the low queue.
func (s *AsynqScheduler) EnqueueExport(ctx context.Context) error {
	payload, err := json.Marshal(workers.ExportPayload{
		JobID:       uuid.New().String(),
		RequestedAt: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal export payload: %w", err)
	}

	task := asynq.NewTask(workers.TypeInventoryExport, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.Queue(QueueLow), asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue export: %w", err)
	}
	return nil
}

// Close releases the underlying client connections.
func (s *AsynqScheduler) Close() error {
	if err := s.client.Close(); err != nil {
		return err
	}
	return s.inspector.Close()
}

func (s *AsynqScheduler) dropPending(name string) error {
	err := s.inspector.DeleteTask(QueueReminders, name)
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to drop pending task %s: %w", name, err)
}
