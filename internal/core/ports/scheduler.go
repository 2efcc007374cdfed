// internal/core/ports/scheduler.go
package ports

import (
	"context"
	"time"
)

// TaskScheduler is the durable deferred-task capability: one-shot tasks keyed
// by a unique name, surviving process restarts. Arming a name already in use
// replaces the pending task; cancelling an unknown name is a no-op.
type TaskScheduler interface {
	Arm(ctx context.Context, name string, processAt time.Time, payload []byte) error
	Cancel(ctx context.Context, name string) error
}

// ReminderScheduler computes and arms the two reminder slots per batch.
type ReminderScheduler interface {
	// ScheduleTwoAlerts arms the 18:00 expiration-day and 00:00 next-day
	// tasks for the batch, skipping any trigger not strictly in the future.
	ScheduleTwoAlerts(ctx context.Context, batchID int64, expiresAt time.Time) error
	// CancelAlerts best-effort cancels both pending slots for the batch.
	CancelAlerts(ctx context.Context, batchID int64) error
}

// ExportQueue accepts background inventory-export requests.
type ExportQueue interface {
	EnqueueExport(ctx context.Context) error
}
