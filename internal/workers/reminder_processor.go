// internal/workers/reminder_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/hibiken/asynq"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
	"github.com/shelfwatch/shelfwatch-be/internal/pkg/logger"
)

// ReminderProcessor handles deferred expiry-reminder tasks
type ReminderProcessor struct {
	repo     ports.BatchRepository
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewReminderProcessor creates a new reminder processor
func NewReminderProcessor(repo ports.BatchRepository, notifier ports.Notifier, logger *slog.Logger) *ReminderProcessor {
	return &ReminderProcessor{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With(slog.String("processor", "reminder")),
	}
}

// HandleExpiryReminder re-reads the batch at fire time and emits at most one
// notification. State may have changed since arming: a batch that is gone,
// disposed or emptied suppresses the alert and the task still completes
// successfully.
func (p *ReminderProcessor) HandleExpiryReminder(ctx context.Context, t *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if payload.BatchID <= 0 {
		return fmt.Errorf("invalid batch id %d", payload.BatchID)
	}

	ctx = context.WithValue(ctx, logger.ContextKeyBatchID, payload.BatchID)

	batch := p.repo.FindByID(ctx, payload.BatchID)
	if batch == nil {
		p.logger.DebugContext(ctx, "batch gone, reminder suppressed",
			slog.Int64("batch_id", payload.BatchID))
		return nil
	}
	if batch.Status != domain.StatusActive || batch.QtyCurrent <= 0 {
		p.logger.DebugContext(ctx, "batch no longer active, reminder suppressed",
			slog.Int64("batch_id", payload.BatchID),
			slog.String("status", string(batch.Status)),
			slog.Int("qty", batch.QtyCurrent))
		return nil
	}

	alert := ports.Alert{
		ID:    AlertID(batch.ID),
		Title: "Expiration reminder",
		Body:  fmt.Sprintf("%s expires today. Remaining: %d", batch.Name, batch.QtyCurrent),
	}

	if err := p.notifier.Notify(ctx, alert); err != nil {
		return fmt.Errorf("failed to emit notification for batch %d: %w", batch.ID, err)
	}

	p.logger.InfoContext(ctx, "expiry reminder emitted",
		slog.Int64("batch_id", batch.ID),
		slog.String("name", batch.Name),
		slog.Int("qty", batch.QtyCurrent))

	return nil
}

// AlertID derives the notification identity from the batch identifier, so
// both reminder slots of one batch share a single visible alert.
func AlertID(batchID int64) int {
	return int(batchID % math.MaxInt32)
}
