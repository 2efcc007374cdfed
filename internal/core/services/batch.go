// internal/core/services/batch.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
)

// BatchService handles batch lifecycle and the derived inventory views. It
// owns the coupling between mutations and reminder state: every transition
// out of the active state cancels pending alerts, every restore to active
// re-arms them.
type BatchService struct {
	repo      ports.BatchRepository
	reminders ports.ReminderScheduler
	exports   ports.ExportQueue
	logger    *slog.Logger
	now       func() time.Time
}

// Statically assert that *BatchService implements the BatchService port.
var _ ports.BatchService = (*BatchService)(nil)

// NewBatchService creates a new batch service.
func NewBatchService(repo ports.BatchRepository, reminders ports.ReminderScheduler, exports ports.ExportQueue, logger *slog.Logger) *BatchService {
	return &BatchService{
		repo:      repo,
		reminders: reminders,
		exports:   exports,
		logger:    logger.With(slog.String("service", "batch")),
		now:       time.Now,
	}
}

// WithClock overrides the service's time source.
func (s *BatchService) WithClock(now func() time.Time) *BatchService {
	s.now = now
	return s
}

// AddBatch records a new batch and arms its reminders. The add-product rules
// apply: a blank name, a non-positive quantity or a missing expiration date
// rejects the whole action.
func (s *BatchService) AddBatch(ctx context.Context, params ports.AddBatchParams) (*domain.Batch, error) {
	qty := params.Quantity

	batch := domain.Batch{
		Name:       params.Name,
		BatchDate:  params.BatchDate,
		QtyInitial: qty,
		QtyCurrent: qty,
		ExpiresAt:  params.ExpiresAt,
		Status:     domain.StatusActive,
	}
	if !params.ExpiresAt.IsZero() {
		batch.ExpiresAt = domain.StartOfDay(params.ExpiresAt)
	}
	if !params.BatchDate.IsZero() {
		batch.BatchDate = domain.StartOfDay(params.BatchDate)
	}

	if err := batch.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	batch.PrepareForStorage(s.now())

	if err := s.repo.Upsert(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}

	if err := s.reminders.ScheduleTwoAlerts(ctx, batch.ID, batch.ExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to schedule reminders: %w", err)
	}

	s.logger.InfoContext(ctx, "batch added",
		slog.Int64("batch_id", batch.ID),
		slog.String("name", batch.Name),
		slog.Int("qty", batch.QtyCurrent),
		slog.Time("expires_at", batch.ExpiresAt))

	return &batch, nil
}

// ApplyDisposition resolves a SOLD/REMOVED/ADJUST/RESTORE dialog against the
// batch's current state and persists the outcome. An unknown identifier is a
// silent no-op.
func (s *BatchService) ApplyDisposition(ctx context.Context, id int64, d domain.Disposition) error {
	batch := s.repo.FindByID(ctx, id)
	if batch == nil {
		s.logger.DebugContext(ctx, "disposition for unknown batch ignored",
			slog.Int64("batch_id", id),
			slog.String("kind", string(d.Kind)))
		return nil
	}

	outcome := d.Resolve(*batch)

	var err error
	if outcome.Overwrite {
		err = s.repo.SetStatusAndQuantity(ctx, id, outcome.Quantity, outcome.Status)
	} else {
		status := outcome.Status
		err = s.repo.UpdateQuantity(ctx, id, outcome.Quantity, &status)
	}
	if err != nil {
		return fmt.Errorf("failed to apply %s to batch %d: %w", d.Kind, id, err)
	}

	if outcome.Status == domain.StatusActive && outcome.Overwrite {
		// Restore back to active: the batch is trackable again.
		if err := s.reminders.ScheduleTwoAlerts(ctx, id, batch.ExpiresAt); err != nil {
			return fmt.Errorf("failed to re-arm reminders for batch %d: %w", id, err)
		}
	} else if outcome.Status != domain.StatusActive {
		if err := s.reminders.CancelAlerts(ctx, id); err != nil {
			return fmt.Errorf("failed to cancel reminders for batch %d: %w", id, err)
		}
	}

	s.logger.InfoContext(ctx, "disposition applied",
		slog.Int64("batch_id", id),
		slog.String("kind", string(d.Kind)),
		slog.Int("qty", outcome.Quantity),
		slog.String("status", string(outcome.Status)))

	return nil
}

// DeleteBatch removes a history record and its pending reminders. Active
// batches have no deletion path; dispose of them first.
func (s *BatchService) DeleteBatch(ctx context.Context, id int64) error {
	batch := s.repo.FindByID(ctx, id)
	if batch == nil {
		return nil
	}
	if batch.IsActive() {
		return fmt.Errorf("batch %d is active and cannot be deleted", id)
	}

	if err := s.reminders.CancelAlerts(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel reminders for batch %d: %w", id, err)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete batch %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "batch deleted", slog.Int64("batch_id", id))
	return nil
}

// Active returns the active view, ascending by expiration.
func (s *BatchService) Active(ctx context.Context) []domain.Batch {
	return s.repo.Active(ctx)
}

// History returns the history view, descending by batch date.
func (s *BatchService) History(ctx context.Context) []domain.Batch {
	return s.repo.History(ctx)
}

// List renders one tab: expiry filter, then search, then name grouping for
// the active tab. Tab counts are taken before filtering.
func (s *BatchService) List(ctx context.Context, params ports.ListParams) (*ports.ListResult, error) {
	active := s.repo.Active(ctx)
	history := s.repo.History(ctx)

	result := &ports.ListResult{
		ActiveCount:  len(active),
		HistoryCount: len(history),
	}

	base := active
	if params.Tab == ports.TabHistory {
		base = history
	}

	filtered := domain.FilterBatches(base, params.Filter, params.Search, s.now())

	if params.Tab == ports.TabHistory {
		result.Batches = filtered
	} else {
		result.Groups = domain.GroupByName(filtered)
	}

	return result, nil
}

// ExportInventory queues a background export of the full collection.
func (s *BatchService) ExportInventory(ctx context.Context) error {
	if err := s.exports.EnqueueExport(ctx); err != nil {
		return fmt.Errorf("failed to enqueue inventory export: %w", err)
	}
	s.logger.InfoContext(ctx, "inventory export queued")
	return nil
}
