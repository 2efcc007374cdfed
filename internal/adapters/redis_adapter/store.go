// internal/adapters/redis_adapter/store.go
package redis_a

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
)

// DefaultBatchesKey is the single blob the collection is persisted under.
const DefaultBatchesKey = "shelfwatch:batches"

// BatchStore persists the whole batch collection as one JSON blob in Redis.
// Every write serializes and stores the full collection; there is no partial
// update and no concurrent-writer protection, per the single-writer model.
type BatchStore struct {
	client *redis.Client
	key    string
	logger *slog.Logger
	now    func() time.Time
}

// Statically assert that *BatchStore implements the BatchRepository port.
var _ ports.BatchRepository = (*BatchStore)(nil)

// NewBatchStore creates a batch store over the given Redis client.
func NewBatchStore(client *redis.Client, logger *slog.Logger) *BatchStore {
	return &BatchStore{
		client: client,
		key:    DefaultBatchesKey,
		logger: logger.With(slog.String("component", "batch_store")),
		now:    time.Now,
	}
}

// LoadAll returns every batch, ascending by expiration instant. Reads fail
// soft: a missing key, a Redis error or a malformed blob all yield an empty
// collection.
func (s *BatchStore) LoadAll(ctx context.Context) []domain.Batch {
	batches, err := s.load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read batch collection, treating as empty",
			slog.String("key", s.key),
			slog.String("error", err.Error()))
		return []domain.Batch{}
	}
	return batches
}

// load reads and decodes the collection. A missing key or a malformed blob
// yields an empty collection; a transport-level Redis error is returned so
// mutation paths can refuse to write over a collection they could not read.
func (s *BatchStore) load(ctx context.Context) ([]domain.Batch, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []domain.Batch{}, nil
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var batches []domain.Batch
	if err := json.Unmarshal(data, &batches); err != nil {
		s.logger.WarnContext(ctx, "malformed batch collection, treating as empty",
			slog.String("key", s.key),
			slog.String("error", err.Error()))
		return []domain.Batch{}, nil
	}

	now := s.now()
	for i := range batches {
		batches[i].NormalizeLoaded(now)
	}

	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].ExpiresAt.Before(batches[j].ExpiresAt)
	})

	return batches, nil
}

// Active returns batches with status ACTIVE and stock remaining, ascending
// by expiration instant.
func (s *BatchStore) Active(ctx context.Context) []domain.Batch {
	all := s.LoadAll(ctx)
	active := make([]domain.Batch, 0, len(all))
	for _, b := range all {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	return active
}

// History returns the complement of Active, descending by batch date.
func (s *BatchStore) History(ctx context.Context) []domain.Batch {
	all := s.LoadAll(ctx)
	history := make([]domain.Batch, 0, len(all))
	for _, b := range all {
		if !b.IsActive() {
			history = append(history, b)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].BatchDate.After(history[j].BatchDate)
	})

	return history
}

// FindByID returns a copy of the batch, or nil when absent.
func (s *BatchStore) FindByID(ctx context.Context, id int64) *domain.Batch {
	for _, b := range s.LoadAll(ctx) {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

// Upsert replaces the batch with a matching identifier or appends it.
func (s *BatchStore) Upsert(ctx context.Context, batch domain.Batch) error {
	batches, err := s.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range batches {
		if batches[i].ID == batch.ID {
			batches[i] = batch
			replaced = true
			break
		}
	}
	if !replaced {
		batches = append(batches, batch)
	}

	return s.saveAll(ctx, batches)
}

// UpdateQuantity sets the current quantity and optionally the status.
// A no-op when the identifier is absent; the caller clamps the quantity.
func (s *BatchStore) UpdateQuantity(ctx context.Context, id int64, qty int, status *domain.BatchStatus) error {
	batches, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range batches {
		if batches[i].ID != id {
			continue
		}
		batches[i].QtyCurrent = qty
		if status != nil {
			batches[i].Status = *status
		}
		return s.saveAll(ctx, batches)
	}

	s.logger.DebugContext(ctx, "update for unknown batch ignored", slog.Int64("batch_id", id))
	return nil
}

// SetStatusAndQuantity overwrites both fields unconditionally; used by
// restore. A no-op when the identifier is absent.
func (s *BatchStore) SetStatusAndQuantity(ctx context.Context, id int64, qty int, status domain.BatchStatus) error {
	batches, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range batches {
		if batches[i].ID != id {
			continue
		}
		batches[i].QtyCurrent = qty
		batches[i].Status = status
		return s.saveAll(ctx, batches)
	}

	s.logger.DebugContext(ctx, "restore for unknown batch ignored", slog.Int64("batch_id", id))
	return nil
}

// DeleteByID removes the batch if present.
func (s *BatchStore) DeleteByID(ctx context.Context, id int64) error {
	batches, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range batches {
		if batches[i].ID == id {
			batches = append(batches[:i], batches[i+1:]...)
			return s.saveAll(ctx, batches)
		}
	}
	return nil
}

func (s *BatchStore) saveAll(ctx context.Context, batches []domain.Batch) error {
	data, err := json.Marshal(batches)
	if err != nil {
		return fmt.Errorf("marshal batch collection: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist batch collection",
			slog.String("key", s.key),
			slog.String("error", err.Error()))
		return fmt.Errorf("redis set error: %w", err)
	}

	s.logger.DebugContext(ctx, "batch collection persisted",
		slog.String("key", s.key),
		slog.Int("count", len(batches)))

	return nil
}
