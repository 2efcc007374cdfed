// internal/core/ports/batch_repository.go
package ports

import (
	"context"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
)

// BatchRepository defines the persistence port for the batch collection.
// The collection is owned by the repository; reads return copies, and reads
// fail soft: malformed or missing storage yields an empty result, never an
// error. Writes against an absent identifier are silent no-ops.
type BatchRepository interface {
	// LoadAll returns every batch, ascending by expiration instant.
	LoadAll(ctx context.Context) []domain.Batch
	// Active returns batches with status ACTIVE and stock remaining,
	// ascending by expiration instant.
	Active(ctx context.Context) []domain.Batch
	// History returns the complement of Active, descending by batch date.
	History(ctx context.Context) []domain.Batch
	// FindByID returns the batch or nil.
	FindByID(ctx context.Context, id int64) *domain.Batch
	// Upsert replaces the batch with a matching identifier or appends it.
	Upsert(ctx context.Context, batch domain.Batch) error
	// UpdateQuantity sets the current quantity and, when status is non-nil,
	// the status. Callers clamp the quantity before calling.
	UpdateQuantity(ctx context.Context, id int64, qty int, status *domain.BatchStatus) error
	// SetStatusAndQuantity overwrites both fields unconditionally.
	SetStatusAndQuantity(ctx context.Context, id int64, qty int, status domain.BatchStatus) error
	// DeleteByID removes the batch if present.
	DeleteByID(ctx context.Context, id int64) error
}
