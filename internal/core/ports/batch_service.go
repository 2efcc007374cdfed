// internal/core/ports/batch_service.go
package ports

import (
	"context"
	"time"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
)

// BatchService defines the application service port consumed by the
// presentation layer.
type BatchService interface {
	AddBatch(ctx context.Context, params AddBatchParams) (*domain.Batch, error)
	ApplyDisposition(ctx context.Context, id int64, d domain.Disposition) error
	DeleteBatch(ctx context.Context, id int64) error
	Active(ctx context.Context) []domain.Batch
	History(ctx context.Context) []domain.Batch
	List(ctx context.Context, params ListParams) (*ListResult, error)
	ExportInventory(ctx context.Context) error
}

// AddBatchParams holds the add-product form fields. BatchDate is optional
// and defaults to today.
type AddBatchParams struct {
	Name      string
	Quantity  int
	BatchDate time.Time
	ExpiresAt time.Time
}

// Tab selects which derived view a listing is built from
type Tab string

// Tab constants
const (
	TabActive  Tab = "active"
	TabHistory Tab = "history"
)

// ListParams holds parameters for a filtered listing
type ListParams struct {
	Tab    Tab
	Filter domain.ExpiryFilter
	Search string
}

// ListResult holds one rendered tab: the active tab is grouped by name,
// the history tab lists batches individually. Counts are taken before
// filter and search are applied.
type ListResult struct {
	Groups       []domain.BatchGroup `json:"groups,omitempty"`
	Batches      []domain.Batch      `json:"batches,omitempty"`
	ActiveCount  int                 `json:"active_count"`
	HistoryCount int                 `json:"history_count"`
}
