// internal/workers/export_processor_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	redis_a "github.com/shelfwatch/shelfwatch-be/internal/adapters/redis_adapter"
	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/pkg/logger"
	"github.com/shelfwatch/shelfwatch-be/internal/workers"
	"github.com/shelfwatch/shelfwatch-be/test/helpers"
	"github.com/shelfwatch/shelfwatch-be/test/mocks"
)

func cellValue(t *testing.T, sheet *xlsx.Sheet, row, col int) string {
	t.Helper()
	cell, err := sheet.Cell(row, col)
	require.NoError(t, err)
	return cell.Value
}

func TestExportProcessor_Export(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tr := helpers.SetupTestRedis(t)
	store := redis_a.NewBatchStore(tr.Client, helpers.TestLogger())

	today := domain.StartOfDay(time.Now())
	require.NoError(t, store.Upsert(ctx, *helpers.CreateTestBatch(func(b *domain.Batch) {
		b.ID = 1
		b.QtyCurrent = 7
	})))
	require.NoError(t, store.Upsert(ctx, *helpers.CreateTestBatch(func(b *domain.Batch) {
		b.ID = 2
		b.Name = "Yogurt"
		b.QtyInitial = 5
		b.QtyCurrent = 0
		b.BatchDate = today.AddDate(0, 0, -4)
		b.ExpiresAt = today.AddDate(0, 0, -1)
		b.Status = domain.StatusSoldOut
	})))

	processor := workers.NewExportProcessor(store, dir, helpers.TestLogger())

	path, err := processor.Export(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "job-1")

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	t.Run("one_sheet_per_tab", func(t *testing.T) {
		require.Len(t, file.Sheets, 2)
		assert.Equal(t, "Active", file.Sheets[0].Name)
		assert.Equal(t, "History", file.Sheets[1].Name)
	})

	t.Run("active_sheet_carries_batch_row", func(t *testing.T) {
		sheet := file.Sheet["Active"]
		require.NotNil(t, sheet)

		assert.Equal(t, "ID", cellValue(t, sheet, 0, 0))
		assert.Equal(t, "Name", cellValue(t, sheet, 0, 1))
		assert.Equal(t, "Status", cellValue(t, sheet, 0, 7))

		assert.Equal(t, "1", cellValue(t, sheet, 1, 0))
		assert.Equal(t, "Milk", cellValue(t, sheet, 1, 1))
		assert.Equal(t, "2", cellValue(t, sheet, 1, 4))
		assert.Equal(t, "7", cellValue(t, sheet, 1, 5))
		assert.Equal(t, "ACTIVE", cellValue(t, sheet, 1, 7))
	})

	t.Run("history_sheet_carries_disposed_batch", func(t *testing.T) {
		sheet := file.Sheet["History"]
		require.NotNil(t, sheet)

		assert.Equal(t, "Yogurt", cellValue(t, sheet, 1, 1))
		assert.Equal(t, "0", cellValue(t, sheet, 1, 5))
		assert.Equal(t, "SOLD_OUT", cellValue(t, sheet, 1, 7))
	})
}

func TestExportProcessor_HandleInventoryExport(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("empty_collection_still_produces_workbook", func(t *testing.T) {
		repo := mocks.NewMockBatchRepository(gomock.NewController(t))
		processor := workers.NewExportProcessor(repo, dir, helpers.TestLogger())

		// The handler stamps the job id onto the context it works with.
		repo.EXPECT().
			Active(gomock.Any()).
			DoAndReturn(func(ctx context.Context) []domain.Batch {
				assert.Equal(t, "job-2", ctx.Value(logger.ContextKeyJobID))
				return nil
			})
		repo.EXPECT().History(gomock.Any()).Return(nil)

		payload, err := json.Marshal(workers.ExportPayload{JobID: "job-2"})
		require.NoError(t, err)

		task := asynq.NewTask(workers.TypeInventoryExport, payload)
		require.NoError(t, processor.HandleInventoryExport(ctx, task))

		matches, err := filepath.Glob(filepath.Join(dir, "inventory_*_job-2.xlsx"))
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("malformed_payload_fails_the_task", func(t *testing.T) {
		repo := mocks.NewMockBatchRepository(gomock.NewController(t))
		processor := workers.NewExportProcessor(repo, dir, helpers.TestLogger())

		task := asynq.NewTask(workers.TypeInventoryExport, []byte("{not json"))
		require.Error(t, processor.HandleInventoryExport(ctx, task))
	})
}
