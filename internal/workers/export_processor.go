// internal/workers/export_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
	"github.com/shelfwatch/shelfwatch-be/internal/pkg/logger"
)

// ExportProcessor renders the batch collection into an .xlsx workbook on the
// local export directory, one sheet per tab.
type ExportProcessor struct {
	repo   ports.BatchRepository
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(repo ports.BatchRepository, dir string, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		repo:   repo,
		dir:    dir,
		logger: logger.With(slog.String("processor", "export")),
		now:    time.Now,
	}
}

// WithClock overrides the processor's time source.
func (p *ExportProcessor) WithClock(now func() time.Time) *ExportProcessor {
	p.now = now
	return p
}

// HandleInventoryExport processes one export job.
func (p *ExportProcessor) HandleInventoryExport(ctx context.Context, t *asynq.Task) error {
	var payload ExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	ctx = context.WithValue(ctx, logger.ContextKeyJobID, payload.JobID)

	p.logger.InfoContext(ctx, "exporting inventory", slog.String("job_id", payload.JobID))

	path, err := p.Export(ctx, payload.JobID)
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "inventory export completed",
		slog.String("job_id", payload.JobID),
		slog.String("path", path))

	return nil
}

// Export writes the workbook and returns its path.
func (p *ExportProcessor) Export(ctx context.Context, jobID string) (string, error) {
	file := xlsx.NewFile()

	if err := p.addSheet(file, "Active", p.repo.Active(ctx)); err != nil {
		return "", err
	}
	if err := p.addSheet(file, "History", p.repo.History(ctx)); err != nil {
		return "", err
	}

	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := fmt.Sprintf("inventory_%s_%s.xlsx", p.now().Format("20060102_150405"), jobID)
	path := filepath.Join(p.dir, name)
	if err := file.Save(path); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}

	return path, nil
}

func (p *ExportProcessor) addSheet(file *xlsx.File, name string, batches []domain.Batch) error {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}

	headers := []string{"ID", "Name", "Batch Date", "Expires", "Days Left", "Qty Current", "Qty Initial", "Status"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	now := p.now()
	for _, b := range batches {
		row := sheet.AddRow()
		for _, value := range []string{
			strconv.FormatInt(b.ID, 10),
			b.Name,
			b.BatchDate.Format("2006-01-02"),
			b.ExpiresAt.Format("2006-01-02"),
			strconv.Itoa(b.DaysRemaining(now)),
			strconv.Itoa(b.QtyCurrent),
			strconv.Itoa(b.QtyInitial),
			string(b.Status),
		} {
			row.AddCell().Value = value
		}
	}

	for i := range headers {
		sheet.SetColWidth(i, i, 15)
	}

	return nil
}
