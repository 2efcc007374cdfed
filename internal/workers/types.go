// internal/workers/types.go
package workers

// Task type names registered with the worker
const (
	TypeExpiryReminder  = "reminder:expiry"
	TypeInventoryExport = "inventory:export"
)

// ReminderPayload carries the batch a deferred reminder task re-checks at
// fire time.
type ReminderPayload struct {
	BatchID int64 `json:"batch_id"`
}

// ExportPayload identifies one inventory-export job.
type ExportPayload struct {
	JobID       string `json:"job_id"`
	RequestedAt string `json:"requested_at"`
}
