// internal/core/ports/notifier.go
package ports

import "context"

// Alert is one user-visible expiry notification. The ID is derived from the
// batch identifier alone, so repeated fires for the same batch collapse into
// a single visible alert slot.
type Alert struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier is the user-visible notification surface.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}
