// internal/core/domain/batch.go
package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// BatchStatus represents the lifecycle status of a batch
type BatchStatus string

// Status constants
const (
	StatusActive  BatchStatus = "ACTIVE"
	StatusSoldOut BatchStatus = "SOLD_OUT"
	StatusRemoved BatchStatus = "REMOVED"
)

// Batch represents one recorded unit of perishable inventory with its own
// expiration and quantity tracking.
type Batch struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	BatchDate  time.Time   `json:"batch_date"`
	QtyInitial int         `json:"qty_initial"`
	QtyCurrent int         `json:"qty_current"`
	ExpiresAt  time.Time   `json:"expires_at"`
	Status     BatchStatus `json:"status,omitempty"`
}

// Validate performs domain validation on the batch
func (b *Batch) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if b.QtyInitial <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if b.QtyCurrent < 0 {
		return fmt.Errorf("current quantity cannot be negative")
	}
	if b.ExpiresAt.IsZero() {
		return fmt.Errorf("expiration date is required")
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
	return nil
}

// PrepareForStorage assigns an identifier and fills defaults before the
// batch is persisted for the first time.
func (b *Batch) PrepareForStorage(now time.Time) {
	if b.ID == 0 {
		b.ID = NewBatchID(now)
	}
	b.Name = strings.TrimSpace(b.Name)
	if b.BatchDate.IsZero() {
		b.BatchDate = StartOfDay(now)
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
}

// NormalizeLoaded applies optional-field defaults to a batch decoded from
// storage: a missing batch date becomes "now", a missing status ACTIVE.
func (b *Batch) NormalizeLoaded(now time.Time) {
	if b.BatchDate.IsZero() {
		b.BatchDate = now
	}
	if b.Status == "" {
		b.Status = StatusActive
	}
}

// IsActive reports whether the batch is trackable and eligible for
// reminders: status ACTIVE with stock remaining.
func (b *Batch) IsActive() bool {
	return b.Status == StatusActive && b.QtyCurrent > 0
}

// DaysRemaining returns the whole-day calendar distance from now to the
// expiration day in local time. A batch expiring today yields 0 at any
// wall-clock hour; yesterday yields -1.
func (b *Batch) DaysRemaining(now time.Time) int {
	return daysBetween(StartOfDay(now), StartOfDay(b.ExpiresAt))
}

// NewBatchID derives a fresh batch identifier: unix milliseconds at creation
// plus a small random jitter, unique enough for a single-writer collection.
func NewBatchID(now time.Time) int64 {
	return now.UnixMilli() + rand.Int64N(999)
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	lt := t.Local()
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, lt.Location())
}

// daysBetween counts calendar days from one local midnight to another.
// Rounding absorbs the odd-length days around DST transitions.
func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
