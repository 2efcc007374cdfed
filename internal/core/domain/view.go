// internal/core/domain/view.go
package domain

import (
	"sort"
	"strings"
	"time"
)

// ExpiryFilter represents a predicate over a batch's days remaining
type ExpiryFilter string

// Filter constants
const (
	FilterAll     ExpiryFilter = "ALL"
	FilterExpired ExpiryFilter = "EXPIRED"
	FilterToday   ExpiryFilter = "TODAY"
	FilterNext2   ExpiryFilter = "NEXT_2"
	FilterNext7   ExpiryFilter = "NEXT_7"
)

// Matches reports whether a batch with the given days remaining passes the
// filter. Unknown filters behave like ALL.
func (f ExpiryFilter) Matches(daysLeft int) bool {
	switch f {
	case FilterExpired:
		return daysLeft < 0
	case FilterToday:
		return daysLeft == 0
	case FilterNext2:
		return daysLeft >= 0 && daysLeft <= 2
	case FilterNext7:
		return daysLeft >= 0 && daysLeft <= 7
	default:
		return true
	}
}

// FilterBatches applies the expiry filter and then the free-text search to
// batches, preserving the incoming order. Search matches the product name
// case-insensitively as a substring.
func FilterBatches(batches []Batch, filter ExpiryFilter, search string, now time.Time) []Batch {
	out := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if !filter.Matches(b.DaysRemaining(now)) {
			continue
		}
		out = append(out, b)
	}

	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return out
	}

	matched := out[:0]
	for _, b := range out {
		if strings.Contains(strings.ToLower(b.Name), q) {
			matched = append(matched, b)
		}
	}
	return matched
}

// BatchGroup aggregates the batches sharing one trimmed product name.
type BatchGroup struct {
	Name          string    `json:"name"`
	Batches       []Batch   `json:"batches"`
	TotalQty      int       `json:"total_qty"`
	NearestExpiry time.Time `json:"nearest_expiry"`
}

// GroupByName groups batches by exact trimmed name for the active view.
// Members are ordered ascending by expiration, groups by name with
// case-insensitive ordering of the keys.
func GroupByName(batches []Batch) []BatchGroup {
	byName := make(map[string][]Batch)
	for _, b := range batches {
		key := strings.TrimSpace(b.Name)
		byName[key] = append(byName[key], b)
	}

	groups := make([]BatchGroup, 0, len(byName))
	for name, members := range byName {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].ExpiresAt.Before(members[j].ExpiresAt)
		})

		total := 0
		for _, b := range members {
			total += b.QtyCurrent
		}

		groups = append(groups, BatchGroup{
			Name:          name,
			Batches:       members,
			TotalQty:      total,
			NearestExpiry: members[0].ExpiresAt,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		li, lj := strings.ToLower(groups[i].Name), strings.ToLower(groups[j].Name)
		if li != lj {
			return li < lj
		}
		return groups[i].Name < groups[j].Name
	})

	return groups
}
