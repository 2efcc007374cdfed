// internal/core/domain/disposition_test.go
package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
)

func TestDisposition_Resolve(t *testing.T) {
	active := func(qty int) domain.Batch {
		return domain.Batch{ID: 1, Name: "Milk", QtyInitial: 10, QtyCurrent: qty,
			Status: domain.StatusActive}
	}

	tests := []struct {
		name        string
		current     domain.Batch
		disposition domain.Disposition
		expected    domain.Outcome
	}{
		{
			name:        "sold_subtracts_delta",
			current:     active(10),
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 3},
			expected:    domain.Outcome{Quantity: 7, Status: domain.StatusActive},
		},
		{
			name:        "sold_to_exactly_zero_forces_sold_out",
			current:     active(10),
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 10},
			expected:    domain.Outcome{Quantity: 0, Status: domain.StatusSoldOut},
		},
		{
			name:        "sold_beyond_stock_clamps_to_zero",
			current:     active(4),
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 9},
			expected:    domain.Outcome{Quantity: 0, Status: domain.StatusSoldOut},
		},
		{
			name:        "removed_subtracts_delta",
			current:     active(10),
			disposition: domain.Disposition{Kind: domain.DispositionRemoved, Amount: 2},
			expected:    domain.Outcome{Quantity: 8, Status: domain.StatusActive},
		},
		{
			name:        "removed_beyond_stock_clamps_to_zero",
			current:     active(1),
			disposition: domain.Disposition{Kind: domain.DispositionRemoved, Amount: 5},
			expected:    domain.Outcome{Quantity: 0, Status: domain.StatusSoldOut},
		},
		{
			name:        "negative_amount_coerces_to_zero",
			current:     active(10),
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: -4},
			expected:    domain.Outcome{Quantity: 10, Status: domain.StatusActive},
		},
		{
			name:        "adjust_sets_absolute_quantity",
			current:     active(10),
			disposition: domain.Disposition{Kind: domain.DispositionAdjust, Amount: 6},
			expected:    domain.Outcome{Quantity: 6, Status: domain.StatusActive},
		},
		{
			name:        "adjust_to_zero_forces_sold_out",
			current:     active(10),
			disposition: domain.Disposition{Kind: domain.DispositionAdjust, Amount: 0},
			expected:    domain.Outcome{Quantity: 0, Status: domain.StatusSoldOut},
		},
		{
			name: "restore_overwrites_status_and_quantity",
			current: domain.Batch{ID: 1, Name: "Milk", QtyInitial: 10, QtyCurrent: 0,
				Status: domain.StatusSoldOut},
			disposition: domain.Disposition{Kind: domain.DispositionRestore, Amount: 5},
			expected:    domain.Outcome{Quantity: 5, Status: domain.StatusActive, Overwrite: true},
		},
		{
			name: "restore_may_exceed_initial_quantity",
			current: domain.Batch{ID: 1, Name: "Milk", QtyInitial: 10, QtyCurrent: 0,
				Status: domain.StatusRemoved},
			disposition: domain.Disposition{Kind: domain.DispositionRestore, Amount: 25},
			expected:    domain.Outcome{Quantity: 25, Status: domain.StatusActive, Overwrite: true},
		},
		{
			name: "restore_to_zero_stays_sold_out",
			current: domain.Batch{ID: 1, Name: "Milk", QtyInitial: 10, QtyCurrent: 0,
				Status: domain.StatusSoldOut},
			disposition: domain.Disposition{Kind: domain.DispositionRestore, Amount: 0},
			expected:    domain.Outcome{Quantity: 0, Status: domain.StatusSoldOut, Overwrite: true},
		},
		{
			name:        "unknown_kind_is_inert",
			current:     active(7),
			disposition: domain.Disposition{Kind: domain.DispositionKind("BOGUS"), Amount: 3},
			expected:    domain.Outcome{Quantity: 7, Status: domain.StatusActive},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.disposition.Resolve(tt.current))
		})
	}
}
