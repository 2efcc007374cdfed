// internal/core/services/batch_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
	"github.com/shelfwatch/shelfwatch-be/internal/core/services"
	"github.com/shelfwatch/shelfwatch-be/test/helpers"
	"github.com/shelfwatch/shelfwatch-be/test/mocks"
)

type serviceMocks struct {
	repo      *mocks.MockBatchRepository
	reminders *mocks.MockReminderScheduler
	exports   *mocks.MockExportQueue
}

func newBatchService(t *testing.T, now time.Time) (*services.BatchService, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:      mocks.NewMockBatchRepository(ctrl),
		reminders: mocks.NewMockReminderScheduler(ctrl),
		exports:   mocks.NewMockExportQueue(ctrl),
	}

	svc := services.NewBatchService(m.repo, m.reminders, m.exports, helpers.TestLogger()).
		WithClock(func() time.Time { return now })

	return svc, m
}

func TestBatchService_AddBatch(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)
	expiry := time.Date(2025, 3, 13, 16, 45, 0, 0, time.Local)

	tests := []struct {
		name          string
		params        ports.AddBatchParams
		setupMocks    func(serviceMocks)
		expectedError bool
		errorContains string
		verify        func(*testing.T, *domain.Batch)
	}{
		{
			name:   "saves_batch_and_arms_reminders",
			params: ports.AddBatchParams{Name: "Milk", Quantity: 10, ExpiresAt: expiry},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, b domain.Batch) error {
						assert.Equal(t, "Milk", b.Name)
						assert.Equal(t, 10, b.QtyInitial)
						assert.Equal(t, 10, b.QtyCurrent)
						assert.Equal(t, domain.StatusActive, b.Status)
						assert.Equal(t, domain.StartOfDay(expiry), b.ExpiresAt)
						assert.Equal(t, domain.StartOfDay(now), b.BatchDate)
						return nil
					})
				m.reminders.EXPECT().
					ScheduleTwoAlerts(gomock.Any(), gomock.Any(), domain.StartOfDay(expiry)).
					Return(nil)
			},
			verify: func(t *testing.T, b *domain.Batch) {
				assert.NotZero(t, b.ID)
			},
		},
		{
			name: "normalizes_explicit_batch_date",
			params: ports.AddBatchParams{Name: "Milk", Quantity: 3,
				BatchDate: time.Date(2025, 3, 9, 20, 15, 0, 0, time.Local),
				ExpiresAt: expiry},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, b domain.Batch) error {
						assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), b.BatchDate)
						return nil
					})
				m.reminders.EXPECT().
					ScheduleTwoAlerts(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:          "rejects_blank_name",
			params:        ports.AddBatchParams{Name: "  ", Quantity: 10, ExpiresAt: expiry},
			setupMocks:    func(m serviceMocks) {},
			expectedError: true,
			errorContains: "name is required",
		},
		{
			name:          "rejects_non_positive_quantity",
			params:        ports.AddBatchParams{Name: "Milk", Quantity: 0, ExpiresAt: expiry},
			setupMocks:    func(m serviceMocks) {},
			expectedError: true,
			errorContains: "quantity must be positive",
		},
		{
			name:          "rejects_missing_expiration",
			params:        ports.AddBatchParams{Name: "Milk", Quantity: 10},
			setupMocks:    func(m serviceMocks) {},
			expectedError: true,
			errorContains: "expiration date is required",
		},
		{
			name:   "propagates_storage_failure",
			params: ports.AddBatchParams{Name: "Milk", Quantity: 10, ExpiresAt: expiry},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("redis unavailable"))
			},
			expectedError: true,
			errorContains: "failed to save batch",
		},
		{
			name:   "propagates_scheduling_failure",
			params: ports.AddBatchParams{Name: "Milk", Quantity: 10, ExpiresAt: expiry},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				m.reminders.EXPECT().
					ScheduleTwoAlerts(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("queue down"))
			},
			expectedError: true,
			errorContains: "failed to schedule reminders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBatchService(t, now)
			tt.setupMocks(m)

			batch, err := svc.AddBatch(context.Background(), tt.params)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, batch)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, batch)
			if tt.verify != nil {
				tt.verify(t, batch)
			}
		})
	}
}

func TestBatchService_ApplyDisposition(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)
	expiry := domain.StartOfDay(now).AddDate(0, 0, 2)

	milk := domain.Batch{
		ID:         1,
		Name:       "Milk",
		BatchDate:  domain.StartOfDay(now),
		QtyInitial: 10,
		QtyCurrent: 10,
		ExpiresAt:  expiry,
		Status:     domain.StatusActive,
	}

	statusPtr := func(s domain.BatchStatus) gomock.Matcher {
		return gomock.Cond(func(v any) bool {
			p, ok := v.(*domain.BatchStatus)
			return ok && p != nil && *p == s
		})
	}

	tests := []struct {
		name          string
		disposition   domain.Disposition
		setupMocks    func(serviceMocks)
		expectedError bool
	}{
		{
			name:        "partial_sale_keeps_reminders",
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 4},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&milk)
				m.repo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(1), 6, statusPtr(domain.StatusActive)).
					Return(nil)
			},
		},
		{
			name:        "sale_to_zero_marks_sold_out_and_cancels",
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 10},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&milk)
				m.repo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(1), 0, statusPtr(domain.StatusSoldOut)).
					Return(nil)
				m.reminders.EXPECT().CancelAlerts(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name:        "over_sale_clamps_to_zero",
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 25},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&milk)
				m.repo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(1), 0, statusPtr(domain.StatusSoldOut)).
					Return(nil)
				m.reminders.EXPECT().CancelAlerts(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name:        "restore_overwrites_and_rearms",
			disposition: domain.Disposition{Kind: domain.DispositionRestore, Amount: 5},
			setupMocks: func(m serviceMocks) {
				soldOut := milk
				soldOut.QtyCurrent = 0
				soldOut.Status = domain.StatusSoldOut

				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&soldOut)
				m.repo.EXPECT().
					SetStatusAndQuantity(gomock.Any(), int64(1), 5, domain.StatusActive).
					Return(nil)
				m.reminders.EXPECT().
					ScheduleTwoAlerts(gomock.Any(), int64(1), expiry).
					Return(nil)
			},
		},
		{
			name:        "restore_to_zero_stays_sold_out",
			disposition: domain.Disposition{Kind: domain.DispositionRestore, Amount: 0},
			setupMocks: func(m serviceMocks) {
				soldOut := milk
				soldOut.QtyCurrent = 0
				soldOut.Status = domain.StatusSoldOut

				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&soldOut)
				m.repo.EXPECT().
					SetStatusAndQuantity(gomock.Any(), int64(1), 0, domain.StatusSoldOut).
					Return(nil)
				m.reminders.EXPECT().CancelAlerts(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name:        "unknown_batch_is_silent_noop",
			disposition: domain.Disposition{Kind: domain.DispositionSold, Amount: 1},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(nil)
			},
		},
		{
			name:        "storage_failure_propagates",
			disposition: domain.Disposition{Kind: domain.DispositionAdjust, Amount: 2},
			setupMocks: func(m serviceMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&milk)
				m.repo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(1), 2, gomock.Any()).
					Return(errors.New("redis unavailable"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newBatchService(t, now)
			tt.setupMocks(m)

			err := svc.ApplyDisposition(context.Background(), 1, tt.disposition)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBatchService_DeleteBatch(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)

	t.Run("deletes_history_record_and_cancels_reminders", func(t *testing.T) {
		svc, m := newBatchService(t, now)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&domain.Batch{
			ID: 7, Name: "Milk", Status: domain.StatusSoldOut, QtyCurrent: 0,
		})
		m.reminders.EXPECT().CancelAlerts(gomock.Any(), int64(7)).Return(nil)
		m.repo.EXPECT().DeleteByID(gomock.Any(), int64(7)).Return(nil)

		require.NoError(t, svc.DeleteBatch(context.Background(), 7))
	})

	t.Run("refuses_to_delete_active_batch", func(t *testing.T) {
		svc, m := newBatchService(t, now)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&domain.Batch{
			ID: 7, Name: "Milk", Status: domain.StatusActive, QtyCurrent: 3,
		})

		err := svc.DeleteBatch(context.Background(), 7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be deleted")
	})

	t.Run("unknown_batch_is_noop", func(t *testing.T) {
		svc, m := newBatchService(t, now)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil)

		require.NoError(t, svc.DeleteBatch(context.Background(), 7))
	})
}

func TestBatchService_List(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)
	day := func(offset int) time.Time {
		return domain.StartOfDay(now).AddDate(0, 0, offset)
	}

	active := []domain.Batch{
		{ID: 1, Name: "Milk", QtyCurrent: 4, ExpiresAt: day(1), Status: domain.StatusActive},
		{ID: 2, Name: "Milk", QtyCurrent: 6, ExpiresAt: day(4), Status: domain.StatusActive},
		{ID: 3, Name: "Yogurt", QtyCurrent: 2, ExpiresAt: day(9), Status: domain.StatusActive},
	}
	history := []domain.Batch{
		{ID: 4, Name: "Butter", QtyCurrent: 0, BatchDate: day(-3), ExpiresAt: day(-1),
			Status: domain.StatusSoldOut},
	}

	t.Run("active_tab_groups_by_name", func(t *testing.T) {
		svc, m := newBatchService(t, now)
		m.repo.EXPECT().Active(gomock.Any()).Return(active)
		m.repo.EXPECT().History(gomock.Any()).Return(history)

		result, err := svc.List(context.Background(), ports.ListParams{
			Tab:    ports.TabActive,
			Filter: domain.FilterAll,
		})
		require.NoError(t, err)

		assert.Equal(t, 3, result.ActiveCount)
		assert.Equal(t, 1, result.HistoryCount)
		require.Len(t, result.Groups, 2)
		assert.Equal(t, "Milk", result.Groups[0].Name)
		assert.Equal(t, 10, result.Groups[0].TotalQty)
		assert.Empty(t, result.Batches)
	})

	t.Run("counts_are_taken_before_filtering", func(t *testing.T) {
		svc, m := newBatchService(t, now)
		m.repo.EXPECT().Active(gomock.Any()).Return(active)
		m.repo.EXPECT().History(gomock.Any()).Return(history)

		result, err := svc.List(context.Background(), ports.ListParams{
			Tab:    ports.TabActive,
			Filter: domain.FilterNext2,
		})
		require.NoError(t, err)

		assert.Equal(t, 3, result.ActiveCount)
		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Milk", result.Groups[0].Name)
		assert.Equal(t, 4, result.Groups[0].TotalQty)
	})

	t.Run("history_tab_lists_batches_ungrouped", func(t *testing.T) {
		svc, m := newBatchService(t, now)
		m.repo.EXPECT().Active(gomock.Any()).Return(active)
		m.repo.EXPECT().History(gomock.Any()).Return(history)

		result, err := svc.List(context.Background(), ports.ListParams{
			Tab:    ports.TabHistory,
			Filter: domain.FilterAll,
		})
		require.NoError(t, err)

		assert.Empty(t, result.Groups)
		require.Len(t, result.Batches, 1)
		assert.Equal(t, int64(4), result.Batches[0].ID)
	})

	t.Run("search_narrows_the_active_tab", func(t *testing.T) {
		svc, m := newBatchService(t, now)
		m.repo.EXPECT().Active(gomock.Any()).Return(active)
		m.repo.EXPECT().History(gomock.Any()).Return(history)

		result, err := svc.List(context.Background(), ports.ListParams{
			Tab:    ports.TabActive,
			Filter: domain.FilterAll,
			Search: "yog",
		})
		require.NoError(t, err)

		require.Len(t, result.Groups, 1)
		assert.Equal(t, "Yogurt", result.Groups[0].Name)
	})
}

func TestBatchService_ExportInventory(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)

	t.Run("queues_export", func(t *testing.T) {
		svc, m := newBatchService(t, now)
		m.exports.EXPECT().EnqueueExport(gomock.Any()).Return(nil)

		require.NoError(t, svc.ExportInventory(context.Background()))
	})

	t.Run("propagates_queue_failure", func(t *testing.T) {
		svc, m := newBatchService(t, now)
		m.exports.EXPECT().EnqueueExport(gomock.Any()).Return(errors.New("queue down"))

		err := svc.ExportInventory(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to enqueue")
	})
}

// End to end through the service with mocks: a fresh batch sold down to zero
// leaves the active view and loses its pending reminders.
func TestBatchService_SellOutLifecycle(t *testing.T) {
	now := time.Date(2025, 3, 11, 10, 0, 0, 0, time.Local)
	expiry := domain.StartOfDay(now).AddDate(0, 0, 2)

	svc, m := newBatchService(t, now)

	var stored domain.Batch
	m.repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, b domain.Batch) error {
			stored = b
			return nil
		})
	m.reminders.EXPECT().
		ScheduleTwoAlerts(gomock.Any(), gomock.Any(), expiry).
		Return(nil)

	batch, err := svc.AddBatch(context.Background(), ports.AddBatchParams{
		Name: "Milk", Quantity: 10, ExpiresAt: expiry,
	})
	require.NoError(t, err)

	m.repo.EXPECT().FindByID(gomock.Any(), batch.ID).Return(&stored)
	m.repo.EXPECT().
		UpdateQuantity(gomock.Any(), batch.ID, 0, gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, qty int, status *domain.BatchStatus) error {
			require.NotNil(t, status)
			assert.Equal(t, domain.StatusSoldOut, *status)
			return nil
		})
	m.reminders.EXPECT().CancelAlerts(gomock.Any(), batch.ID).Return(nil)

	err = svc.ApplyDisposition(context.Background(), batch.ID,
		domain.Disposition{Kind: domain.DispositionSold, Amount: 10})
	require.NoError(t, err)
}
