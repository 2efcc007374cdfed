// internal/core/services/reminder_scheduler_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shelfwatch/shelfwatch-be/internal/core/services"
	"github.com/shelfwatch/shelfwatch-be/test/helpers"
	"github.com/shelfwatch/shelfwatch-be/test/mocks"
)

func TestReminderTaskName(t *testing.T) {
	assert.Equal(t, "expiry:42:18", services.ReminderTaskName(42, services.SlotEvening))
	assert.Equal(t, "expiry:42:24", services.ReminderTaskName(42, services.SlotMidnight))
}

func TestReminderScheduler_ScheduleTwoAlerts(t *testing.T) {
	const batchID = int64(1700000000123)

	// Expiration day, referenced from a fixed local morning.
	expiry := time.Date(2025, 3, 14, 11, 30, 0, 0, time.Local)
	evening := time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local)
	midnight := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name          string
		now           time.Time
		setupMocks    func(*mocks.MockTaskScheduler)
		expectedError bool
	}{
		{
			name: "arms_both_slots_when_both_are_future",
			now:  time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local),
			setupMocks: func(m *mocks.MockTaskScheduler) {
				m.EXPECT().
					Arm(gomock.Any(), "expiry:1700000000123:18", evening, gomock.Any()).
					Return(nil)
				m.EXPECT().
					Arm(gomock.Any(), "expiry:1700000000123:24", midnight, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "skips_evening_slot_already_past",
			now:  time.Date(2025, 3, 14, 19, 0, 0, 0, time.Local),
			setupMocks: func(m *mocks.MockTaskScheduler) {
				m.EXPECT().
					Arm(gomock.Any(), "expiry:1700000000123:24", midnight, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:       "skips_both_slots_when_expiry_fully_past",
			now:        time.Date(2025, 3, 16, 8, 0, 0, 0, time.Local),
			setupMocks: func(m *mocks.MockTaskScheduler) {},
		},
		{
			name:       "slot_exactly_at_now_is_not_future",
			now:        evening,
			setupMocks: func(m *mocks.MockTaskScheduler) {
				m.EXPECT().
					Arm(gomock.Any(), "expiry:1700000000123:24", midnight, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "propagates_arm_failure",
			now:  time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local),
			setupMocks: func(m *mocks.MockTaskScheduler) {
				m.EXPECT().
					Arm(gomock.Any(), "expiry:1700000000123:18", evening, gomock.Any()).
					Return(errors.New("redis unavailable"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tasks := mocks.NewMockTaskScheduler(ctrl)
			tt.setupMocks(tasks)

			scheduler := services.NewReminderScheduler(tasks, helpers.TestLogger()).
				WithClock(func() time.Time { return tt.now })

			err := scheduler.ScheduleTwoAlerts(context.Background(), batchID, expiry)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestReminderScheduler_CancelAlerts(t *testing.T) {
	const batchID = int64(99)

	t.Run("cancels_both_slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tasks := mocks.NewMockTaskScheduler(ctrl)
		tasks.EXPECT().Cancel(gomock.Any(), "expiry:99:18").Return(nil)
		tasks.EXPECT().Cancel(gomock.Any(), "expiry:99:24").Return(nil)

		scheduler := services.NewReminderScheduler(tasks, helpers.TestLogger())
		require.NoError(t, scheduler.CancelAlerts(context.Background(), batchID))
	})

	t.Run("cancel_failure_is_best_effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tasks := mocks.NewMockTaskScheduler(ctrl)
		tasks.EXPECT().Cancel(gomock.Any(), "expiry:99:18").Return(errors.New("boom"))
		tasks.EXPECT().Cancel(gomock.Any(), "expiry:99:24").Return(nil)

		scheduler := services.NewReminderScheduler(tasks, helpers.TestLogger())
		require.NoError(t, scheduler.CancelAlerts(context.Background(), batchID))
	})
}
