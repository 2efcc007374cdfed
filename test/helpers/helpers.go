// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/shelfwatch/shelfwatch-be/internal/core/domain"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// CreateTestBatch creates a batch fixture expiring two days out
func CreateTestBatch(overrides ...func(*domain.Batch)) *domain.Batch {
	now := time.Now()
	batch := &domain.Batch{
		ID:         domain.NewBatchID(now),
		Name:       "Milk",
		BatchDate:  domain.StartOfDay(now),
		QtyInitial: 10,
		QtyCurrent: 10,
		ExpiresAt:  domain.StartOfDay(now).AddDate(0, 0, 2),
		Status:     domain.StatusActive,
	}

	for _, override := range overrides {
		override(batch)
	}

	return batch
}

// CreateTestBatches creates multiple batch fixtures with staggered expiries
func CreateTestBatches(count int) []domain.Batch {
	names := []string{"Milk", "Yogurt", "Cheese", "Butter", "Cream"}

	batches := make([]domain.Batch, count)
	for i := 0; i < count; i++ {
		i := i
		batches[i] = *CreateTestBatch(func(b *domain.Batch) {
			b.ID = b.ID + int64(i)*1000
			b.Name = names[i%len(names)]
			b.ExpiresAt = domain.StartOfDay(time.Now()).AddDate(0, 0, i)
		})
	}

	return batches
}
