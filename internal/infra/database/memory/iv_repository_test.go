package memory

import (
	"context"
	"testing"
	"time"

	"github.com/wilsonfong56/ETF-Dashboard/internal/domain/ivhistory"
)

func TestIVRepository(t *testing.T) {
	repo := NewIVRepository()
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Upsert(ctx, ivhistory.Reading{
			Symbol: "spy",
			Date:   base.AddDate(0, 0, i),
			IV30:   0.20 + float64(i)*0.01,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	t.Run("most recent first", func(t *testing.T) {
		history, err := repo.History(ctx, "SPY", 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(history) != 5 {
			t.Fatalf("Expected 5 readings, got %d", len(history))
		}
		if !history[0].Date.After(history[4].Date) {
			t.Error("Expected most recent first")
		}
	})

	t.Run("lookback cap", func(t *testing.T) {
		history, err := repo.History(ctx, "SPY", 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(history) != 3 {
			t.Fatalf("Expected 3 readings, got %d", len(history))
		}
		// The cap keeps the newest readings
		if got := history[0].Date; !got.Equal(base.AddDate(0, 0, 4)) {
			t.Errorf("Expected newest reading kept, got %s", got)
		}
	})

	t.Run("same day overwrites", func(t *testing.T) {
		midday := base.Add(14 * time.Hour)
		if err := repo.Upsert(ctx, ivhistory.Reading{Symbol: "SPY", Date: midday, IV30: 0.99}); err != nil {
			t.Fatal(err)
		}
		history, _ := repo.History(ctx, "SPY", 10)
		if len(history) != 5 {
			t.Fatalf("Expected still 5 readings, got %d", len(history))
		}
		last := history[len(history)-1]
		if last.IV30 != 0.99 {
			t.Errorf("Expected overwrite to 0.99, got %v", last.IV30)
		}
	})

	t.Run("unknown symbol empty", func(t *testing.T) {
		history, err := repo.History(ctx, "NOPE", 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(history) != 0 {
			t.Errorf("Expected empty history, got %d", len(history))
		}
	})
}
