package snapshot

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)}
}

func TestGetOrFetch(t *testing.T) {
	t.Run("fresh hit skips fetch", func(t *testing.T) {
		clock := newFakeClock()
		cache := New[string, int](5*time.Minute, clock.Now)

		calls := 0
		fetch := func() (int, error) { calls++; return 42, nil }

		v, err := cache.GetOrFetch("k", fetch)
		if err != nil || v != 42 {
			t.Fatalf("Expected 42, got %v (%v)", v, err)
		}

		clock.Advance(4 * time.Minute)
		v, err = cache.GetOrFetch("k", fetch)
		if err != nil || v != 42 {
			t.Fatalf("Expected cached 42, got %v (%v)", v, err)
		}
		if calls != 1 {
			t.Errorf("Expected one fetch, got %d", calls)
		}
	})

	t.Run("expired entry refetches", func(t *testing.T) {
		clock := newFakeClock()
		cache := New[string, int](5*time.Minute, clock.Now)

		value := 1
		fetch := func() (int, error) { return value, nil }

		cache.GetOrFetch("k", fetch)
		value = 2
		clock.Advance(6 * time.Minute)

		v, err := cache.GetOrFetch("k", fetch)
		if err != nil || v != 2 {
			t.Errorf("Expected refetched 2, got %v (%v)", v, err)
		}
	})

	t.Run("stale value served on refetch failure", func(t *testing.T) {
		clock := newFakeClock()
		cache := New[string, int](5*time.Minute, clock.Now)

		cache.GetOrFetch("k", func() (int, error) { return 42, nil })
		clock.Advance(time.Hour)

		v, err := cache.GetOrFetch("k", func() (int, error) { return 0, errors.New("upstream down") })
		if err != nil {
			t.Fatalf("Expected stale fallback, got error %v", err)
		}
		if v != 42 {
			t.Errorf("Expected stale 42, got %v", v)
		}
	})

	t.Run("error surfaces without stale value", func(t *testing.T) {
		clock := newFakeClock()
		cache := New[string, int](5*time.Minute, clock.Now)

		wantErr := errors.New("upstream down")
		_, err := cache.GetOrFetch("k", func() (int, error) { return 0, wantErr })
		if !errors.Is(err, wantErr) {
			t.Errorf("Expected fetch error, got %v", err)
		}
		if cache.Len() != 0 {
			t.Errorf("Expected nothing cached, got %d entries", cache.Len())
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		clock := newFakeClock()
		cache := New[string, int](5*time.Minute, clock.Now)

		cache.GetOrFetch("a", func() (int, error) { return 1, nil })
		cache.GetOrFetch("b", func() (int, error) { return 2, nil })

		if v, _ := cache.Peek("a"); v != 1 {
			t.Errorf("Expected 1 for a, got %v", v)
		}
		if v, _ := cache.Peek("b"); v != 2 {
			t.Errorf("Expected 2 for b, got %v", v)
		}
	})

	t.Run("invalidate forces refetch", func(t *testing.T) {
		clock := newFakeClock()
		cache := New[string, int](5*time.Minute, clock.Now)

		calls := 0
		fetch := func() (int, error) { calls++; return calls, nil }

		cache.GetOrFetch("k", fetch)
		cache.Invalidate("k")
		v, _ := cache.GetOrFetch("k", fetch)
		if v != 2 || calls != 2 {
			t.Errorf("Expected refetch after invalidate, got %v after %d calls", v, calls)
		}
	})
}
