package cache

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/civicadmin/internal/metrics"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCacheGetOrLoad(t *testing.T) {
	cache := New[string, int]("test_get_or_load", 10, time.Minute)
	ctx := context.Background()

	loads := 0
	load := func(ctx context.Context) (int, error) {
		loads++
		return 42, nil
	}

	for range 3 {
		value, err := cache.GetOrLoad(ctx, "answer", load)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 42, value; e != g {
			t.Errorf("value: expected %d, got %d", e, g)
		}
	}

	if e, g := 1, loads; e != g {
		t.Errorf("loads: expected %d, got %d", e, g)
	}

	if e, g := 2.0, testutil.ToFloat64(metrics.CacheLookupsTotal.WithLabelValues("test_get_or_load", metrics.CacheResultHit)); e != g {
		t.Errorf("hits: expected %v, got %v", e, g)
	}

	if e, g := 1.0, testutil.ToFloat64(metrics.CacheLookupsTotal.WithLabelValues("test_get_or_load", metrics.CacheResultMiss)); e != g {
		t.Errorf("misses: expected %v, got %v", e, g)
	}

	errLoad := errors.New("unavailable")

	if _, err := cache.GetOrLoad(ctx, "broken", func(ctx context.Context) (int, error) { return 0, errLoad }); !errors.Is(err, errLoad) {
		t.Errorf("err: expected load error, got '%v'", err)
	}

	if e, g := 1, cache.Len(); e != g {
		t.Errorf("cache.Len(): expected %d, got %d", e, g)
	}

	cache.Remove("answer")

	if _, exists := cache.Get("answer"); exists {
		t.Errorf("'answer' should have been removed")
	}
}

func TestCacheExpiration(t *testing.T) {
	cache := New[string, string]("test_expiration", 10, 20*time.Millisecond)

	cache.Add("p1", "Amina Okafor")

	if _, exists := cache.Get("p1"); !exists {
		t.Fatalf("'p1' should be cached")
	}

	time.Sleep(50 * time.Millisecond)

	if _, exists := cache.Get("p1"); exists {
		t.Errorf("'p1' should have expired")
	}
}
