package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"dealflow_backend/internal/analysis/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type stubSource struct {
	comps []domain.ComparableSale
	err   error
	calls int
}

func (s *stubSource) FindComparables(_ context.Context, _ CompQuery) ([]domain.ComparableSale, error) {
	s.calls++
	return s.comps, s.err
}

func newCacheUnderTest(t *testing.T, inner CompSource) *CachedCompSource {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCachedCompSource(inner, client, time.Minute, nil)
}

func TestCachedCompSource_SecondLookupHitsCache(t *testing.T) {
	inner := &stubSource{comps: []domain.ComparableSale{
		{Address: "123 Similar St", SalePrice: 285000, PricePerSquareFoot: 158.33},
	}}
	cache := newCacheUnderTest(t, inner)

	q := CompQuery{City: "Austin", State: "TX", ZipCode: "78701"}

	first, err := cache.FindComparables(context.Background(), q)
	if err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	second, err := cache.FindComparables(context.Background(), q)
	if err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("expected 1 source call, got %d", inner.calls)
	}
	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected 1 comp from both lookups, got %d and %d", len(first), len(second))
	}
	if second[0].Address != "123 Similar St" {
		t.Fatalf("unexpected cached comp: %+v", second[0])
	}
}

func TestCachedCompSource_KeepsOptionalCompFieldsAbsent(t *testing.T) {
	beds := 3
	dist := 0.4
	inner := &stubSource{comps: []domain.ComparableSale{
		// Sales feeds routinely omit beds, baths, and distance. The comp must
		// survive the round trip with those fields still absent, not zeroed.
		{Address: "77 Sparse Ave", SalePrice: 240000, SquareFeet: 1500, PricePerSquareFoot: 160},
		{Address: "79 Sparse Ave", SalePrice: 250000, SquareFeet: 1520, PricePerSquareFoot: 164.47, Bedrooms: &beds, DistanceMiles: &dist},
	}}
	cache := newCacheUnderTest(t, inner)

	q := CompQuery{ZipCode: "78702"}
	if _, err := cache.FindComparables(context.Background(), q); err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	cached, err := cache.FindComparables(context.Background(), q)
	if err != nil {
		t.Fatalf("cached lookup failed: %v", err)
	}

	if len(cached) != 2 {
		t.Fatalf("expected 2 comps, got %d", len(cached))
	}
	sparse, full := cached[0], cached[1]
	if sparse.Bedrooms != nil || sparse.Bathrooms != nil || sparse.DistanceMiles != nil {
		t.Fatalf("expected absent optional fields to stay absent, got %+v", sparse)
	}
	if full.Bedrooms == nil || *full.Bedrooms != beds {
		t.Fatalf("expected bedrooms to survive the cache, got %+v", full.Bedrooms)
	}
	if full.DistanceMiles == nil || *full.DistanceMiles != dist {
		t.Fatalf("expected distance to survive the cache, got %+v", full.DistanceMiles)
	}
}

func TestCachedCompSource_SourceErrorPropagates(t *testing.T) {
	inner := &stubSource{err: errors.New("sales feed down")}
	cache := newCacheUnderTest(t, inner)

	_, err := cache.FindComparables(context.Background(), CompQuery{ZipCode: "78701"})
	if err == nil {
		t.Fatal("expected source error to propagate")
	}
}

func TestCachedCompSource_EmptyResultIsCached(t *testing.T) {
	inner := &stubSource{comps: []domain.ComparableSale{}}
	cache := newCacheUnderTest(t, inner)

	q := CompQuery{City: "Nowhere", State: "KS"}
	if _, err := cache.FindComparables(context.Background(), q); err != nil {
		t.Fatalf("first lookup failed: %v", err)
	}
	if _, err := cache.FindComparables(context.Background(), q); err != nil {
		t.Fatalf("second lookup failed: %v", err)
	}

	if inner.calls != 1 {
		t.Fatalf("expected empty result to be cached, got %d source calls", inner.calls)
	}
}

func TestCompQuery_CacheKeyFallsBackToAddress(t *testing.T) {
	withLocality := CompQuery{City: "Austin", State: "TX", ZipCode: "78701"}
	addressOnly := CompQuery{Address: "500 Elm St, Austin"}

	if withLocality.CacheKey() == addressOnly.CacheKey() {
		t.Fatal("expected distinct cache keys for locality and address-only queries")
	}
	if addressOnly.CacheKey() == (CompQuery{}).CacheKey() {
		t.Fatal("expected address to contribute to the cache key")
	}
}
