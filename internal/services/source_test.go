package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
)

type fakeFetcher struct {
	feedCalls   int
	lookupCalls int
	feedErr     error
	payload     *neo.FeedPayload
	record      *neo.RawNeoRecord
}

func (f *fakeFetcher) FetchFeed(ctx context.Context, startDate, endDate string) (*neo.FeedPayload, []byte, error) {
	f.feedCalls++
	if f.feedErr != nil {
		return nil, nil, f.feedErr
	}
	body, _ := json.Marshal(f.payload)
	return f.payload, body, nil
}

func (f *fakeFetcher) FetchLookup(ctx context.Context, neoID string) (*neo.RawNeoRecord, []byte, error) {
	f.lookupCalls++
	body, _ := json.Marshal(f.record)
	return f.record, body, nil
}

// memCache is an in-process Cache; failing=true makes every read miss and
// every write vanish, like an unreachable Redis.
type memCache struct {
	entries map[string][]byte
	failing bool
	sets    int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if m.failing {
		return nil, false
	}
	val, ok := m.entries[key]
	return val, ok
}

func (m *memCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	m.sets++
	if m.failing {
		return
	}
	m.entries[key] = val
}

func (m *memCache) Close() error { return nil }

func testPayload() *neo.FeedPayload {
	return &neo.FeedPayload{
		ElementCount: 1,
		NearEarthObjects: map[string][]neo.RawNeoRecord{
			"2025-01-01": {{ID: "3542519", Name: "(2010 PK9)"}},
		},
	}
}

func TestSourceFeedCachesAfterMiss(t *testing.T) {
	log, _ := logger.New("test")
	fetcher := &fakeFetcher{payload: testPayload()}
	cache := newMemCache()
	source := NewNeoSource(log, fetcher, cache, time.Minute)

	payload, cached, err := source.Feed(context.Background(), "2025-01-01", "2025-01-01")
	if err != nil {
		t.Fatalf("first feed: %v", err)
	}
	if cached {
		t.Fatalf("first read should be a miss")
	}
	if payload.ElementCount != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	payload, cached, err = source.Feed(context.Background(), "2025-01-01", "2025-01-01")
	if err != nil {
		t.Fatalf("second feed: %v", err)
	}
	if !cached {
		t.Fatalf("second read should hit the cache")
	}
	if fetcher.feedCalls != 1 {
		t.Fatalf("upstream called %d times, want 1", fetcher.feedCalls)
	}
	if payload.ElementCount != 1 {
		t.Fatalf("cached payload should decode identically")
	}
}

func TestSourceFeedDistinctWindowsDistinctKeys(t *testing.T) {
	log, _ := logger.New("test")
	fetcher := &fakeFetcher{payload: testPayload()}
	source := NewNeoSource(log, fetcher, newMemCache(), time.Minute)

	if _, _, err := source.Feed(context.Background(), "2025-01-01", "2025-01-01"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if _, _, err := source.Feed(context.Background(), "2025-01-01", "2025-01-02"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if fetcher.feedCalls != 2 {
		t.Fatalf("different windows must not share a key, got %d calls", fetcher.feedCalls)
	}
}

func TestSourceDegradesWhenCacheUnavailable(t *testing.T) {
	log, _ := logger.New("test")
	fetcher := &fakeFetcher{payload: testPayload()}
	cache := newMemCache()
	cache.failing = true
	source := NewNeoSource(log, fetcher, cache, time.Minute)

	for i := 0; i < 2; i++ {
		_, cached, err := source.Feed(context.Background(), "2025-01-01", "2025-01-01")
		if err != nil {
			t.Fatalf("feed with broken cache: %v", err)
		}
		if cached {
			t.Fatalf("broken cache can never report a hit")
		}
	}
	if fetcher.feedCalls != 2 {
		t.Fatalf("every read should reach upstream, got %d", fetcher.feedCalls)
	}
}

func TestSourceCorruptEntryRefetches(t *testing.T) {
	log, _ := logger.New("test")
	fetcher := &fakeFetcher{payload: testPayload()}
	cache := newMemCache()
	cache.entries[feedCacheKey("2025-01-01", "2025-01-01")] = []byte("{not json")
	source := NewNeoSource(log, fetcher, cache, time.Minute)

	_, cached, err := source.Feed(context.Background(), "2025-01-01", "2025-01-01")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if cached {
		t.Fatalf("corrupt entry must count as a miss")
	}
	if fetcher.feedCalls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", fetcher.feedCalls)
	}
}

func TestSourceUpstreamErrorPropagates(t *testing.T) {
	log, _ := logger.New("test")
	boom := errors.New("nasa down")
	fetcher := &fakeFetcher{feedErr: boom}
	source := NewNeoSource(log, fetcher, newMemCache(), time.Minute)

	_, _, err := source.Feed(context.Background(), "2025-01-01", "2025-01-01")
	if !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestSourceLookupCaches(t *testing.T) {
	log, _ := logger.New("test")
	fetcher := &fakeFetcher{record: &neo.RawNeoRecord{ID: "2465633", Name: "2465633 (2009 JR5)"}}
	source := NewNeoSource(log, fetcher, newMemCache(), time.Minute)

	record, cached, err := source.Lookup(context.Background(), "2465633")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if cached || record.ID != "2465633" {
		t.Fatalf("unexpected first lookup: cached=%v record=%+v", cached, record)
	}

	record, cached, err = source.Lookup(context.Background(), "2465633")
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if !cached || record.Name != "2465633 (2009 JR5)" {
		t.Fatalf("second lookup should be cached, got cached=%v", cached)
	}
	if fetcher.lookupCalls != 1 {
		t.Fatalf("upstream called %d times, want 1", fetcher.lookupCalls)
	}
}
