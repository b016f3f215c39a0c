package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yungbote/neowatch-backend/internal/clients/rediscache"
	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
)

// NeoSource serves NeoWs payloads through the cache. Every read reports
// whether it was served from cache so callers can surface degrade state.
type NeoSource interface {
	Feed(ctx context.Context, startDate, endDate string) (*neo.FeedPayload, bool, error)
	Lookup(ctx context.Context, neoID string) (*neo.RawNeoRecord, bool, error)
}

// NasaFetcher is the subset of the NASA client the source needs; tests
// swap in fakes.
type NasaFetcher interface {
	FetchFeed(ctx context.Context, startDate, endDate string) (*neo.FeedPayload, []byte, error)
	FetchLookup(ctx context.Context, neoID string) (*neo.RawNeoRecord, []byte, error)
}

type neoSource struct {
	log    *logger.Logger
	client NasaFetcher
	cache  rediscache.Cache
	ttl    time.Duration
	group  singleflight.Group
}

func NewNeoSource(log *logger.Logger, client NasaFetcher, cache rediscache.Cache, ttl time.Duration) NeoSource {
	serviceLog := log.With("service", "NeoSource")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &neoSource{
		log:    serviceLog,
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

func feedCacheKey(startDate, endDate string) string {
	return fmt.Sprintf("neo:feed:%s:%s", startDate, endDate)
}

func lookupCacheKey(neoID string) string {
	return fmt.Sprintf("neo:lookup:%s", neoID)
}

func (ns *neoSource) Feed(ctx context.Context, startDate, endDate string) (*neo.FeedPayload, bool, error) {
	key := feedCacheKey(startDate, endDate)

	if body, ok := ns.cache.Get(ctx, key); ok {
		var payload neo.FeedPayload
		if err := json.Unmarshal(body, &payload); err == nil {
			return &payload, true, nil
		}
		// A corrupt entry is a miss; it gets overwritten below.
		ns.log.Warn("Discarding unreadable cache entry", "key", key)
	}

	// Concurrent requests for the same window share one upstream call.
	result, err, _ := ns.group.Do(key, func() (interface{}, error) {
		payload, body, err := ns.client.FetchFeed(ctx, startDate, endDate)
		if err != nil {
			return nil, err
		}
		ns.cache.Set(ctx, key, body, ns.ttl)
		return payload, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result.(*neo.FeedPayload), false, nil
}

func (ns *neoSource) Lookup(ctx context.Context, neoID string) (*neo.RawNeoRecord, bool, error) {
	key := lookupCacheKey(neoID)

	if body, ok := ns.cache.Get(ctx, key); ok {
		var record neo.RawNeoRecord
		if err := json.Unmarshal(body, &record); err == nil {
			return &record, true, nil
		}
		ns.log.Warn("Discarding unreadable cache entry", "key", key)
	}

	result, err, _ := ns.group.Do(key, func() (interface{}, error) {
		record, body, err := ns.client.FetchLookup(ctx, neoID)
		if err != nil {
			return nil, err
		}
		ns.cache.Set(ctx, key, body, ns.ttl)
		return record, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result.(*neo.RawNeoRecord), false, nil
}
