// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// # Redis Read Cache

// GenerationKey is incremented after every successful write. Cached entries
// embed the generation they were read under, so a bump invalidates them all.
const GenerationKey = "series:generation"

/*
cachedStore decorates a [Store] with a Redis cache for FindByID.

Rank is recomputed globally after writes, so no single entry can be
invalidated in isolation. Instead every write bumps [GenerationKey] and the
entries of older generations simply expire.

Cache failures never fail a command: reads fall through to the store and
the failure is logged at Warn. When a bump fails the entries of the current
generation can no longer be trusted, so reads bypass Redis until every entry
cached before the failed bump has expired.
*/
type cachedStore struct {
	Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger

	mu         sync.Mutex
	dirtyUntil time.Time
}

// NewCachedStore wraps store with the Redis read cache.
func NewCachedStore(store Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) Store {
	return &cachedStore{Store: store, client: client, ttl: ttl, logger: logger}
}

// entryKey formats the cache key of a series for the given generation.
func entryKey(generation, id int64) string {
	return fmt.Sprintf("series:v%d:%d", generation, id)
}

/*
FindByID serves the series from Redis when the current generation holds it.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Series: The cached or freshly loaded series, nil when absent
  - error: Store failures only
*/
func (store *cachedStore) FindByID(context context.Context, id int64) (*Series, error) {
	if store.dirty() {
		return store.Store.FindByID(context, id)
	}

	generation, err := store.generation(context)
	if err != nil {
		store.degrade("cache_generation_failed", metrics.StepCacheRead, err)
		return store.Store.FindByID(context, id)
	}

	key := entryKey(generation, id)

	// Cache hit
	payload, err := store.client.Get(context, key).Bytes()
	switch {
	case err == nil:
		var cached Series
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	case !errors.Is(err, redis.Nil):
		store.degrade("cache_read_failed", metrics.StepCacheRead, err)
	}

	// Miss: load and populate. Absence is not cached.
	series, err := store.Store.FindByID(context, id)
	if err != nil || series == nil || store.dirty() {
		return series, err
	}

	encoded, err := json.Marshal(series)
	if err == nil {
		err = store.client.Set(context, key, encoded, store.ttl).Err()
	}
	if err != nil {
		store.degrade("cache_write_failed", metrics.StepCacheWrite, err)
	}

	return series, nil
}

func (store *cachedStore) Create(context context.Context, fields Fields) (int64, error) {
	id, err := store.Store.Create(context, fields)
	if err == nil {
		store.invalidate(context)
	}
	return id, err
}

func (store *cachedStore) Update(context context.Context, id int64, patch Patch) error {
	err := store.Store.Update(context, id, patch)
	if err == nil {
		store.invalidate(context)
	}
	return err
}

func (store *cachedStore) Delete(context context.Context, id int64) (bool, error) {
	return store.afterWrite(context)(store.Store.Delete(context, id))
}

func (store *cachedStore) UpdateImage(context context.Context, id int64, path string) (bool, error) {
	return store.afterWrite(context)(store.Store.UpdateImage(context, id, path))
}

func (store *cachedStore) UpdateRank(context context.Context) error {
	err := store.Store.UpdateRank(context)
	if err == nil {
		store.invalidate(context)
	}
	return err
}

func (store *cachedStore) AssignGenres(context context.Context, seriesID int64, genreIDs []int64) (bool, error) {
	return store.afterWrite(context)(store.Store.AssignGenres(context, seriesID, genreIDs))
}

func (store *cachedStore) RemoveGenres(context context.Context, seriesID int64, genreIDs []int64) (bool, error) {
	return store.afterWrite(context)(store.Store.RemoveGenres(context, seriesID, genreIDs))
}

func (store *cachedStore) AddTitles(context context.Context, seriesID int64, titles []string) (bool, error) {
	return store.afterWrite(context)(store.Store.AddTitles(context, seriesID, titles))
}

func (store *cachedStore) RemoveTitles(context context.Context, seriesID int64, titleIDs []int64) (bool, error) {
	return store.afterWrite(context)(store.Store.RemoveTitles(context, seriesID, titleIDs))
}

// afterWrite bumps the generation when the wrapped write succeeded.
func (store *cachedStore) afterWrite(context context.Context) func(bool, error) (bool, error) {
	return func(applied bool, err error) (bool, error) {
		if err == nil {
			store.invalidate(context)
		}
		return applied, err
	}
}

func (store *cachedStore) generation(context context.Context) (int64, error) {
	generation, err := store.client.Get(context, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

/*
invalidate bumps the generation after a write.

A failed bump leaves stale entries readable under the current generation.
The store then stays dirty for one ttl, which outlives every entry written
before the failure.
*/
func (store *cachedStore) invalidate(context context.Context) {
	err := store.client.Incr(context, GenerationKey).Err()

	store.mu.Lock()
	defer store.mu.Unlock()

	if err != nil {
		store.dirtyUntil = time.Now().Add(store.ttl)
		store.degrade("cache_invalidate_failed", metrics.StepCacheWrite, err)
		return
	}
	store.dirtyUntil = time.Time{}
}

func (store *cachedStore) dirty() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return time.Now().Before(store.dirtyUntil)
}

func (store *cachedStore) degrade(event, step string, err error) {
	metrics.BestEffortFailure(step)
	store.logger.Warn(event, slog.Any("error", err))
}
