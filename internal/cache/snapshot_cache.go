package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BenLittle1/orggraph-api/internal/dto"
	"github.com/BenLittle1/orggraph-api/internal/graph"
)

const (
	keyTree           = "tracker:tree"
	keySummary        = "tracker:summary"
	keyGraph          = "tracker:graph"
	keyProgressPrefix = "tracker:progress:"
)

// SnapshotCache caches rendered tree, summary, graph and per-category
// progress responses in Redis. The in-memory store stays the source of
// truth; the cache only spares repeated rendering of the same snapshot.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSnapshotCache returns a new SnapshotCache.
func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

// GetTree returns the cached tree response or nil if miss.
func (c *SnapshotCache) GetTree(ctx context.Context) (*dto.TreeResponse, error) {
	var out dto.TreeResponse
	ok, err := c.get(ctx, keyTree, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// SetTree stores the tree response.
func (c *SnapshotCache) SetTree(ctx context.Context, v dto.TreeResponse) error {
	return c.set(ctx, keyTree, v)
}

// GetSummary returns the cached summary response or nil if miss.
func (c *SnapshotCache) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	var out dto.SummaryResponse
	ok, err := c.get(ctx, keySummary, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// SetSummary stores the summary response.
func (c *SnapshotCache) SetSummary(ctx context.Context, v dto.SummaryResponse) error {
	return c.set(ctx, keySummary, v)
}

// GetGraph returns the cached graph projection or nil if miss.
func (c *SnapshotCache) GetGraph(ctx context.Context) (*graph.Graph, error) {
	var out graph.Graph
	ok, err := c.get(ctx, keyGraph, &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// SetGraph stores the graph projection.
func (c *SnapshotCache) SetGraph(ctx context.Context, v graph.Graph) error {
	return c.set(ctx, keyGraph, v)
}

// GetProgress returns the cached progress percent for a category, or nil if
// miss.
func (c *SnapshotCache) GetProgress(ctx context.Context, categoryID int64) (*int, error) {
	var out int
	ok, err := c.get(ctx, progressKey(categoryID), &out)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// SetProgress stores the progress percent for a category.
func (c *SnapshotCache) SetProgress(ctx context.Context, categoryID int64, percent int) error {
	return c.set(ctx, progressKey(categoryID), percent)
}

// InvalidateAll removes every cached snapshot (cache invalidation on write).
func (c *SnapshotCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyTree, keySummary, keyGraph).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyProgressPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *SnapshotCache) get(ctx context.Context, key string, out any) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *SnapshotCache) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

func progressKey(categoryID int64) string {
	return keyProgressPrefix + strconv.FormatInt(categoryID, 10)
}
