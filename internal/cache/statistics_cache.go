package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ChanitaIvanova/pastry-tasting-platform/internal/model"
)

// StatisticsCache handles Redis caching of aggregated statistics.
// Entries are invalidated on every response save, so a hit is at most
// one save behind; misses fall through to a recompute.
type StatisticsCache interface {
	Get(ctx context.Context, questionnaireID string) (*model.Statistics, error)
	Set(ctx context.Context, questionnaireID string, stats *model.Statistics) error
	Invalidate(ctx context.Context, questionnaireID string) error
}

type statisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatisticsCache creates a new statistics cache
func NewStatisticsCache(client *redis.Client) StatisticsCache {
	return &statisticsCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *statisticsCache) key(questionnaireID string) string {
	return fmt.Sprintf("questionnaire:%s:stats", questionnaireID)
}

func (c *statisticsCache) Get(ctx context.Context, questionnaireID string) (*model.Statistics, error) {
	data, err := c.client.Get(ctx, c.key(questionnaireID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.Statistics
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statisticsCache) Set(ctx context.Context, questionnaireID string, stats *model.Statistics) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(questionnaireID), data, c.ttl).Err()
}

func (c *statisticsCache) Invalidate(ctx context.Context, questionnaireID string) error {
	return c.client.Del(ctx, c.key(questionnaireID)).Err()
}
