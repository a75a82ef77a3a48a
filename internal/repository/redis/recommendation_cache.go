package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pobyzaarif/goshortcute"
	goredis "github.com/redis/go-redis/v9"

	"fsmpAdvisor/domain"
)

const keyPrefix = "fsmp:recommend:"

// RecommendationCache stores ranked responses in redis keyed by the
// normalized request material.
type RecommendationCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *goredis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RecommendationCache) key(material string) string {
	return keyPrefix + goshortcute.StringtoBase64Encode(material)
}

func (c *RecommendationCache) Get(ctx context.Context, material string) ([]domain.Recommendation, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("context error: %w", err)
	}

	raw, err := c.client.Get(ctx, c.key(material)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		// Stale payload shape, treat as a miss.
		return nil, false, nil
	}

	return recs, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, material string, recs []domain.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to encode cache payload: %w", err)
	}

	if err := c.client.Set(ctx, c.key(material), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}
