package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

// AnalysisCache memoizes full analyze responses keyed by the request inputs
// that affect the outcome (url, goal, policy, mode). The decision core is
// deterministic, so a cached response is as good as a recomputed one while
// the content is fresh.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*model.AnalyzeResponse, error)
	Set(ctx context.Context, key string, resp *model.AnalyzeResponse) error
}

// AnalysisKey derives the cache key from the decision-relevant inputs
func AnalysisKey(url, goal string, policy model.InterventionPolicy, mode model.LearningMode) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{url, goal, string(policy), string(mode)}, "\x00")))
	return "analysis:" + hex.EncodeToString(sum[:16])
}

type analysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalysisCache(client *redis.Client, ttl time.Duration) AnalysisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &analysisCache{client: client, ttl: ttl}
}

func (c *analysisCache) Get(ctx context.Context, key string) (*model.AnalyzeResponse, error) {
	data, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var resp model.AnalyzeResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *analysisCache) Set(ctx context.Context, key string, resp *model.AnalyzeResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
