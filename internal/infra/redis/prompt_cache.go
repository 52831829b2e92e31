package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// PromptCache stores the prompt of the day under a plain string key so
// every instance serves the same prompt until it expires.
type PromptCache struct {
	client *redis.Client
}

func NewPromptCache(client *redis.Client) *PromptCache {
	return &PromptCache{client: client}
}

func (c *PromptCache) GetPrompt(ctx context.Context, key string) (string, error) {
	prompt, err := c.client.Get(ctx, c.key(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return prompt, nil
}

func (c *PromptCache) SetPrompt(ctx context.Context, key, prompt string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), prompt, ttl).Err()
}

func (c *PromptCache) key(key string) string {
	return "journal:prompt:" + key
}
