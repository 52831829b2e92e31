package memory

import (
	"context"
	"sync"
	"time"
)

// PromptCache is an in-memory implementation of app.PromptCache.
type PromptCache struct {
	clock func() time.Time

	mu      sync.RWMutex
	prompts map[string]cachedPrompt
}

type cachedPrompt struct {
	prompt    string
	expiresAt time.Time
}

func NewPromptCache() *PromptCache {
	return &PromptCache{
		clock:   time.Now,
		prompts: make(map[string]cachedPrompt),
	}
}

func (c *PromptCache) GetPrompt(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.prompts[key]
	if !ok || !entry.expiresAt.After(c.clock()) {
		return "", nil
	}
	return entry.prompt, nil
}

func (c *PromptCache) SetPrompt(_ context.Context, key, prompt string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts[key] = cachedPrompt{prompt: prompt, expiresAt: c.clock().Add(ttl)}
	return nil
}
