package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultPrompt is served whenever generation is unavailable or fails.
const DefaultPrompt = "What's on your mind today?"

// Generator produces a fresh journaling prompt from the language-model
// backend.
type Generator interface {
	GeneratePrompt(ctx context.Context) (string, error)
}

// PromptCache stores the prompt of the day. A miss is ("", nil).
type PromptCache interface {
	GetPrompt(ctx context.Context, key string) (string, error)
	SetPrompt(ctx context.Context, key, prompt string, ttl time.Duration) error
}

// PromptService serves one generated prompt per day, deduplicating
// concurrent generations and degrading to DefaultPrompt on any failure.
// Generate never returns an error; missing configuration only disables
// the feature.
type PromptService struct {
	gen      Generator
	cache    PromptCache
	cacheTTL time.Duration
	sf       singleflight.Group
	logger   *zap.Logger
	now      func() time.Time
}

func NewPromptService(gen Generator, cache PromptCache, cacheTTL time.Duration, logger *zap.Logger) *PromptService {
	return NewPromptServiceWithClock(gen, cache, cacheTTL, logger, time.Now)
}

// NewPromptServiceWithClock allows deterministic day keys in tests.
func NewPromptServiceWithClock(gen Generator, cache PromptCache, cacheTTL time.Duration, logger *zap.Logger, now func() time.Time) *PromptService {
	return &PromptService{
		gen:      gen,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      now,
	}
}

// Generate returns today's prompt.
func (s *PromptService) Generate(ctx context.Context) string {
	key := "daily:" + s.now().Format("2006-01-02")

	if s.cache != nil {
		if cached, err := s.cache.GetPrompt(ctx, key); err == nil && cached != "" {
			return cached
		}
	}

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if s.gen == nil {
			return nil, errors.New("prompt generator not configured")
		}
		prompt, err := s.gen.GeneratePrompt(ctx)
		if err != nil {
			return nil, err
		}
		if prompt == "" {
			return nil, errors.New("generator returned an empty prompt")
		}
		if s.cache != nil {
			if err := s.cache.SetPrompt(ctx, key, prompt, s.cacheTTL); err != nil {
				s.logger.Debug("prompt cache write failed", zap.Error(err))
			}
		}
		return prompt, nil
	})
	if err != nil {
		s.logger.Warn("prompt generation failed, serving fallback", zap.Error(err))
		return DefaultPrompt
	}
	return result.(string)
}
