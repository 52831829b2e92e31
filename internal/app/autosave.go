package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"aurora-journal-service/internal/domain"
)

// DraftSaver persists autosaved drafts (redis, memory, ...).
type DraftSaver interface {
	SaveDraft(ctx context.Context, draft domain.Draft) error
}

// TickerFactory yields a tick channel and its release function, so tests
// can drive virtual time instead of waiting on the wall clock.
type TickerFactory func(interval time.Duration) (<-chan time.Time, func())

// WallTicker is the production TickerFactory.
func WallTicker(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// AutosaveConfig tunes one controller. Zero values fall back to defaults.
type AutosaveConfig struct {
	Interval time.Duration // save cadence, default 10s
	Timeout  time.Duration // per-save deadline, default 5s
	Ticker   TickerFactory
	Clock    func() time.Time
	OnSaved  func(domain.Draft) // invoked after each successful save
}

// AutosaveController tracks the editor's document and persists it on a
// fixed cadence while content is present and unsaved. At most one save is
// in flight at a time; a cycle that fires mid-save is skipped. Save
// failures are logged and retried on the next tick, never surfaced.
type AutosaveController struct {
	userID  string
	saver   DraftSaver
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
	onSaved func(domain.Draft)

	mu        sync.Mutex
	content   string
	wordCount int
	dirty     bool
	saving    bool
	closed    bool
	lastSaved time.Time

	stopTicker func()
	stop       chan struct{}
	done       chan struct{}
}

func NewAutosaveController(userID string, saver DraftSaver, cfg AutosaveConfig, logger *zap.Logger) *AutosaveController {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Ticker == nil {
		cfg.Ticker = WallTicker
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	ticks, release := cfg.Ticker(cfg.Interval)
	c := &AutosaveController{
		userID:     userID,
		saver:      saver,
		timeout:    cfg.Timeout,
		logger:     logger,
		now:        cfg.Clock,
		onSaved:    cfg.OnSaved,
		stopTicker: release,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go c.run(ticks)
	return c
}

func (c *AutosaveController) run(ticks <-chan time.Time) {
	defer close(c.done)
	for {
		select {
		case <-ticks:
			if err := c.saveOnce(context.Background()); err != nil {
				c.logger.Warn("autosave failed, retrying next tick",
					zap.String("userId", c.userID), zap.Error(err))
			}
		case <-c.stop:
			return
		}
	}
}

// SetContent replaces the document and recomputes the word count. Word
// counting is independent of the save timer.
func (c *AutosaveController) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || content == c.content {
		return
	}
	c.content = content
	c.wordCount = CountWords(content)
	c.dirty = true
}

// Flush performs an explicit save, subject to the same single-flight and
// empty-content rules as the timer, and reports the save error directly.
func (c *AutosaveController) Flush(ctx context.Context) error {
	return c.saveOnce(ctx)
}

func (c *AutosaveController) saveOnce(ctx context.Context) error {
	c.mu.Lock()
	if c.closed || c.saving || !c.dirty || strings.TrimSpace(c.content) == "" {
		c.mu.Unlock()
		return nil
	}
	c.saving = true
	draft := domain.Draft{
		UserID:    c.userID,
		Content:   c.content,
		WordCount: c.wordCount,
		UpdatedAt: c.now(),
	}
	c.mu.Unlock()

	saveCtx, cancel := context.WithTimeout(ctx, c.timeout)
	err := c.saver.SaveDraft(saveCtx, draft)
	cancel()

	c.mu.Lock()
	c.saving = false
	if c.closed {
		// Controller was torn down mid-save; discard the outcome.
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.lastSaved = c.now()
	if c.content == draft.Content {
		c.dirty = false
	}
	c.mu.Unlock()

	if c.onSaved != nil {
		c.onSaved(draft)
	}
	return nil
}

// WordCount returns the current document word count.
func (c *AutosaveController) WordCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wordCount
}

// LastSaved reports when the last successful save finished; the zero time
// means nothing has been saved yet.
func (c *AutosaveController) LastSaved() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved
}

// Saving reports whether a save is currently in flight.
func (c *AutosaveController) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// Close releases the timer and stops the save loop. It is safe to call
// more than once. A save already in flight is allowed to finish but its
// result is discarded.
func (c *AutosaveController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.stopTicker()
	close(c.stop)
	<-c.done
}
