package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"aurora-journal-service/internal/domain"
)

// DraftStore keeps autosaved drafts in Redis, one hash per user:
// HSET journal:draft:{userID} content {content} wordCount {n} updatedAt {unix}
// Drafts expire after the configured TTL so abandoned sessions clean
// themselves up.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func (s *DraftStore) SaveDraft(ctx context.Context, draft domain.Draft) error {
	key := s.key(draft.UserID)
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, key,
		"content", draft.Content,
		"wordCount", draft.WordCount,
		"updatedAt", draft.UpdatedAt.Unix(),
	)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *DraftStore) GetDraft(ctx context.Context, userID string) (domain.Draft, error) {
	fields, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return domain.Draft{}, err
	}
	if len(fields) == 0 {
		return domain.Draft{}, domain.ErrDraftNotFound
	}

	draft := domain.Draft{UserID: userID, Content: fields["content"]}
	if wc, err := strconv.Atoi(fields["wordCount"]); err == nil {
		draft.WordCount = wc
	}
	if ts, err := strconv.ParseInt(fields["updatedAt"], 10, 64); err == nil {
		draft.UpdatedAt = time.Unix(ts, 0).UTC()
	}
	return draft, nil
}

func (s *DraftStore) key(userID string) string {
	return "journal:draft:" + userID
}
