package redis

import (
	"context"
	"fmt"
	"time"

	"donation-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EventCache implements ports.EventDedupCache. It is a bounded-TTL fast
// path in front of the webhook event ledger; entries are written only
// after the ledger insert has decided, so a stale or flushed cache can
// cause extra ledger lookups but never a lost or double-applied event.
type EventCache struct {
	client *goredis.Client
	prefix string
}

// NewEventCache creates a Redis-backed webhook event cache.
func NewEventCache(client *goredis.Client) *EventCache {
	return &EventCache{
		client: client,
		prefix: "webhook_event:",
	}
}

func (c *EventCache) key(provider domain.DonationMethod, eventID string) string {
	return fmt.Sprintf("%s%s:%s", c.prefix, provider, eventID)
}

// Seen reports whether the event was already marked processed.
func (c *EventCache) Seen(ctx context.Context, provider domain.DonationMethod, eventID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(provider, eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis event cache exists: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records the event as processed for the given TTL.
func (c *EventCache) MarkSeen(ctx context.Context, provider domain.DonationMethod, eventID string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(provider, eventID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis event cache set: %w", err)
	}
	return nil
}
