package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultReplayTTL = 24 * time.Hour

// ReplayGuard remembers gateway validation ids that already settled a payment
// so a replayed callback skips the validation round trip.
// Key format: callback:val:<val_id>
type ReplayGuard struct {
	client *redis.Client
}

// NewReplayGuard creates a ReplayGuard wrapping the given Redis client.
func NewReplayGuard(client *redis.Client) *ReplayGuard {
	return &ReplayGuard{client: client}
}

// Seen reports whether validationID has already been remembered.
func (g *ReplayGuard) Seen(ctx context.Context, validationID string) (bool, error) {
	n, err := g.client.Exists(ctx, replayKey(validationID)).Result()
	if err != nil {
		return false, fmt.Errorf("replay check: %w", err)
	}
	return n > 0, nil
}

// Remember records validationID for ttl (24h when ttl is not positive).
func (g *ReplayGuard) Remember(ctx context.Context, validationID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultReplayTTL
	}
	if err := g.client.Set(ctx, replayKey(validationID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("replay remember: %w", err)
	}
	return nil
}

func replayKey(validationID string) string {
	return "callback:val:" + validationID
}
