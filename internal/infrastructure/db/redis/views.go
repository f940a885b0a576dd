package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViewTracker counts property page views in Redis.
// Keys: views:<property_id> (counter), visitors:<property_id> (set of user ids).
type ViewTracker struct {
	client *redis.Client
}

// NewViewTracker creates a ViewTracker wrapping the given Redis client.
func NewViewTracker(client *redis.Client) *ViewTracker {
	return &ViewTracker{client: client}
}

// Record counts one view and remembers the viewer. The counter grows on every
// visit; the visitor set deduplicates by user id.
func (t *ViewTracker) Record(ctx context.Context, propertyID, viewerID string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, t.viewsKey(propertyID))
	pipe.SAdd(ctx, t.visitorsKey(propertyID), viewerID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// Total returns the all-time view count for a property.
func (t *ViewTracker) Total(ctx context.Context, propertyID string) (int64, error) {
	n, err := t.client.Get(ctx, t.viewsKey(propertyID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("total views: %w", err)
	}
	return n, nil
}

// Visitors returns the distinct user ids that viewed a property.
func (t *ViewTracker) Visitors(ctx context.Context, propertyID string) ([]string, error) {
	members, err := t.client.SMembers(ctx, t.visitorsKey(propertyID)).Result()
	if err != nil {
		return nil, fmt.Errorf("visitors: %w", err)
	}
	return members, nil
}

func (t *ViewTracker) viewsKey(propertyID string) string {
	return "views:" + propertyID
}

func (t *ViewTracker) visitorsKey(propertyID string) string {
	return "visitors:" + propertyID
}
