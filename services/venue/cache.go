package venue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"venuebook/models"

	"github.com/go-redis/redis/v8"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const venueCachePrefix = "venue:"

// VenueCache stores single venues. Get returns (nil, nil) on a miss.
type VenueCache interface {
	Get(ctx context.Context, id string) (*models.Venue, error)
	Set(ctx context.Context, venue *models.Venue) error
}

// RedisVenueCache keeps venues as JSON under "venue:<id>".
type RedisVenueCache struct {
	client *redis.Client
	ttl    time.Duration
}

// cacheKey lowercases the id so hex ids in either case share one entry.
func cacheKey(id string) string {
	return venueCachePrefix + strings.ToLower(strings.TrimSpace(id))
}

func NewRedisVenueCache(client *redis.Client, ttl time.Duration) *RedisVenueCache {
	return &RedisVenueCache{client: client, ttl: ttl}
}

func (c *RedisVenueCache) Get(ctx context.Context, id string) (*models.Venue, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached venue %s: %w", id, err)
	}
	var v models.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse cached venue %s: %w", id, err)
	}
	return &v, nil
}

func (c *RedisVenueCache) Set(ctx context.Context, venue *models.Venue) error {
	data, err := json.Marshal(venue)
	if err != nil {
		return fmt.Errorf("failed to marshal venue: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(venue.ID.Hex()), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache venue %s: %w", venue.ID.Hex(), err)
	}
	return nil
}

// BreakerCache stops calling an unhealthy cache until the breaker half-opens,
// so a Redis outage costs one failed call instead of one per request.
type BreakerCache struct {
	next VenueCache
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerCache(next VenueCache, logger *zap.Logger) *BreakerCache {
	settings := gobreaker.Settings{
		Name:        "VenueCache",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker changed state",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}
	return &BreakerCache{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerCache) Get(ctx context.Context, id string) (*models.Venue, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Get(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	v, _ := res.(*models.Venue)
	return v, nil
}

func (b *BreakerCache) Set(ctx context.Context, venue *models.Venue) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.next.Set(ctx, venue)
	})
	return err
}

// State exposes the breaker state for health reporting.
func (b *BreakerCache) State() gobreaker.State {
	return b.cb.State()
}
