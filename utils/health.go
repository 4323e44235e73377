package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor periodically pings MongoDB and Redis and keeps the last result.
type HealthMonitor struct {
	redis    *redis.Client
	mongo    *mongo.Client
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		redis:    redisClient,
		mongo:    mongoClient,
		interval: interval,
	}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Start checks once immediately, then every interval until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.check(ctx)
			}
		}
	}()
}

func (h *HealthMonitor) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if h.redis != nil {
		status.Redis = h.redis.Ping(ctx).Err() == nil
	}
	if h.mongo != nil {
		status.Mongo = h.mongo.Ping(ctx, nil) == nil
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
}
