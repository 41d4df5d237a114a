package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RunLocker serializes matching runs per event. A run that cannot take
// the lock fails fast instead of racing the holder's
// read-compute-replace sequence.
type RunLocker interface {
	Acquire(ctx context.Context, eventID uuid.UUID) (bool, error)
	Release(ctx context.Context, eventID uuid.UUID) error
}

// RedisLock implements RunLocker with SETNX and a TTL so a crashed run
// cannot wedge an event forever.
type RedisLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{Client: client, TTL: 30 * time.Second}
}

func (l *RedisLock) key(eventID uuid.UUID) string {
	return "matching:lock:" + eventID.String()
}

func (l *RedisLock) Acquire(ctx context.Context, eventID uuid.UUID) (bool, error) {
	return l.Client.SetNX(ctx, l.key(eventID), 1, l.TTL).Result()
}

func (l *RedisLock) Release(ctx context.Context, eventID uuid.UUID) error {
	return l.Client.Del(ctx, l.key(eventID)).Err()
}
