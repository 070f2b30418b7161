package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// lockTTL bounds how long a slot stays reserved if a holder crashes between
// the conflict re-check and persistence.
const lockTTL = 30 * time.Second

// SlotLocker serializes booking attempts per (date, time) slot. Acquire
// returns false when another attempt currently holds the slot.
type SlotLocker interface {
	Acquire(ctx context.Context, date, timeOfDay string) (bool, error)
	Release(ctx context.Context, date, timeOfDay string)
}

// RedisSlotLocker implements SlotLocker with SET NX + TTL.
type RedisSlotLocker struct {
	Client *redis.Client
}

func slotLockKey(date, timeOfDay string) string {
	return fmt.Sprintf("slotlock:%sT%s", date, timeOfDay)
}

func (l *RedisSlotLocker) Acquire(ctx context.Context, date, timeOfDay string) (bool, error) {
	ok, err := l.Client.SetNX(ctx, slotLockKey(date, timeOfDay), 1, lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire slot lock: %w", err)
	}
	return ok, nil
}

func (l *RedisSlotLocker) Release(ctx context.Context, date, timeOfDay string) {
	// Best-effort; the TTL reaps the key if this fails.
	l.Client.Del(ctx, slotLockKey(date, timeOfDay))
}
