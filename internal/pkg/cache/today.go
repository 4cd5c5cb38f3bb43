package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TodayCache keeps the serialized "today's attendance" response per
// employee. The dashboard polls this lookup on every page load, so the
// ledger write paths invalidate aggressively instead of letting entries
// age out.
type TodayCache struct {
	rdb *redis.Client
}

// NewTodayCache wraps a redis client. A nil client disables the cache,
// every read misses and every write is a no-op.
func NewTodayCache(rdb *redis.Client) *TodayCache {
	return &TodayCache{rdb: rdb}
}

// Key builds the cache key for an employee on a calendar day.
func Key(employeeID int, day time.Time) string {
	return fmt.Sprintf("attendance:today:%d:%s", employeeID, day.Format("2006-01-02"))
}

// Get returns the cached payload for the employee today, if any.
func (c *TodayCache) Get(ctx context.Context, employeeID int) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	payload, err := c.rdb.Get(ctx, Key(employeeID, time.Now())).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Int("employee_id", employeeID).Msg("today cache read failed")
		}
		return nil, false
	}

	return payload, true
}

// Set stores the payload for the employee today, expiring at local
// midnight so a stale entry can never leak into the next day.
func (c *TodayCache) Set(ctx context.Context, employeeID int, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}

	ttl := TTLUntilMidnight(time.Now())
	if err := c.rdb.Set(ctx, Key(employeeID, time.Now()), payload, ttl).Err(); err != nil {
		log.Warn().Err(err).Int("employee_id", employeeID).Msg("today cache write failed")
	}
}

// Invalidate drops the entry for the employee today. Called by every
// ledger mutation that can change today's record.
func (c *TodayCache) Invalidate(ctx context.Context, employeeID int) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, Key(employeeID, time.Now())).Err(); err != nil {
		log.Warn().Err(err).Int("employee_id", employeeID).Msg("today cache invalidation failed")
	}
}

// TTLUntilMidnight returns the duration from now to the start of the
// next local day, with a one minute floor so entries written right at
// midnight still expire.
func TTLUntilMidnight(now time.Time) time.Duration {
	year, month, day := now.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	ttl := midnight.Sub(now)
	if ttl < time.Minute {
		ttl = time.Minute
	}
	return ttl
}
