package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 计数 + 首次过期设置
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if tonumber(current) == 1 then
    redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimitStorage is a fixed window counter keyed by user and action.
type RateLimitStorage struct {
	redis *redis.Client
}

func NewRateLimitStorage(rds *redis.Client) *RateLimitStorage {
	return &RateLimitStorage{rds}
}

// Allow reports whether uid may perform action again inside window. Without
// redis every request is allowed.
func (r *RateLimitStorage) Allow(ctx context.Context, uid int64, action string, limit int, window time.Duration) (bool, error) {
	if r.redis == nil || limit <= 0 {
		return true, nil
	}
	seconds := int(window.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	count, err := fixedWindowScript.Run(ctx, r.redis, []string{r.name(uid, action)}, seconds).Int()
	if err != nil {
		return true, err
	}
	return count <= limit, nil
}

func (r *RateLimitStorage) name(uid int64, action string) string {
	return fmt.Sprintf("scribe:rate:%s:%d", action, uid)
}
