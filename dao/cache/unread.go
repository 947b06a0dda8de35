package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读数缓存过期时间
const unreadExpireAt = 10 * time.Minute

// UnreadStorage caches the unread notification count per user. A nil
// redis client turns every call into a miss or a no-op.
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Get returns the cached count and whether it was present.
func (u *UnreadStorage) Get(ctx context.Context, uid int64) (int64, bool) {
	if u.redis == nil {
		return 0, false
	}
	i, err := u.redis.Get(ctx, u.name(uid)).Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func (u *UnreadStorage) Set(ctx context.Context, uid int64, count int64) error {
	if u.redis == nil {
		return nil
	}
	return u.redis.Set(ctx, u.name(uid), count, unreadExpireAt).Err()
}

// Del invalidates the cached count, called whenever the receiver's
// notifications change.
func (u *UnreadStorage) Del(ctx context.Context, uid int64) error {
	if u.redis == nil {
		return nil
	}
	err := u.redis.Del(ctx, u.name(uid)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// scribe:notify:unread:uid
func (u *UnreadStorage) name(uid int64) string {
	return fmt.Sprintf("scribe:notify:unread:%d", uid)
}
