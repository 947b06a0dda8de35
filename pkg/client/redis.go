package client

import (
	"context"
	"time"

	"Scribe/config"
	"Scribe/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when redis is not configured. Callers treat a
// nil client as "no cache".
func NewRedisClient(conf *config.Config) (*redis.Client, func(), error) {
	if !conf.Redis.Enabled() {
		log.L.Info("redis disabled")
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Addr()))

	return client, func() { _ = client.Close() }, nil
}
