package redis

import (
	"book_catalog_web/config"
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// MustInitRedis connects to the session and page cache store and panics when
// it does not answer a ping within cfg.Redis.ConnectTimeout.
func MustInitRedis(cfg *config.Config) *redis.Client {
	op := "redis.MustInitRedis"
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.ConnectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.ConnectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("redis ping failed", slog.String("op", op), slog.String("addr", addr), slog.String("err", err.Error()))
		panic(fmt.Errorf("redis ping %s: %w", addr, err))
	}

	slog.Info("redis connected", slog.String("op", op), slog.String("addr", addr), slog.Int("db", cfg.Redis.DB))

	return rdb
}
