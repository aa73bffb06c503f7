package cache

import (
	"book_catalog_web/config"
	"book_catalog_web/internal/model"
	"book_catalog_web/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(cfg *config.Config, redisClient *redis.Client) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

func (r *RedisCache) createBooksPageKey(page, count int) string {
	return fmt.Sprintf("books:page:%d:count:%d", page, count)
}

func (r *RedisCache) GetBooksForPage(ctx context.Context, page, count int) (booksPage model.BooksPage, err error) {
	op := "RedisCache.GetBooksForPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createBooksPageKey(page, count)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Debug("books page not found in cache", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
			return model.BooksPage{}, ErrNotFound
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.BooksPage{}, err
	}

	err = json.Unmarshal([]byte(res), &booksPage)
	if err != nil {
		slog.Error(
			"error while unmarshalling",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("resultFromRedis", res),
		)
		return model.BooksPage{}, errors.New("unmarshalling error")
	}

	return booksPage, nil
}

func (r *RedisCache) SetBooksForPage(ctx context.Context, booksPage model.BooksPage) error {
	op := "RedisCache.SetBooksForPage"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createBooksPageKey(booksPage.Page, booksPage.Count)

	jsonData, err := json.Marshal(booksPage)
	if err != nil {
		slog.Error("error while marshalling", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("marshalling error")
	}

	_, err = r.redis.Set(ctx, key, jsonData, r.cfg.Grid.CacheExpiration).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}
