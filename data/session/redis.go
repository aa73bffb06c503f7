package session

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

type RedisSession struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisSession(cfg *config.Config, redisClient *redis.Client) *RedisSession {
	return &RedisSession{redis: redisClient, cfg: cfg}
}

func (r *RedisSession) createSessionKey(visitorID string) string {
	return fmt.Sprintf("visitor:%s:session", visitorID)
}

func (r *RedisSession) SetSession(ctx context.Context, visitorID string, session model.Session) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start SetSession", slog.String("rqID", rqID), slog.Any("session", session))

	sessionJson, err := json.Marshal(session)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("session", session))
		return errors.New("can't marshall session")
	}

	_, err = r.redis.Set(ctx, r.createSessionKey(visitorID), sessionJson, r.cfg.Redis.SessionExpiration).Result()
	if err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("session", session))
		return err
	}

	slog.Debug("SetSession completed", slog.String("rqID", rqID))

	return nil
}

func (r *RedisSession) GetSession(ctx context.Context, visitorID string) (model.Session, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start GetSession", slog.String("rqID", rqID))
	key := r.createSessionKey(visitorID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Warn("session not found in redis", slog.String("rqID", rqID), slog.String("key", key))
			return model.Session{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("key", key))
		return model.Session{}, err
	}

	session := model.Session{}

	err = json.Unmarshal([]byte(res), &session)
	if err != nil {
		slog.Error("can't unmarshall session", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("resultFromRedis", res))
		return model.Session{}, errors.New("can't unmarshall session")
	}

	slog.Debug("GetSession completed", slog.String("rqID", rqID), slog.Any("session", session))

	return session, nil
}

func (r *RedisSession) createPageRequestKey(visitorID, gridID string) string {
	return fmt.Sprintf("visitor:%s:grid:%s", visitorID, gridID)
}

// SetPageRequest stores the outstanding read of one grid instance under its
// own key, so grids of the same visitor never overwrite each other.
func (r *RedisSession) SetPageRequest(ctx context.Context, visitorID string, request model.PageRequest) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	requestJson, err := json.Marshal(request)
	if err != nil {
		slog.Error("can't marshall page request", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("request", request))
		return errors.New("can't marshall page request")
	}

	key := r.createPageRequestKey(visitorID, request.GridID)
	if err = r.redis.Set(ctx, key, requestJson, r.cfg.Redis.SessionExpiration).Err(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}

func (r *RedisSession) GetPageRequest(ctx context.Context, visitorID, gridID string) (model.PageRequest, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createPageRequestKey(visitorID, gridID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Warn("page request not found in redis", slog.String("rqID", rqID), slog.String("key", key))
			return model.PageRequest{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.String("key", key))
		return model.PageRequest{}, err
	}

	request := model.PageRequest{}
	if err = json.Unmarshal([]byte(res), &request); err != nil {
		slog.Error("can't unmarshall page request", slog.String("rqID", rqID), slog.String("err", err.Error()), slog.Any("resultFromRedis", res))
		return model.PageRequest{}, errors.New("can't unmarshall page request")
	}

	return request, nil
}
