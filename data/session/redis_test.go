package session

import (
	"book_catalog_web/config"
	"book_catalog_web/internal/model"
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Redis when TEST_REDIS_ADDR is set.
func newTestSession(t *testing.T) *RedisSession {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())

	cfg := &config.Config{Redis: config.Redis{SessionExpiration: time.Minute}}
	return NewRedisSession(cfg, rdb)
}

func TestRedisSession_SetGet(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	visitorID := uuid.NewString()

	stored := model.Session{
		VisitorID: visitorID,
		PageRequest: model.PageRequest{
			GridID:      uuid.NewString(),
			Page:        3,
			Count:       18,
			Tag:         uuid.NewString(),
			RequestedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, s.SetSession(ctx, visitorID, stored))

	res, err := s.GetSession(ctx, visitorID)

	assert.Nil(t, err)
	assert.Equal(t, stored, res)
}

func TestRedisSession_NotFound(t *testing.T) {
	s := newTestSession(t)

	_, err := s.GetSession(context.Background(), uuid.NewString())

	assert.Equal(t, ErrNotFound, err)
}

func TestRedisSession_PageRequestsPerGrid(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	visitorID := uuid.NewString()

	tabA := model.PageRequest{GridID: uuid.NewString(), Page: 1, Count: 18, Tag: uuid.NewString()}
	tabB := model.PageRequest{GridID: uuid.NewString(), Page: 3, Count: 18, Tag: uuid.NewString()}

	require.NoError(t, s.SetPageRequest(ctx, visitorID, tabA))
	require.NoError(t, s.SetPageRequest(ctx, visitorID, tabB))

	res, err := s.GetPageRequest(ctx, visitorID, tabA.GridID)
	assert.Nil(t, err)
	assert.Equal(t, tabA, res)

	res, err = s.GetPageRequest(ctx, visitorID, tabB.GridID)
	assert.Nil(t, err)
	assert.Equal(t, tabB, res)

	_, err = s.GetPageRequest(ctx, uuid.NewString(), tabA.GridID)
	assert.Equal(t, ErrNotFound, err)
}
