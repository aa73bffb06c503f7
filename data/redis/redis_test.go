package redis

import (
	"book_catalog_web/config"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustInitRedis_Unreachable(t *testing.T) {
	cfg := &config.Config{Redis: config.Redis{
		Host:           "127.0.0.1",
		Port:           1,
		ConnectTimeout: 200 * time.Millisecond,
	}}

	assert.Panics(t, func() { MustInitRedis(cfg) })
}

// Runs against a real Redis when TEST_REDIS_ADDR is set.
func TestMustInitRedis_Connects(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}

	host, rawPort, ok := strings.Cut(addr, ":")
	require.True(t, ok)
	port, err := strconv.Atoi(rawPort)
	require.NoError(t, err)

	rdb := MustInitRedis(&config.Config{Redis: config.Redis{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
	}})
	defer rdb.Close()
}
