package redis_test

import (
	"context"
	"testing"

	"intake/config"
	"intake/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	server := miniredis.RunT(t)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = server.Host()
	cfg.Cache.Redis.Primary.Port = server.Port()

	client := redis.New(cfg)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := server.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNew_Unreachable(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = server.Host()
	cfg.Cache.Redis.Primary.Port = server.Port()

	server.Close()

	client := redis.New(cfg)
	defer client.Close()

	assert.NotNil(t, client)
}
