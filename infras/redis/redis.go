package redis

import (
	"context"
	"net"
	"time"

	"intake/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the primary redis. An unreachable server is logged and
// left to reconnect lazily: submission locks and the rate limiter degrade to
// open, passcode requests fail until it is back.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		DialTimeout: pingTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("host", primary.Host).Str("port", primary.Port).Msg("Redis is unreachable, continuing without it")

		return client
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
