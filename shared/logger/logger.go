package logger

import (
	"context"
	"intake/config"
	"intake/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets up the global logger. Production writes JSON lines, every
// other environment gets the console writer.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = log.Output(output)
	}

	log.Trace().Str("env", env).Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// Ctx returns the global logger enriched with the request id carried by ctx.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := log.Logger

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != "" {
		l = l.With().Str("request_id", requestID).Logger()
	}

	return &l
}
