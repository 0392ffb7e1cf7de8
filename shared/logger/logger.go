package logger

import (
	"carrental/config"
	"carrental/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global logger. Production emits JSON lines, every
// other environment a console writer.
func InitLogger(config *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(output(config.Server.Env, os.Stdout)).
		With().
		Timestamp().
		Str("app", config.App.Name).
		Logger()

	log.Trace().Msg("Zerolog initialized.")
}

func output(env string, out io.Writer) io.Writer {
	if env == constant.ServerEnvProduction {
		return out
	}

	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
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
