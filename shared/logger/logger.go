package logger

import (
	"io"
	"os"
	"suitespot/config"
	"suitespot/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	fieldService = "service"
	fieldAudit   = "audit"
	fieldForced  = "forced"
)

// InitLogger installs a console writer at trace level. SetLogLevel narrows it once config is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(output(os.Stdout, constant.ServerEnvDevelopment))
	log.Trace().Msg("Zerolog initialized.")
}

// Configure switches to structured JSON outside development and tags every entry with the app name.
func Configure(cfg *config.Config) {
	log.Logger = log.Output(output(os.Stdout, cfg.Server.Env)).With().Str(fieldService, cfg.App.Name).Logger()

	SetLogLevel(cfg)
}

func output(w io.Writer, env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return w
	}

	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// Audit starts an entry for a state change. Forced changes are raised to warn level.
func Audit(event string, forced bool) *zerolog.Event {
	entry := log.Info()
	if forced {
		entry = log.Warn()
	}

	return entry.Str(fieldAudit, event).Bool(fieldForced, forced)
}
