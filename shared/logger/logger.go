package logger

import (
	"io"
	"os"
	"serenity/config"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(consoleWriter())
	log.Trace().Msg("Zerolog initialized.")
}

// AttachFile tees log output into a size-rotated file when SERVER_LOG_FILE_PATH is set.
func AttachFile(config *config.Config) io.Closer {
	path := config.Server.LogFile.Path
	if path == "" {
		return nil
	}

	file := &lumberjack.Logger{
		Filename:  path,
		MaxSize:   config.Server.LogFile.MaxSizeMB,
		LocalTime: true,
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(consoleWriter(), file))
	log.Trace().Str("path", path).Msg("Log file attached.")

	return file
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

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}
