package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. Output goes to stdout and, when a file
// path is configured, to a size-rotated log file as well.
func New(appEnv, filePath string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if filePath != "" {
		rotated := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotated)
	}

	logger := zerolog.New(out).With().Timestamp().Logger()
	if appEnv == "development" {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}
