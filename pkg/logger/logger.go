package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

// Options represents options for logger.
type Options struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
	// Output replaces stdout, used in tests.
	Output io.Writer
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100,
		MaxBackups: 3,
		Compress:   true,
	}
}

// New returns a new instance of logger.
func New(opts Options) (*Logger, error) {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	writers := []io.Writer{output}
	if opts.PrettyLogOutput {
		writers[0] = zerolog.ConsoleWriter{Out: output, TimeFormat: time.Stamp}
	}
	if opts.LogFile != "" {
		writers = append(writers, newFileWriter(opts.LogFile))
	}

	level := zerolog.DebugLevel
	if opts.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}

		level = parsed
	}

	zeroLogger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Caller().Timestamp().
		Logger()

	return &Logger{&zeroLogger}, nil
}

// Nop returns logger which discards everything.
func Nop() *Logger {
	zeroLogger := zerolog.Nop()
	return &Logger{&zeroLogger}
}
