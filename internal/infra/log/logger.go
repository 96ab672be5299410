// Package logs initializes the process-wide structured logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"roost/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := output(params.Config.Env.Log)

	var logger *slog.Logger
	if params.Config.Env.Log.Pretty {
		logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	return logger, nil
}

// output returns stdout, optionally teed into a rotated log file.
func output(cfg config.Log) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	return io.MultiWriter(os.Stdout, rotator)
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
