package app

import (
	"fmt"
	"io"
	"log/slog"
)

// logLevels is the accepted logging level vocabulary. Config validation and
// handler construction share it so the two can never drift apart.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// logFormats is the accepted log output format vocabulary.
var logFormats = map[string]bool{
	"text": true,
	"json": true,
}

// parseLogLevel validates a configured level name. An empty name selects info.
func parseLogLevel(levelStr string) (slog.Level, error) {
	if levelStr == "" {
		return slog.LevelInfo, nil
	}
	level, ok := logLevels[levelStr]
	if !ok {
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", levelStr)
	}
	return level, nil
}

// parseLogFormat validates a configured format name. An empty name selects text.
func parseLogFormat(formatStr string) (string, error) {
	if formatStr == "" {
		return "text", nil
	}
	if !logFormats[formatStr] {
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", formatStr)
	}
	return formatStr, nil
}

// newLogger creates a new slog.Logger for an already-validated Config. It
// does not set the global logger, allowing for isolated logger instances.
func newLogger(appConfig *Config, outW io.Writer) *slog.Logger {
	level, err := parseLogLevel(appConfig.LogLevel)
	if err != nil {
		// NewConfig rejects unknown levels, so this is a programmer error.
		panic(err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if appConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
