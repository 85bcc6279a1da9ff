package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/erraggy/rad2oas/rad"
	"github.com/rs/zerolog"
)

// Log format names accepted by --log-format.
const (
	LogFormatText    = "text"
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// NewLogger builds the diagnostics logger for a command. Text and JSON use
// log/slog handlers; console uses a zerolog console writer.
func NewLogger(w io.Writer, level, format string) (rad.Logger, error) {
	switch strings.ToLower(format) {
	case LogFormatText, LogFormatJSON:
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		opts := &slog.HandlerOptions{Level: lvl}
		var h slog.Handler = slog.NewTextHandler(w, opts)
		if strings.EqualFold(format, LogFormatJSON) {
			h = slog.NewJSONHandler(w, opts)
		}
		return rad.NewSlogAdapter(slog.New(h)), nil
	case LogFormatConsole:
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		out := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
		return &ZerologAdapter{logger: zerolog.New(out).Level(lvl)}, nil
	default:
		return nil, fmt.Errorf("invalid log format %q. Valid formats: %s, %s, %s", format, LogFormatText, LogFormatJSON, LogFormatConsole)
	}
}

// ZerologAdapter adapts a zerolog.Logger to rad.Logger. Attributes are
// alternating key/value pairs as with slog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Debug logs at debug level.
func (z *ZerologAdapter) Debug(msg string, attrs ...any) {
	z.logger.Debug().Fields(attrs).Msg(msg)
}

// Info logs at info level.
func (z *ZerologAdapter) Info(msg string, attrs ...any) {
	z.logger.Info().Fields(attrs).Msg(msg)
}

// Warn logs at warn level.
func (z *ZerologAdapter) Warn(msg string, attrs ...any) {
	z.logger.Warn().Fields(attrs).Msg(msg)
}

// Error logs at error level.
func (z *ZerologAdapter) Error(msg string, attrs ...any) {
	z.logger.Error().Fields(attrs).Msg(msg)
}

// With returns a logger that adds attrs to every entry.
func (z *ZerologAdapter) With(attrs ...any) rad.Logger {
	return &ZerologAdapter{logger: z.logger.With().Fields(attrs).Logger()}
}
