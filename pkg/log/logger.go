package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger configures the slog default logger with JSON output on stderr.
// Errors attached with ErrAttr are expanded by ErrFmtHandler.
func SetupLogger(loglevel string) error {
	level, err := ToLogLevel(loglevel)
	if err != nil {
		return err
	}
	ops := slog.HandlerOptions{
		AddSource: level == slog.LevelDebug,
		Level:     level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{Key: "severity", Value: attr.Value}
			case slog.MessageKey:
				attr = slog.Attr{Key: "message", Value: attr.Value}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
	return nil
}

// ToLogLevel converts a level name accepted by ParseLevel into a slog.Level.
func ToLogLevel(level string) (slog.Level, error) {
	l, ok := ParseLevel(level)
	if !ok {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
	return slog.Level(l), nil
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
