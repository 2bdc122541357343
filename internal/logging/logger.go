package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger создает логгер приложения.
// Без verbose используется уровень info, с verbose - уровень из level.
func NewLogger(w io.Writer, level string, isVerbose, isJSON bool) (*slog.Logger, error) {
	loggerOpt := &slog.HandlerOptions{}

	if isVerbose {
		var logLvl slog.Level

		err := logLvl.UnmarshalText([]byte(level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}

		loggerOpt.Level = logLvl
	}

	switch isJSON {
	case true:
		return slog.New(slog.NewJSONHandler(w, loggerOpt)), nil
	default:
		return slog.New(slog.NewTextHandler(w, loggerOpt)), nil
	}
}

// Discard возвращает логгер, который ничего не пишет.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard подставляет Discard вместо nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}

	return logger
}
