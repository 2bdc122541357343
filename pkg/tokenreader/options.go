package tokenreader

import (
	"log/slog"
	"maps"
	"strings"

	"github.com/terratensor/tabtok/internal/logging"
)

const defaultBufferSize = 64 * 1024

// Options настраивает поведение Reader.
type Options struct {
	// KeepTrailingEmpty сохраняет пустые токены от разделителей в конце строки.
	// По умолчанию они отбрасываются: "a\tb\t\t" -> ["a", "b"].
	// Default: false
	KeepTrailingEmpty bool

	// StrictReadiness возвращает из Next ошибку проверки готовности потока
	// вместо признака конца ввода. Поток закрывается в обоих случаях.
	// Default: false
	StrictReadiness bool

	// BufferSize - размер буфера чтения в байтах.
	// Default: 64 KiB
	BufferSize int
}

// DefaultOptions возвращает настройки по умолчанию.
func DefaultOptions() Options {
	return Options{
		KeepTrailingEmpty: false,
		StrictReadiness:   false,
		BufferSize:        defaultBufferSize,
	}
}

type config struct {
	options Options
	logger  *slog.Logger
	kinds   map[string]Kind
}

func newConfig(opts []Option) *config {
	cfg := &config{
		options: DefaultOptions(),
		logger:  logging.Discard(),
		kinds:   maps.Clone(defaultKinds),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.options.BufferSize <= 0 {
		cfg.options.BufferSize = defaultBufferSize
	}

	return cfg
}

// Option настраивает Factory или Reader.
type Option func(*config)

// WithOptions задает Options.
func WithOptions(o Options) Option {
	return func(c *config) {
		c.options = o
	}
}

// WithLogger задает логгер. nil отключает логирование.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrDiscard(logger)
	}
}

// WithKind регистрирует расширение в Factory. На New не влияет.
func WithKind(ext string, k Kind) Option {
	return func(c *config) {
		c.kinds[strings.ToLower(ext)] = k
	}
}
