package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Порядок сортировки словаря.
const (
	SortNone  = ""
	SortFreq  = "freq"
	SortAlpha = "alpha"
)

// Config - конфигурация приложения. Может быть прочитана из YAML-файла.
type Config struct {
	App    App    `yaml:"app"`
	Tokens Tokens `yaml:"tokens"`
	Vocab  Vocab  `yaml:"vocab"`
}

type App struct {
	Verbose  bool   `yaml:"verbose"`
	LogLevel string `yaml:"log-level"`
	LogJSON  bool   `yaml:"log-json"`
}

// Tokens - настройки команды tokens.
type Tokens struct {
	Columns           []int `yaml:"columns"`
	LineNumbers       bool  `yaml:"line-numbers"`
	KeepTrailingEmpty bool  `yaml:"keep-trailing-empty"`
	StrictReadiness   bool  `yaml:"strict-readiness"`
	BufferSize        int   `yaml:"buffer-size"`
}

// Vocab - настройки команды vocab.
type Vocab struct {
	Dir           string `yaml:"dir"`
	Output        string `yaml:"output"`
	Sort          string `yaml:"sort"`
	Lowercase     bool   `yaml:"lowercase"`
	FilterPunct   bool   `yaml:"filter-punct"`
	MaxGoroutines int    `yaml:"max-goroutines"`
	Columns       []int  `yaml:"columns"`
	ErrorDir      string `yaml:"error-dir"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		App: App{
			LogLevel: "debug",
		},
		Tokens: Tokens{
			BufferSize: 64 * 1024,
		},
		Vocab: Vocab{
			Dir:    "./files",
			Output: "vocab.txt",
		},
	}
}

// Load читает YAML-файл поверх конфигурации по умолчанию.
// Неизвестные поля считаются ошибкой.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", filename, err)
	}
	defer file.Close()

	cfg := Default()

	yamlDec := yaml.NewDecoder(file)
	yamlDec.KnownFields(true)

	if err := yamlDec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, err)
	}

	return cfg, nil
}

// Validate проверяет значения и подставляет производные умолчания.
func (c *Config) Validate() error {
	if c.Tokens.BufferSize < 0 {
		return fmt.Errorf("buffer size must not be negative: %d", c.Tokens.BufferSize)
	}

	if err := validateColumns(c.Tokens.Columns); err != nil {
		return err
	}

	if err := validateColumns(c.Vocab.Columns); err != nil {
		return err
	}

	switch c.Vocab.Sort {
	case SortNone, SortFreq, SortAlpha:
	default:
		return fmt.Errorf("invalid sort type %q, expected %q or %q", c.Vocab.Sort, SortFreq, SortAlpha)
	}

	// Если maxGoroutines не указан, используем количество процессоров
	if c.Vocab.MaxGoroutines <= 0 {
		c.Vocab.MaxGoroutines = runtime.NumCPU()
	}

	return nil
}

func validateColumns(columns []int) error {
	for _, c := range columns {
		if c < 0 {
			return fmt.Errorf("column index must not be negative: %d", c)
		}
	}

	return nil
}
