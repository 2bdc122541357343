package flags

import (
	"github.com/spf13/pflag"
	"github.com/terratensor/tabtok/internal/config"
)

type App struct {
	config.App

	Version    bool
	ConfigPath string
}

func NewApp() *App {
	return &App{}
}

func (f *App) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}
	defaults := config.Default().App

	flagSet.BoolVarP(&f.Version, "version", "V",
		false,
		"Display version information.")
	flagSet.BoolVarP(&f.Verbose, "verbose", "v",
		defaults.Verbose,
		"Enable more detailed logging.")
	flagSet.StringVar(&f.LogLevel, "log-level",
		defaults.LogLevel,
		"Determine log level for --verbose output. Log levels are: debug, info, warn, error.")
	flagSet.BoolVar(&f.LogJSON, "log-json",
		defaults.LogJSON,
		"Set output in JSON format for parsing by external tools.")
	flagSet.StringVar(&f.ConfigPath, "config",
		"",
		"Path to YAML configuration file. Flags set explicitly override file values.")

	return flagSet
}

// Apply переносит в dst значения флагов, явно заданных в flagSet.
func (f *App) Apply(dst *config.App, flagSet *pflag.FlagSet) {
	if flagSet.Changed("verbose") {
		dst.Verbose = f.Verbose
	}

	if flagSet.Changed("log-level") {
		dst.LogLevel = f.LogLevel
	}

	if flagSet.Changed("log-json") {
		dst.LogJSON = f.LogJSON
	}
}
