package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/terratensor/tabtok/internal/config"
	"github.com/terratensor/tabtok/internal/flags"
	"github.com/terratensor/tabtok/internal/logging"
)

const VersionDev = "dev"

// Cmd хранит флаги всех команд.
type Cmd struct {
	appVersion string
	commitHash string

	flagsApp    *flags.App
	flagsTokens *flags.Tokens
	flagsVocab  *flags.Vocab
}

func NewCmd(appVersion, commitHash string) *cobra.Command {
	c := &Cmd{
		appVersion: appVersion,
		commitHash: commitHash,

		flagsApp:    flags.NewApp(),
		flagsTokens: flags.NewTokens(),
		flagsVocab:  flags.NewVocab(),
	}

	rootCmd := &cobra.Command{
		Use:   "tabtok",
		Short: "Tab-delimited file tokenizer",
		Long: "tabtok reads delimited text files line by line and splits every line into tokens.\n" +
			"The delimiter is chosen by file extension: .tab files are split on tabs.\n" +
			"Files compressed with gzip (.tab.gz) or zstd (.tab.zst) are read transparently.",
		SilenceUsage: true,
		RunE:         c.run,
	}

	// Disable sorting
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().AddFlagSet(c.flagsApp.NewFlagSet())

	rootCmd.AddCommand(c.newTokensCmd(), c.newVocabCmd())

	return rootCmd
}

func (c *Cmd) run(cmd *cobra.Command, _ []string) error {
	if c.flagsApp.Version {
		c.printVersion(cmd.OutOrStdout())
		return nil
	}

	return cmd.Help()
}

func (c *Cmd) printVersion(w io.Writer) {
	version := c.appVersion
	if c.appVersion == VersionDev {
		version += "." + c.commitHash
	}

	fmt.Fprintf(w, "version: %s\n", version)
}

// setup собирает конфигурацию (файл, затем явно заданные флаги) и логгер команды.
// apply переносит флаги конкретной команды.
func (c *Cmd) setup(cmd *cobra.Command, apply func(*config.Config)) (*config.Config, *slog.Logger, error) {
	cfg := config.Default()

	if c.flagsApp.ConfigPath != "" {
		loaded, err := config.Load(c.flagsApp.ConfigPath)
		if err != nil {
			return nil, nil, err
		}

		cfg = loaded
	}

	c.flagsApp.Apply(&cfg.App, cmd.Flags())
	apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.NewLogger(cmd.ErrOrStderr(), cfg.App.LogLevel, cfg.App.Verbose, cfg.App.LogJSON)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logging.WithRun(logger, uuid.NewString(), cmd.Name()), nil
}
