package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/terratensor/tabtok/internal/config"
	"github.com/terratensor/tabtok/pkg/tokenreader"
)

func (c *Cmd) newTokensCmd() *cobra.Command {
	tokensCmd := &cobra.Command{
		Use:   "tokens FILE...",
		Short: "Print the tokens of every line as a JSON array",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.runTokens,
	}

	tokensCmd.Flags().SortFlags = false
	tokensCmd.Flags().AddFlagSet(c.flagsTokens.NewFlagSet())

	return tokensCmd
}

func (c *Cmd) runTokens(cmd *cobra.Command, args []string) error {
	cfg, logger, err := c.setup(cmd, func(cfg *config.Config) {
		c.flagsTokens.Apply(&cfg.Tokens, cmd.Flags())
	})
	if err != nil {
		return err
	}

	factory := tokenreader.NewFactory(
		tokenreader.WithLogger(logger),
		tokenreader.WithOptions(tokenreader.Options{
			KeepTrailingEmpty: cfg.Tokens.KeepTrailingEmpty,
			StrictReadiness:   cfg.Tokens.StrictReadiness,
			BufferSize:        cfg.Tokens.BufferSize,
		}),
	)

	out := bufio.NewWriter(cmd.OutOrStdout())

	for _, path := range args {
		if err := printTokens(cmd, factory, out, path, &cfg.Tokens, logger); err != nil {
			_ = out.Flush()
			return err
		}
	}

	return out.Flush()
}

func printTokens(
	cmd *cobra.Command, factory *tokenreader.Factory, out io.Writer, path string, cfg *config.Tokens,
	logger *slog.Logger,
) error {
	reader, err := factory.Create(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	ctx := cmd.Context()

	var lineNumber int

	for tokens, err := range reader.Lines() {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		lineNumber++

		data, err := json.Marshal(tokenreader.Pick(tokens, cfg.Columns))
		if err != nil {
			return fmt.Errorf("failed to encode tokens of line %d: %w", lineNumber, err)
		}

		if cfg.LineNumbers {
			if _, err := fmt.Fprintf(out, "%d\t", lineNumber); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
			return err
		}
	}

	if err := reader.Err(); err != nil {
		logger.Warn("input ended with read error", "path", path, "error", err)
	}

	logger.Debug("file printed", "path", path, "lines", lineNumber)

	return nil
}
