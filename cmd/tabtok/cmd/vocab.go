package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terratensor/tabtok/internal/config"
	"github.com/terratensor/tabtok/internal/vocab"
)

func (c *Cmd) newVocabCmd() *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Build a word frequency vocabulary from the tab-delimited files of a directory",
		Args:  cobra.NoArgs,
		RunE:  c.runVocab,
	}

	vocabCmd.Flags().SortFlags = false
	vocabCmd.Flags().AddFlagSet(c.flagsVocab.NewFlagSet())

	return vocabCmd
}

func (c *Cmd) runVocab(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := c.setup(cmd, func(cfg *config.Config) {
		c.flagsVocab.Apply(&cfg.Vocab, cmd.Flags())
	})
	if err != nil {
		return err
	}

	logger.Info("building vocabulary", "goroutines", cfg.Vocab.MaxGoroutines)

	builder := vocab.NewBuilder(vocab.Config{
		Lowercase:     cfg.Vocab.Lowercase,
		FilterPunct:   cfg.Vocab.FilterPunct,
		Columns:       cfg.Vocab.Columns,
		MaxGoroutines: cfg.Vocab.MaxGoroutines,
		ErrorDir:      cfg.Vocab.ErrorDir,
		Logger:        logger,
	})

	words, processed, err := builder.ProcessDir(cmd.Context(), cfg.Vocab.Dir)
	if err != nil {
		return err
	}

	// Сохранение словаря
	if err := words.SaveFile(cfg.Vocab.Output, cfg.Vocab.Sort); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Vocabulary of %d files saved to %s\n", processed, cfg.Vocab.Output)

	return nil
}
