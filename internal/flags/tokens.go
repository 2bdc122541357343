package flags

import (
	"github.com/spf13/pflag"
	"github.com/terratensor/tabtok/internal/config"
)

type Tokens struct {
	config.Tokens
}

func NewTokens() *Tokens {
	return &Tokens{}
}

func (f *Tokens) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}
	defaults := config.Default().Tokens

	flagSet.IntSliceVarP(&f.Columns, "columns", "c",
		defaults.Columns,
		"Zero-based column indexes to print. Missing columns are printed as empty strings.\n"+
			"By default all columns are printed.")
	flagSet.BoolVarP(&f.LineNumbers, "line-numbers", "n",
		defaults.LineNumbers,
		"Prefix every output line with its line number and a tab.")
	flagSet.BoolVar(&f.KeepTrailingEmpty, "keep-trailing-empty",
		defaults.KeepTrailingEmpty,
		"Keep empty tokens produced by delimiters at the end of a line.")
	flagSet.BoolVar(&f.StrictReadiness, "strict",
		defaults.StrictReadiness,
		"Report read errors instead of treating them as the end of input.")
	flagSet.IntVar(&f.BufferSize, "buffer-size",
		defaults.BufferSize,
		"Read buffer size in bytes.")

	return flagSet
}

// Apply переносит в dst значения флагов, явно заданных в flagSet.
func (f *Tokens) Apply(dst *config.Tokens, flagSet *pflag.FlagSet) {
	if flagSet.Changed("columns") {
		dst.Columns = f.Columns
	}

	if flagSet.Changed("line-numbers") {
		dst.LineNumbers = f.LineNumbers
	}

	if flagSet.Changed("keep-trailing-empty") {
		dst.KeepTrailingEmpty = f.KeepTrailingEmpty
	}

	if flagSet.Changed("strict") {
		dst.StrictReadiness = f.StrictReadiness
	}

	if flagSet.Changed("buffer-size") {
		dst.BufferSize = f.BufferSize
	}
}
