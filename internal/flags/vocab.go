package flags

import (
	"github.com/spf13/pflag"
	"github.com/terratensor/tabtok/internal/config"
)

type Vocab struct {
	config.Vocab
}

func NewVocab() *Vocab {
	return &Vocab{}
}

func (f *Vocab) NewFlagSet() *pflag.FlagSet {
	flagSet := &pflag.FlagSet{}
	defaults := config.Default().Vocab

	flagSet.StringVarP(&f.Dir, "dir", "d",
		defaults.Dir,
		"Path to the directory containing tab-delimited files.")
	flagSet.StringVarP(&f.Output, "output", "o",
		defaults.Output,
		"Output file for the vocabulary.")
	flagSet.StringVar(&f.Sort, "sort",
		defaults.Sort,
		"Sort vocabulary by frequency (freq) or alphabetically (alpha).")
	flagSet.BoolVar(&f.Lowercase, "lowercase",
		defaults.Lowercase,
		"Convert tokens to lowercase.")
	flagSet.BoolVar(&f.FilterPunct, "filter-punct",
		defaults.FilterPunct,
		"Filter out punctuation tokens.")
	flagSet.IntVar(&f.MaxGoroutines, "max-goroutines",
		defaults.MaxGoroutines,
		"Maximum number of files processed at once (default: number of CPUs).")
	flagSet.IntSliceVarP(&f.Columns, "columns", "c",
		defaults.Columns,
		"Zero-based column indexes to build the vocabulary from. By default all columns are used.")
	flagSet.StringVar(&f.ErrorDir, "error-dir",
		defaults.ErrorDir,
		"Directory to copy failed files to, together with errors.log. Empty disables copying.")

	return flagSet
}

// Apply переносит в dst значения флагов, явно заданных в flagSet.
func (f *Vocab) Apply(dst *config.Vocab, flagSet *pflag.FlagSet) {
	if flagSet.Changed("dir") {
		dst.Dir = f.Dir
	}

	if flagSet.Changed("output") {
		dst.Output = f.Output
	}

	if flagSet.Changed("sort") {
		dst.Sort = f.Sort
	}

	if flagSet.Changed("lowercase") {
		dst.Lowercase = f.Lowercase
	}

	if flagSet.Changed("filter-punct") {
		dst.FilterPunct = f.FilterPunct
	}

	if flagSet.Changed("max-goroutines") {
		dst.MaxGoroutines = f.MaxGoroutines
	}

	if flagSet.Changed("columns") {
		dst.Columns = f.Columns
	}

	if flagSet.Changed("error-dir") {
		dst.ErrorDir = f.ErrorDir
	}
}
