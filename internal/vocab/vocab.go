package vocab

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/terratensor/segment"
	"github.com/terratensor/tabtok/internal/config"
	"github.com/terratensor/tabtok/internal/logging"
	"github.com/terratensor/tabtok/pkg/tokenreader"
	"golang.org/x/sync/errgroup"
)

const errorLogName = "errors.log"

// Vocabulary - частоты слов.
type Vocabulary map[string]int

// Merge добавляет частоты other в v.
func (v Vocabulary) Merge(other Vocabulary) {
	for token, count := range other {
		v[token] += count
	}
}

// Config настраивает Builder.
type Config struct {
	Lowercase     bool
	FilterPunct   bool
	Columns       []int
	MaxGoroutines int
	// ErrorDir - каталог для копий файлов с ошибками и errors.log. Пустой - не копировать.
	ErrorDir string
	Logger   *slog.Logger
	// Factory открывает файлы. nil - фабрика по умолчанию.
	Factory *tokenreader.Factory
}

// Builder строит словарь по колонкам файлов с разделителями.
type Builder struct {
	lowercase     bool
	filterPunct   bool
	columns       []int
	maxGoroutines int
	errorDir      string
	logger        *slog.Logger
	factory       *tokenreader.Factory
}

func NewBuilder(cfg Config) *Builder {
	factory := cfg.Factory
	if factory == nil {
		factory = tokenreader.NewFactory(tokenreader.WithLogger(cfg.Logger))
	}

	maxGoroutines := cfg.MaxGoroutines
	if maxGoroutines <= 0 {
		maxGoroutines = 1
	}

	return &Builder{
		lowercase:     cfg.Lowercase,
		filterPunct:   cfg.FilterPunct,
		columns:       cfg.Columns,
		maxGoroutines: maxGoroutines,
		errorDir:      cfg.ErrorDir,
		logger:        logging.OrDiscard(cfg.Logger),
		factory:       factory,
	}
}

func (b *Builder) ensureErrorDir() error {
	if b.errorDir == "" {
		return nil
	}

	err := os.MkdirAll(b.errorDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("failed to create error directory: %w", err)
	}

	return nil
}

// ProcessDir строит словарь по всем поддерживаемым файлам каталога (без рекурсии).
// Ошибка отдельного файла не прерывает обработку: файл логируется и
// копируется в ErrorDir. Возвращается также число обработанных файлов.
func (b *Builder) ProcessDir(ctx context.Context, dirPath string) (Vocabulary, int, error) {
	// Создаем папку для ошибок
	if err := b.ensureErrorDir(); err != nil {
		return nil, 0, err
	}

	logger := logging.WithVocab(b.logger, dirPath)

	files, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading directory %s: %w", dirPath, err)
	}

	paths := make([]string, 0, len(files))

	for _, fileEntry := range files {
		if fileEntry.IsDir() {
			continue
		}

		filePath := filepath.Join(dirPath, fileEntry.Name())
		if !b.factory.Supports(filePath) {
			logger.Debug("skipping unsupported file", "file", filePath)
			continue
		}

		paths = append(paths, filePath)
	}

	var (
		vocab          = make(Vocabulary)
		mutex          sync.Mutex
		processedFiles int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxGoroutines)

	for _, filePath := range paths {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			localVocab, err := b.ProcessFile(ctx, filePath)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				b.handleError(logger, filePath, err)

				return nil
			}

			mutex.Lock()
			vocab.Merge(localVocab)
			processedFiles++
			logger.Debug("file processed",
				"file", filePath,
				"progress", fmt.Sprintf("%d/%d", processedFiles, len(paths)))
			mutex.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, processedFiles, err
	}

	logger.Info("vocabulary built", "files", processedFiles, "failed", len(paths)-processedFiles,
		"tokens", len(vocab))

	return vocab, processedFiles, nil
}

// ProcessFile считает частоты слов в одном файле.
func (b *Builder) ProcessFile(ctx context.Context, filePath string) (Vocabulary, error) {
	reader, err := b.factory.Create(filePath)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	localVocab := make(Vocabulary)

	// Построчное чтение и токенизация
	for tokens, err := range reader.Lines() {
		if err != nil {
			return nil, err
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		b.countRow(localVocab, tokenreader.Pick(tokens, b.columns))
	}

	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("input ended with read error: %w", err)
	}

	return localVocab, nil
}

func (b *Builder) countRow(vocab Vocabulary, cells []string) {
	tokenizer := segment.NewTokenizer()

	for _, cell := range cells {
		if cell == "" {
			continue
		}

		// Сегментация ячейки на слова
		for _, token := range tokenizer.Tokenize(cell) {
			tokenText := token.Text
			if strings.TrimSpace(tokenText) == "" {
				continue
			}

			if b.lowercase {
				tokenText = strings.ToLower(tokenText)
			}

			if b.filterPunct && isPunctuation(tokenText) {
				continue
			}

			vocab[tokenText]++
		}
	}
}

// Save пишет словарь строками "token count".
func (v Vocabulary) Save(w io.Writer, sortType string) error {
	type tokenFrequency struct {
		Token string
		Count int
	}

	tokenFrequencies := make([]tokenFrequency, 0, len(v))
	for token, count := range v {
		tokenFrequencies = append(tokenFrequencies, tokenFrequency{Token: token, Count: count})
	}

	switch sortType {
	case config.SortFreq:
		slices.SortFunc(tokenFrequencies, func(a, b tokenFrequency) int {
			return cmp.Or(cmp.Compare(b.Count, a.Count), strings.Compare(a.Token, b.Token))
		})
	case config.SortAlpha:
		slices.SortFunc(tokenFrequencies, func(a, b tokenFrequency) int {
			return strings.Compare(a.Token, b.Token)
		})
	case config.SortNone:
	default:
		return fmt.Errorf("invalid sort type %q", sortType)
	}

	for _, tf := range tokenFrequencies {
		if _, err := fmt.Fprintf(w, "%s %d\n", tf.Token, tf.Count); err != nil {
			return fmt.Errorf("failed to write vocabulary: %w", err)
		}
	}

	return nil
}

// SaveFile сохраняет словарь в outputFile.
func (v Vocabulary) SaveFile(outputFile string, sortType string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := v.Save(file, sortType); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

func isPunctuation(token string) bool {
	for _, r := range token {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}

	return true
}

// handleError обрабатывает ошибки: логирует и копирует файл.
func (b *Builder) handleError(logger *slog.Logger, filePath string, err error) {
	logger.Error("failed to process file", "file", filePath, "error", err)

	if b.errorDir == "" {
		return
	}

	if logErr := b.logError(filePath, err); logErr != nil {
		logger.Warn("failed to log error", "error", logErr)
	}

	// Копируем файл с ошибкой
	if copyErr := b.copyErrorFile(filePath); copyErr != nil {
		logger.Warn("failed to copy error file", "error", copyErr)
	}
}

// logError дописывает запись об ошибке в errors.log каталога ошибок.
func (b *Builder) logError(filePath string, fileErr error) (err error) {
	logPath := filepath.Join(b.errorDir, errorLogName)

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", logPath, err)
	}

	defer func() {
		if closeErr := logFile.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w", logPath, closeErr))
		}
	}()

	_, err = fmt.Fprintf(logFile, "[%s] %s: %v\n", time.Now().Format(time.RFC3339), filePath, fileErr)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", logPath, err)
	}

	return nil
}

// copyErrorFile кладет копию filePath в каталог ошибок.
func (b *Builder) copyErrorFile(filePath string) error {
	dstPath := filepath.Join(b.errorDir, filepath.Base(filePath))

	src, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dstPath, err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", filePath, dstPath, err)
	}

	// Ошибка Close означает неполную копию.
	if err = dst.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dstPath, err)
	}

	return nil
}
