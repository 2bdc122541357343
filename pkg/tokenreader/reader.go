package tokenreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	"github.com/terratensor/tabtok/internal/logging"
	"github.com/terratensor/tabtok/internal/processor"
)

// Reader читает файл построчно и возвращает токены каждой строки.
//
// Reader единолично владеет открытым потоком: поток закрывается ровно один раз,
// при исчерпании ввода или при вызове Close. Reader не предназначен для
// одновременного использования из нескольких горутин.
type Reader struct {
	path    string
	kind    Kind
	options Options
	logger  *slog.Logger

	stream io.ReadCloser
	br     *bufio.Reader
	closed bool
	err    error
	lines  int64
}

// New открывает path как обычный (несжатый) файл формата kind.
// Ошибки аргументов возвращаются как *ArgumentError.
func New(path string, kind Kind, opts ...Option) (*Reader, error) {
	return open(path, kind, newConfig(opts), processor.NewTextProcessor())
}

func open(path string, kind Kind, cfg *config, proc processor.FileProcessor) (*Reader, error) {
	if path == "" {
		return nil, errNullFile()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errFileNotExist(err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("failed to open %s: is a directory", path)
	}

	if kind.Delimiter() == "" {
		return nil, errUnsupportedKind(kind)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	stream, err := proc.Process(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open %s stream %s: %w", proc.Name(), path, err)
	}

	logger := logging.WithReader(cfg.logger, path, kind.String(), proc.Name())
	logger.Debug("reader opened")

	return &Reader{
		path:    path,
		kind:    kind,
		options: cfg.options,
		logger:  logger,
		stream:  stream,
		br:      bufio.NewReaderSize(stream, cfg.options.BufferSize),
	}, nil
}

// Path возвращает путь, с которым был создан Reader.
func (r *Reader) Path() string {
	return r.path
}

// Kind возвращает формат файла.
func (r *Reader) Kind() Kind {
	return r.kind
}

// Next возвращает токены следующей строки.
//
// Когда строк больше нет, поток закрывается и возвращается nil, io.EOF;
// повторные вызовы также возвращают io.EOF. Ошибка проверки готовности
// потока считается концом ввода и доступна через Err, если не включен
// Options.StrictReadiness.
func (r *Reader) Next() ([]string, error) {
	ready, readyErr := r.ready()
	if !ready {
		wasOpen := !r.closed
		closeErr := r.Close()

		if wasOpen {
			r.logger.Debug("input exhausted, stream closed", "lines", r.lines, "error", readyErr)

			if readyErr != nil && r.options.StrictReadiness {
				return nil, errors.Join(fmt.Errorf("failed to read %s: %w", r.path, readyErr), closeErr)
			}
		}

		if closeErr != nil {
			return nil, closeErr
		}

		return nil, io.EOF
	}

	line, err := r.readLine()
	if err != nil {
		return nil, fmt.Errorf("failed to read line %d of %s: %w", r.lines+1, r.path, err)
	}

	r.lines++

	return splitLine(line, r.kind.Delimiter(), r.options.KeepTrailingEmpty), nil
}

// readLine читает строку до \n, \r или \r\n, терминатор не включается.
// Последняя строка без терминатора тоже считается строкой.
func (r *Reader) readLine() (string, error) {
	var sb strings.Builder

	for {
		b, err := r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}

			return "", err
		}

		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			// Ошибку Peek увидит следующая проверка готовности.
			if next, err := r.br.Peek(1); err == nil && next[0] == '\n' {
				_, _ = r.br.Discard(1)
			}

			return sb.String(), nil
		}

		sb.WriteByte(b)
	}
}

// ready сообщает, есть ли в потоке данные. Ошибка, отличная от io.EOF,
// сохраняется в r.err и возвращается вторым значением.
func (r *Reader) ready() (bool, error) {
	if r.closed {
		return false, nil
	}

	if _, err := r.br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}

		if r.err == nil {
			r.err = err
		}

		return false, err
	}

	return true, nil
}

// Err возвращает ошибку, которая была принята за конец ввода, или nil.
func (r *Reader) Err() error {
	return r.err
}

// Close закрывает поток. Повторные вызовы ничего не делают и возвращают nil.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}

	r.closed = true

	if err := r.stream.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", r.path, err)
	}

	return nil
}

// Lines возвращает итератор по строкам. Выход из цикла до конца ввода
// закрывает Reader.
func (r *Reader) Lines() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		for {
			tokens, err := r.Next()
			if err == io.EOF {
				return
			}

			if err != nil {
				_ = r.Close()
				yield(nil, err)

				return
			}

			if !yield(tokens, nil) {
				_ = r.Close()
				return
			}
		}
	}
}

// splitLine режет строку по разделителю.
// Без разделителя возвращается сама строка, так что "" дает [""].
// Пустые токены в конце отбрасываются, если keepTrailing == false.
func splitLine(line, delim string, keepTrailing bool) []string {
	if !strings.Contains(line, delim) {
		return []string{line}
	}

	tokens := strings.Split(line, delim)
	if keepTrailing {
		return tokens
	}

	end := len(tokens)
	for end > 0 && tokens[end-1] == "" {
		end--
	}

	return tokens[:end]
}
