package processor

import (
	"errors"
	"io"
	"strings"
)

// FileProcessor определяет интерфейс для обработки файлов.
type FileProcessor interface {
	// Process возвращает поток для построчного чтения содержимого файла.
	// Закрытие результата закрывает и исходный поток.
	Process(rc io.ReadCloser) (io.ReadCloser, error)
	// Name возвращает имя контейнера. Используется в логах.
	Name() string
}

// NewProcessor создает процессор на основе расширения файла.
// Второе значение - путь без суффикса контейнера, по нему определяется формат.
func NewProcessor(filePath string) (FileProcessor, string) {
	idx := strings.LastIndexByte(filePath, '.')
	if idx < 0 {
		return NewTextProcessor(), filePath
	}

	// Если файл в архиве .gz или .zst
	switch strings.ToLower(filePath[idx+1:]) {
	case "gz":
		return NewGzipProcessor(NewTextProcessor()), filePath[:idx]
	case "zst":
		return NewZstdProcessor(NewTextProcessor()), filePath[:idx]
	}

	// Обычные файлы
	return NewTextProcessor(), filePath
}

// stackedCloser читает из Reader и закрывает closers по порядку.
type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func newStackedCloser(r io.Reader, closers ...io.Closer) *stackedCloser {
	return &stackedCloser{Reader: r, closers: closers}
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
