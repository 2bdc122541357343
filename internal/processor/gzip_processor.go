package processor

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipProcessor обрабатывает файлы в формате .gz.
type GzipProcessor struct {
	innerProcessor FileProcessor // Процессор для распакованного содержимого
}

func NewGzipProcessor(innerProcessor FileProcessor) *GzipProcessor {
	return &GzipProcessor{
		innerProcessor: innerProcessor,
	}
}

func (p *GzipProcessor) Process(rc io.ReadCloser) (io.ReadCloser, error) {
	// Распаковка .gz потоком, без временных файлов
	gzReader, err := gzip.NewReader(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}

	return p.innerProcessor.Process(newStackedCloser(gzReader, gzReader, rc))
}

func (p *GzipProcessor) Name() string {
	return "gzip"
}
