package processor

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// ZstdProcessor обрабатывает файлы в формате .zst.
type ZstdProcessor struct {
	innerProcessor FileProcessor
}

func NewZstdProcessor(innerProcessor FileProcessor) *ZstdProcessor {
	return &ZstdProcessor{
		innerProcessor: innerProcessor,
	}
}

func (p *ZstdProcessor) Process(rc io.ReadCloser) (io.ReadCloser, error) {
	// Один поток, одна горутина декодера.
	zstdDecoder, err := zstd.NewReader(rc, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}

	zr := zstdDecoder.IOReadCloser()

	return p.innerProcessor.Process(newStackedCloser(zr, zr, rc))
}

func (p *ZstdProcessor) Name() string {
	return "zstd"
}
