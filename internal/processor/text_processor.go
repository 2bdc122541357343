package processor

import (
	"io"
)

// TextProcessor обрабатывает текстовые файлы.
type TextProcessor struct{}

func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

func (p *TextProcessor) Process(rc io.ReadCloser) (io.ReadCloser, error) {
	// Текстовые файлы уже поддерживают построчное чтение.
	return rc, nil
}

func (p *TextProcessor) Name() string {
	return "text"
}
