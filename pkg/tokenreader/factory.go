package tokenreader

import (
	"errors"
	"strings"

	"github.com/terratensor/tabtok/internal/processor"
)

// Factory создает Reader по расширению файла.
// Сжатые файлы (.gz, .zst) распаковываются потоком, формат определяется
// по расширению под суффиксом контейнера: data.tab.gz читается как tab.
type Factory struct {
	cfg *config
}

// NewFactory создает Factory с реестром по умолчанию и переданными опциями.
func NewFactory(opts ...Option) *Factory {
	return &Factory{cfg: newConfig(opts)}
}

// Create открывает path. Проверки идут в порядке: пустой путь, расширение,
// существование файла.
func (f *Factory) Create(path string) (*Reader, error) {
	if path == "" {
		return nil, errNullFile()
	}

	kind, proc, err := f.resolve(path)
	if err != nil {
		return nil, err
	}

	if proc.Name() != "text" {
		f.cfg.logger.Debug("compressed input detected", "path", path, "container", proc.Name())
	}

	return open(path, kind, f.cfg, proc)
}

// Supports сообщает, откроет ли Create файл с таким именем.
// Существование файла не проверяется.
func (f *Factory) Supports(path string) bool {
	if path == "" {
		return false
	}

	_, _, err := f.resolve(path)

	return err == nil
}

func (f *Factory) resolve(path string) (Kind, processor.FileProcessor, error) {
	proc, inner := processor.NewProcessor(path)
	ext := Extension(inner)

	kind, ok := f.cfg.kinds[strings.ToLower(ext)]
	if !ok {
		return KindUnknown, nil, errUnsupportedExtension(ext)
	}

	return kind, proc, nil
}

var defaultFactory = NewFactory()

// Open создает Reader фабрикой по умолчанию.
func Open(path string) (*Reader, error) {
	return defaultFactory.Create(path)
}

// With открывает path фабрикой по умолчанию, вызывает fn и всегда закрывает Reader.
// Ошибка закрытия объединяется с ошибкой fn.
func With(path string, fn func(*Reader) error) (err error) {
	r, err := Open(path)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, r.Close())
	}()

	return fn(r)
}
