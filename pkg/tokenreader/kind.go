package tokenreader

import (
	"fmt"
	"strings"
)

// Kind определяет формат файла и, через него, разделитель токенов.
type Kind int

const (
	// KindUnknown - нулевое значение, не имеет разделителя.
	KindUnknown Kind = iota
	// KindTab - поля разделены символом горизонтальной табуляции.
	KindTab
)

// Delimiter возвращает разделитель для формата или "" для неизвестного.
func (k Kind) Delimiter() string {
	switch k {
	case KindTab:
		return "\t"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindTab:
		return "tab"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// defaultKinds - реестр расширений по умолчанию. Ключи в нижнем регистре.
var defaultKinds = map[string]Kind{
	"tab": KindTab,
}

// LookupKind ищет формат по расширению без учета регистра.
func LookupKind(ext string) (Kind, bool) {
	k, ok := defaultKinds[strings.ToLower(ext)]
	return k, ok
}

// Extension возвращает все, что идет после последней точки в пути.
// Если точки нет, расширением считается весь путь.
func Extension(path string) string {
	return path[strings.LastIndexByte(path, '.')+1:]
}
