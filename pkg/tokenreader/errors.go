package tokenreader

import "errors"

// ErrInvalidArgument сопоставляется через errors.Is со всеми ошибками *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// Тексты ошибок - часть контракта, вызывающий код сравнивает их побайтно.
const (
	msgNullFile        = "File is null."
	msgFileNotExist    = "File does not exist."
	msgUnsupportedExt  = "File extension not supported: "
	msgUnsupportedKind = "Delimiter kind not supported: "
)

// ArgumentError - ошибка неверного аргумента при создании Reader.
// Error возвращает только Msg, причина доступна через Unwrap.
type ArgumentError struct {
	Msg string
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func errNullFile() error {
	return &ArgumentError{Msg: msgNullFile}
}

func errFileNotExist(cause error) error {
	return &ArgumentError{Msg: msgFileNotExist, Err: cause}
}

func errUnsupportedExtension(ext string) error {
	return &ArgumentError{Msg: msgUnsupportedExt + ext}
}

func errUnsupportedKind(k Kind) error {
	return &ArgumentError{Msg: msgUnsupportedKind + k.String()}
}
