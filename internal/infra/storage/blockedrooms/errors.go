package blockedrooms

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации списка
	ErrMarshal = errors.New("blockedrooms.repository: failed to marshal blocked rooms")

	// ErrWriteFile возвращается, когда файл не удалось записать
	ErrWriteFile = errors.New("blockedrooms.repository: failed to write blocked rooms file")
)
