package bookings

import "errors"

var (
	// ErrMarshal возвращается при ошибке сериализации карты бронирований
	ErrMarshal = errors.New("bookings.repository: failed to marshal bookings")

	// ErrWriteFile возвращается, когда файл не удалось записать.
	// Прежнее состояние файла при этом остается нетронутым.
	ErrWriteFile = errors.New("bookings.repository: failed to write bookings file")
)
