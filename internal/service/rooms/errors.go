package rooms

import "errors"

var (
	// ErrUnknownRoom возвращается, когда комнаты нет в каталоге
	ErrUnknownRoom = errors.New("rooms.service: unknown room")

	// ErrAlreadyBlocked возвращается при повторной блокировке комнаты
	ErrAlreadyBlocked = errors.New("rooms.service: room already blocked")

	// ErrNotBlocked возвращается при разблокировке незаблокированной комнаты
	ErrNotBlocked = errors.New("rooms.service: room is not blocked")

	// ErrConfirmationRequired возвращается первым вызовом blockAll:
	// операция взведена и ждет повторного подтверждающего вызова
	ErrConfirmationRequired = errors.New("rooms.service: confirmation required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms.service: internal error")
)
