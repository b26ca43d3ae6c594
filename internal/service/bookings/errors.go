package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrConfirmationRequired возвращается первым вызовом clearAll:
	// операция взведена и ждет повторного подтверждающего вызова
	ErrConfirmationRequired = errors.New("bookings.service: confirmation required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
