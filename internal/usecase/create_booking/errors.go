package create_booking

import "errors"

var (
	// ErrValidation возвращается, когда обязательное поле заявки не заполнено
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrUnknownSlot возвращается, когда слота нет в каталоге
	ErrUnknownSlot = errors.New("create_booking: unknown time slot")

	// ErrUnknownRoom возвращается, когда комнаты нет в каталоге
	ErrUnknownRoom = errors.New("create_booking: unknown room")

	// ErrRoomBlocked возвращается, когда комната выведена из оборота
	ErrRoomBlocked = errors.New("create_booking: room is blocked")

	// ErrDateOutOfWindow возвращается, когда дата вне 7-дневного окна
	ErrDateOutOfWindow = errors.New("create_booking: date is outside the booking window")

	// ErrAlreadyBooked возвращается, когда ячейка (дата, слот, комната)
	// уже занята
	ErrAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
