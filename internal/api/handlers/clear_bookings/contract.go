package clear_bookings

import "context"

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	ClearAll(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
