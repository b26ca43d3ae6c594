package get_availability

import "context"

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	AvailableRooms(ctx context.Context, date, slot string) ([]string, error)
	IsFullyBooked(ctx context.Context, date, slot string) (bool, error)
	BookableRooms(ctx context.Context) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
