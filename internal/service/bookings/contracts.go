package bookings

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Load(ctx context.Context) (map[string]*domain.Booking, error)
	Save(ctx context.Context, bookings map[string]*domain.Booking) error
}

// WriteGate сериализует последовательности "прочитать-проверить-записать"
// над файлом бронирований.
type WriteGate interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmGuard двухшаговое подтверждение разрушительных операций
type ConfirmGuard interface {
	Confirm(action string) bool
	Disarm()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
