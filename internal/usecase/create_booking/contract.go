package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Load(ctx context.Context) (map[string]*domain.Booking, error)
	Save(ctx context.Context, bookings map[string]*domain.Booking) error
}

// BlockedRoomsRepository интерфейс репозитория блок-листа комнат
type BlockedRoomsRepository interface {
	Load(ctx context.Context) (domain.RoomSet, error)
}

// WriteGate сериализует последовательности "прочитать-проверить-записать"
// над файлом бронирований.
type WriteGate interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmGuard доступ к взведенным подтверждениям: создание бронирования
// сбрасывает их.
type ConfirmGuard interface {
	Disarm()
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider через системные часы
type RealTimeProvider struct{}

// Now возвращает текущее время.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
