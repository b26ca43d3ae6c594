package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Load(ctx context.Context) (map[string]*domain.Booking, error)
}

// BlockedRoomsRepository интерфейс репозитория блок-листа комнат
type BlockedRoomsRepository interface {
	Load(ctx context.Context) (domain.RoomSet, error)
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
