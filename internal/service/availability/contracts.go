package availability

import (
	"context"

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
