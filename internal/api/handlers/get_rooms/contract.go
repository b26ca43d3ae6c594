package get_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/rooms/models"
)

// RoomsService интерфейс сервиса управления комнатами
type RoomsService interface {
	Statuses(ctx context.Context) ([]models.RoomStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
