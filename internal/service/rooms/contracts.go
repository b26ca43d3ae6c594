package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BlockedRoomsRepository интерфейс репозитория блок-листа комнат
type BlockedRoomsRepository interface {
	Load(ctx context.Context) (domain.RoomSet, error)
	Save(ctx context.Context, blocked domain.RoomSet) error
}

// WriteGate сериализует последовательности "прочитать-проверить-записать"
// над файлом блок-листа.
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
