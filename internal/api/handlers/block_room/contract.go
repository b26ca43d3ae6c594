package block_room

import "context"

// RoomsService интерфейс сервиса управления комнатами
type RoomsService interface {
	Block(ctx context.Context, room string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
