package unblock_all_rooms

import "context"

// RoomsService интерфейс сервиса управления комнатами
type RoomsService interface {
	UnblockAll(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
