package models

// RoomStatus состояние одной комнаты каталога для административной панели.
type RoomStatus struct {
	Room    string
	Blocked bool
}
