package create_booking

import "time"

// Request входные данные заявки на бронирование
type Request struct {
	Date      time.Time
	Slot      string
	Room      string
	Name      string
	StudentID string
	Class     string
	Phone     string
	Reason    string
}

// Response созданное бронирование
type Response struct {
	Key       string
	Date      string
	Slot      string
	Room      string
	Name      string
	StudentID string
	Class     string
	Phone     string
	Reason    string
	BookedAt  time.Time
}
