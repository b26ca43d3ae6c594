package get_schedule

import "time"

// CellState состояние одной ячейки сетки (дата, слот)
type CellState string

const (
	// StateAvailable все неблокированные комнаты свободны
	StateAvailable CellState = "available"
	// StatePartiallyBooked заняты не все неблокированные комнаты
	StatePartiallyBooked CellState = "partially_booked"
	// StateFullyBooked заняты все неблокированные комнаты
	StateFullyBooked CellState = "fully_booked"
	// StateNoRooms все комнаты в блок-листе; отличается от "все занято"
	StateNoRooms CellState = "no_rooms"
)

// SlotInfo слот каталога с отображаемым интервалом
type SlotInfo struct {
	Name  string
	Range string
}

// CellBooking краткая сводка занятой комнаты внутри ячейки
type CellBooking struct {
	Room      string
	Name      string
	StudentID string
}

// Cell одна ячейка сетки
type Cell struct {
	Slot           string
	State          CellState
	AvailableRooms []string
	Bookings       []CellBooking
}

// Day все ячейки одной даты окна
type Day struct {
	Date  string
	Cells []Cell
}

// Response сетка расписания на скользящее окно
type Response struct {
	GeneratedAt time.Time
	Window      []string
	Slots       []SlotInfo
	Days        []Day
}
