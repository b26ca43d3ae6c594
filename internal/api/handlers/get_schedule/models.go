package get_schedule

import (
	"time"

	getSchedule "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_schedule"
)

// SlotInfo HTTP model слота каталога
type SlotInfo struct {
	Name  string `json:"name"`
	Range string `json:"range"`
}

// CellBooking сводка занятой комнаты
type CellBooking struct {
	Room      string `json:"room"`
	Name      string `json:"name"`
	StudentID string `json:"studentId,omitempty"`
}

// Cell одна ячейка сетки
type Cell struct {
	Slot           string        `json:"slot"`
	State          string        `json:"state"`
	AvailableRooms []string      `json:"availableRooms"`
	Bookings       []CellBooking `json:"bookings,omitempty"`
}

// Day ячейки одной даты
type Day struct {
	Date  string `json:"date"`
	Cells []Cell `json:"cells"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	GeneratedAt string     `json:"generatedAt"`
	Window      []string   `json:"window"`
	Slots       []SlotInfo `json:"slots"`
	Days        []Day      `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	slots := make([]SlotInfo, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotInfo{Name: s.Name, Range: s.Range})
	}

	days := make([]Day, 0, len(resp.Days))
	for _, d := range resp.Days {
		cells := make([]Cell, 0, len(d.Cells))
		for _, c := range d.Cells {
			bookings := make([]CellBooking, 0, len(c.Bookings))
			for _, b := range c.Bookings {
				bookings = append(bookings, CellBooking{
					Room:      b.Room,
					Name:      b.Name,
					StudentID: b.StudentID,
				})
			}
			cells = append(cells, Cell{
				Slot:           c.Slot,
				State:          string(c.State),
				AvailableRooms: c.AvailableRooms,
				Bookings:       bookings,
			})
		}
		days = append(days, Day{Date: d.Date, Cells: cells})
	}

	return &ScheduleResponse{
		GeneratedAt: resp.GeneratedAt.Format(time.RFC3339),
		Window:      resp.Window,
		Slots:       slots,
		Days:        days,
	}
}
